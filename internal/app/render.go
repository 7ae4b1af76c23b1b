package app

import (
	"fmt"
	"strings"

	"github.com/abhisek/gradewise/internal/feedback"
	"github.com/abhisek/gradewise/internal/history"
	"github.com/abhisek/gradewise/internal/reward"
	"github.com/abhisek/gradewise/internal/ui/theme"
)

func renderResult(res feedback.Result) string {
	fb := res.Feedback
	var b strings.Builder

	score := theme.ScoreStyle(fb.SimilarityScore).Render(
		fmt.Sprintf("%.3f (%.1f%%)", fb.SimilarityScore, fb.SimilarityScore*100))
	tier := theme.TierStyle(fb.RewardType).Render(
		fmt.Sprintf("%s %s", fb.RewardType.Icon(), fb.RewardType.DisplayName()))

	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Score:"), score)
	fmt.Fprintf(&b, "%s %s", theme.Label.Render("Reward:"), tier)
	if fb.Participation {
		fmt.Fprintf(&b, " %s", theme.Hint.Render("(participation)"))
	}
	fmt.Fprintf(&b, "\n%s %d\n", theme.Label.Render("Points:"), fb.PointsEarned)
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Feedback:"), theme.Body.Render(fb.FeedbackText))

	if len(fb.Strengths) > 0 {
		fmt.Fprintf(&b, "%s\n", theme.Section.Render("Strengths"))
		for _, s := range fb.Strengths {
			fmt.Fprintf(&b, "  • %s\n", s)
		}
	}
	if len(fb.ImprovementAreas) > 0 {
		fmt.Fprintf(&b, "%s\n", theme.Section.Render("Areas for Improvement"))
		for _, s := range fb.ImprovementAreas {
			fmt.Fprintf(&b, "  • %s\n", s)
		}
	}
	if len(fb.PersonalizedTips) > 0 {
		fmt.Fprintf(&b, "%s\n", theme.Section.Render("Tips"))
		for _, s := range fb.PersonalizedTips {
			fmt.Fprintf(&b, "  • %s\n", s)
		}
	}

	for _, a := range res.Alerts {
		fmt.Fprintf(&b, "%s %s\n",
			theme.SeverityStyle(a.Severity).Render("⚠ Educator alert:"), a.Description)
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

func renderProgress(p *history.ProgressReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", theme.Title.Render("Progress for "+p.StudentID))
	fmt.Fprintf(&b, "  Responses: %d\n", p.TotalResponses)
	fmt.Fprintf(&b, "  Average score: %s\n",
		theme.ScoreStyle(p.AverageScore).Render(fmt.Sprintf("%.1f%%", p.AverageScore*100)))
	fmt.Fprintf(&b, "  Latest score: %s\n",
		theme.ScoreStyle(p.LatestScore).Render(fmt.Sprintf("%.1f%%", p.LatestScore*100)))
	fmt.Fprintf(&b, "  Total points: %d\n", p.TotalPoints)
	fmt.Fprintf(&b, "  Recent improvement: %+.1f%%\n", p.RecentImprovement*100)

	var earned []string
	for i := len(reward.AllTypes()) - 1; i >= 0; i-- {
		tier := reward.AllTypes()[i]
		if n := p.RewardDistribution[tier]; n > 0 {
			earned = append(earned, fmt.Sprintf("%s%d", tier.Icon(), n))
		}
	}
	if len(earned) == 0 {
		fmt.Fprintf(&b, "  Rewards: %s", theme.Hint.Render("none yet"))
	} else {
		fmt.Fprintf(&b, "  Rewards: %s", strings.Join(earned, " | "))
	}

	return b.String()
}

func renderDashboard(d history.DashboardReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", theme.Title.Render("Educator Dashboard"))
	fmt.Fprintf(&b, "  Students: %d\n", d.ClassOverview.TotalStudents)
	fmt.Fprintf(&b, "  Responses: %d\n", d.ClassOverview.TotalResponses)
	fmt.Fprintf(&b, "  Class average: %s\n",
		theme.ScoreStyle(d.ClassOverview.ClassAverageScore).Render(
			fmt.Sprintf("%.1f%%", d.ClassOverview.ClassAverageScore*100)))
	fmt.Fprintf(&b, "  Needing attention: %d\n", d.ClassOverview.StudentsNeedingAttention)

	if len(d.RecentAlerts) > 0 {
		fmt.Fprintf(&b, "%s\n", theme.Section.Render("Recent Alerts"))
		for _, a := range d.RecentAlerts {
			label := strings.ReplaceAll(string(a.AlertType), "_", " ")
			fmt.Fprintf(&b, "  %s %s: %s\n",
				theme.SeverityStyle(a.Severity).Render("["+string(a.Severity)+"]"), a.StudentID, label)
		}
	} else {
		fmt.Fprintf(&b, "  %s\n", theme.Hint.Render("No recent alerts."))
	}

	if len(d.StrugglingStudents) > 0 {
		fmt.Fprintf(&b, "%s %s",
			theme.Section.Render("Students needing support:"),
			strings.Join(d.StrugglingStudents, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
