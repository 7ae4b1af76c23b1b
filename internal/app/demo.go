package app

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/gradewise/internal/feedback"
	"github.com/abhisek/gradewise/internal/ui/theme"
)

// SampleResponses returns a canned class session covering the whole
// score range, for demos and smoke tests.
func SampleResponses() []feedback.StudentResponse {
	now := time.Now()
	return []feedback.StudentResponse{
		{
			StudentID:    "alice_001",
			QuestionID:   "math_algebra_01",
			ResponseText: "To solve the equation 2x + 6 = 14, I need to isolate x. First, I subtract 6 from both sides to get 2x = 8. Then I divide both sides by 2 to get x = 4. This works because I'm using inverse operations to undo what was done to x.",
			Subject:      "mathematics",
			Timestamp:    now,
			ExpectedKeywords: []string{
				"inverse operations", "isolate", "subtract", "divide",
			},
		},
		{
			StudentID:    "bob_002",
			QuestionID:   "science_physics_01",
			ResponseText: "Newton's first law says objects at rest stay at rest and objects in motion stay in motion unless a force acts on them.",
			Subject:      "science",
			Timestamp:    now,
			ExpectedKeywords: []string{
				"force", "motion", "rest", "inertia",
			},
		},
		{
			StudentID:    "carol_003",
			QuestionID:   "english_theme_01",
			ResponseText: "The story is about friendship and the main character learns something.",
			Subject:      "english",
			Timestamp:    now,
			ExpectedKeywords: []string{
				"theme", "character development", "literary analysis",
			},
		},
		{
			StudentID:    "david_004",
			QuestionID:   "math_geometry_01",
			ResponseText: "The Pythagorean theorem is a fundamental principle in geometry that states that in a right triangle, the square of the length of the hypotenuse (the side opposite the right angle) is equal to the sum of squares of the lengths of the other two sides. This can be written as a² + b² = c², where c represents the hypotenuse and a and b represent the other two sides.",
			Subject:      "mathematics",
			Timestamp:    now,
			ExpectedKeywords: []string{
				"Pythagorean theorem", "right triangle", "hypotenuse", "squares",
			},
		},
	}
}

// RunDemo grades the sample responses, then prints per-student progress,
// the educator dashboard, and an export path.
func (a *App) RunDemo(ctx context.Context, exportPath string) error {
	samples := SampleResponses()

	fmt.Fprintf(a.out, "%s\n\n", theme.Title.Render("Gradewise demo session"))
	fmt.Fprintf(a.out, "Scoring with the %s model.\n", a.provider.ModelID())

	var students []string
	for i, resp := range samples {
		fmt.Fprintf(a.out, "\n%s\n",
			theme.Subtitle.Render(fmt.Sprintf("Response %d/%d: %s (%s)",
				i+1, len(samples), resp.StudentID, resp.Subject)))

		if _, err := a.Grade(ctx, resp); err != nil {
			return fmt.Errorf("grading %s: %w", resp.QuestionID, err)
		}
		students = append(students, resp.StudentID)
	}

	fmt.Fprintf(a.out, "\n")
	for _, studentID := range students {
		a.PrintProgress(studentID)
		fmt.Fprintf(a.out, "\n")
	}

	a.PrintDashboard()
	fmt.Fprintf(a.out, "\n")

	_, err := a.Export(exportPath)
	return err
}
