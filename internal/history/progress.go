package history

import (
	"time"

	"github.com/abhisek/gradewise/internal/reward"
)

// ProgressReport summarizes one student's history.
type ProgressReport struct {
	StudentID      string              `json:"student_id"`
	TotalResponses int                 `json:"total_responses"`
	AverageScore   float64             `json:"average_score"`
	LatestScore    float64             `json:"latest_score"`
	TotalPoints    int                 `json:"total_points"`
	// RewardDistribution always carries all four tiers, zero-valued when
	// the student has never earned one.
	RewardDistribution map[reward.Type]int `json:"reward_distribution"`
	// RecentImprovement is latest minus earliest score; 0 with a single
	// record.
	RecentImprovement float64   `json:"recent_improvement"`
	LastUpdated       time.Time `json:"last_updated"`
}

// Progress computes the student's progress report from their full
// history. The second return is false when the student has no records,
// a normal outcome for unseen students rather than an error.
func (s *Store) Progress(studentID string) (*ProgressReport, bool) {
	records := s.ByStudent(studentID)
	if len(records) == 0 {
		return nil, false
	}

	report := &ProgressReport{
		StudentID:          studentID,
		TotalResponses:     len(records),
		RewardDistribution: make(map[reward.Type]int, 4),
	}
	for _, t := range reward.AllTypes() {
		report.RewardDistribution[t] = 0
	}

	var scoreSum float64
	for _, f := range records {
		scoreSum += f.SimilarityScore
		report.TotalPoints += f.PointsEarned
		report.RewardDistribution[f.RewardType]++
	}

	latest := records[len(records)-1]
	report.AverageScore = scoreSum / float64(len(records))
	report.LatestScore = latest.SimilarityScore
	report.LastUpdated = latest.Timestamp
	if len(records) > 1 {
		report.RecentImprovement = latest.SimilarityScore - records[0].SimilarityScore
	}

	return report, true
}
