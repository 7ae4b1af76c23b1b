package history

import "time"

// strugglingWindow is how many records of the global tail feed the
// "struggling students" check, and strugglingThreshold the mean score a
// student must stay above.
const (
	strugglingWindow    = 3
	strugglingThreshold = 0.4
	recentAlertWindow   = 7 * 24 * time.Hour
)

// ClassOverview summarizes the whole class.
type ClassOverview struct {
	TotalStudents            int     `json:"total_students"`
	TotalResponses           int     `json:"total_responses"`
	ClassAverageScore        float64 `json:"class_average_score"`
	StudentsNeedingAttention int     `json:"students_needing_attention"`
}

// DashboardReport is the educator-facing class summary.
type DashboardReport struct {
	ClassOverview      ClassOverview   `json:"class_overview"`
	RecentAlerts       []EducatorAlert `json:"recent_alerts"`
	StrugglingStudents []string        `json:"struggling_students"`
	LastUpdated        time.Time       `json:"last_updated"`
}

// Dashboard computes the educator dashboard from current history. With
// no intervening Record calls, repeated invocations return identical
// overview values.
//
// A student counts as struggling when the mean of their entries inside
// the global last-3 window is below 0.4. The window is over the whole
// history, not per student, so an active class can push a struggling
// student's records out of view; this mirrors the system the scoring
// rules were lifted from (see DESIGN.md).
func (s *Store) Dashboard() DashboardReport {
	all := s.All()
	students := s.Students()

	var scoreSum float64
	for _, f := range all {
		scoreSum += f.SimilarityScore
	}
	classAverage := 0.0
	if len(all) > 0 {
		classAverage = scoreSum / float64(len(all))
	}

	tail := s.Tail(strugglingWindow)
	var struggling []string
	for _, studentID := range students {
		var sum float64
		var count int
		for _, f := range tail {
			if f.StudentID == studentID {
				sum += f.SimilarityScore
				count++
			}
		}
		if count > 0 && sum/float64(count) < strugglingThreshold {
			struggling = append(struggling, studentID)
		}
	}

	return DashboardReport{
		ClassOverview: ClassOverview{
			TotalStudents:            len(students),
			TotalResponses:           len(all),
			ClassAverageScore:        classAverage,
			StudentsNeedingAttention: len(struggling),
		},
		RecentAlerts:       s.AlertsSince(time.Now().Add(-recentAlertWindow)),
		StrugglingStudents: struggling,
		LastUpdated:        time.Now(),
	}
}
