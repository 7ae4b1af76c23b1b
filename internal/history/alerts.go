package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AlertConfig holds the alert rule thresholds.
type AlertConfig struct {
	// LowScoreThreshold: a single score below this raises an immediate
	// high-severity alert.
	LowScoreThreshold float64

	// StruggleWindow is how many records of the global history tail the
	// consistent-struggle rule inspects.
	StruggleWindow int

	// StruggleMinCount is the minimum number of the student's records in
	// the window for the rule to apply.
	StruggleMinCount int

	// StruggleScoreThreshold: all of the student's windowed scores must
	// be below this to raise the alert.
	StruggleScoreThreshold float64
}

// DefaultAlertConfig returns the standard alert thresholds.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		LowScoreThreshold:      0.3,
		StruggleWindow:         5,
		StruggleMinCount:       3,
		StruggleScoreThreshold: 0.5,
	}
}

// AlertEngine evaluates alert rules against the store after each
// recorded feedback. Rules are independent and non-exclusive; repeated
// qualifying records produce repeated alerts (no deduplication).
type AlertEngine struct {
	store  *Store
	config AlertConfig
	now    func() time.Time
}

// NewAlertEngine creates an AlertEngine over the store.
func NewAlertEngine(store *Store, cfg AlertConfig) *AlertEngine {
	return &AlertEngine{
		store:  store,
		config: cfg,
		now:    time.Now,
	}
}

// Evaluate runs the alert rules for a just-recorded score. Raised alerts
// are appended to the store and returned.
//
// The consistent-struggle rule windows over the last StruggleWindow
// records of the whole history and then filters by student, so it can
// undercount a student's recent activity when many students interleave;
// kept that way deliberately (see DESIGN.md).
func (e *AlertEngine) Evaluate(studentID, subject string, score float64) []EducatorAlert {
	var raised []EducatorAlert

	if score < e.config.LowScoreThreshold {
		raised = append(raised, EducatorAlert{
			AlertID:        "alert_" + uuid.NewString(),
			StudentID:      studentID,
			AlertType:      AlertLowPerformance,
			Severity:       SeverityHigh,
			Description:    fmt.Sprintf("Student showing very low understanding in %s", subject),
			Timestamp:      e.now(),
			ActionRequired: true,
		})
	}

	var recent []float64
	for _, f := range e.store.Tail(e.config.StruggleWindow) {
		if f.StudentID == studentID {
			recent = append(recent, f.SimilarityScore)
		}
	}
	if len(recent) >= e.config.StruggleMinCount && allBelow(recent, e.config.StruggleScoreThreshold) {
		raised = append(raised, EducatorAlert{
			AlertID:        "alert_" + uuid.NewString(),
			StudentID:      studentID,
			AlertType:      AlertConsistentStruggle,
			Severity:       SeverityMedium,
			Description:    "Student showing consistent difficulties across multiple responses",
			Timestamp:      e.now(),
			ActionRequired: true,
		})
	}

	for _, a := range raised {
		e.store.AppendAlert(a)
	}
	return raised
}

func allBelow(scores []float64, threshold float64) bool {
	for _, s := range scores {
		if s >= threshold {
			return false
		}
	}
	return true
}
