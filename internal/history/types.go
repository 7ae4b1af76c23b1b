// Package history keeps the append-only record of generated feedback and
// educator alerts, and computes progress and dashboard aggregates on
// demand.
package history

import (
	"time"

	"github.com/abhisek/gradewise/internal/reward"
)

// Feedback is one scored-response record. Records are immutable once
// appended; aggregates never rewrite them.
type Feedback struct {
	ResponseID       string      `json:"response_id"`
	StudentID        string      `json:"student_id"`
	SimilarityScore  float64     `json:"similarity_score"`
	RewardType       reward.Type `json:"reward_type"`
	Participation    bool        `json:"participation"`
	FeedbackText     string      `json:"feedback_text"`
	Strengths        []string    `json:"strengths"`
	ImprovementAreas []string    `json:"improvement_areas"`
	PersonalizedTips []string    `json:"personalized_tips"`
	PointsEarned     int         `json:"points_earned"`
	Timestamp        time.Time   `json:"timestamp"`
}

// AlertType identifies the rule that raised an educator alert.
type AlertType string

const (
	AlertLowPerformance     AlertType = "low_performance"
	AlertConsistentStruggle AlertType = "consistent_struggle"
)

// Severity grades how urgently an alert needs human follow-up.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// EducatorAlert flags a condition that needs human follow-up.
type EducatorAlert struct {
	AlertID        string    `json:"alert_id"`
	StudentID      string    `json:"student_id"`
	AlertType      AlertType `json:"alert_type"`
	Severity       Severity  `json:"severity"`
	Description    string    `json:"description"`
	Timestamp      time.Time `json:"timestamp"`
	ActionRequired bool      `json:"action_required"`
}
