// Package feedback turns scored student responses into personalized
// feedback records, rewards, and educator alerts.
package feedback

import "time"

// StudentResponse is one free-text answer submitted for grading.
type StudentResponse struct {
	StudentID    string    `json:"student_id"`
	QuestionID   string    `json:"question_id"`
	ResponseText string    `json:"response_text"`
	Subject      string    `json:"subject"`
	Timestamp    time.Time `json:"timestamp"`

	// ExpectedKeywords optionally lists vocabulary the grader wants to
	// see; they are folded into scoring as an extra reference.
	ExpectedKeywords []string `json:"expected_keywords,omitempty"`
}
