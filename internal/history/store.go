package history

import (
	"sort"
	"sync"
	"time"
)

// Store is the in-memory, append-only feedback and alert log. A single
// mutex serializes appends so aggregate reads always see a consistent
// snapshot of the sequence.
type Store struct {
	mu       sync.Mutex
	feedback []Feedback
	alerts   []EducatorAlert
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Record appends one feedback record.
func (s *Store) Record(f Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, f)
}

// AppendAlert appends one educator alert.
func (s *Store) AppendAlert(a EducatorAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
}

// Len returns the number of feedback records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.feedback)
}

// All returns a copy of every feedback record in append order.
func (s *Store) All() []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Feedback, len(s.feedback))
	copy(out, s.feedback)
	return out
}

// ByStudent returns the student's feedback records in append order.
func (s *Store) ByStudent(studentID string) []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Feedback
	for _, f := range s.feedback {
		if f.StudentID == studentID {
			out = append(out, f)
		}
	}
	return out
}

// Tail returns a copy of the last n feedback records across all
// students, in append order.
func (s *Store) Tail(n int) []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.feedback) == 0 {
		return nil
	}
	if n > len(s.feedback) {
		n = len(s.feedback)
	}
	out := make([]Feedback, n)
	copy(out, s.feedback[len(s.feedback)-n:])
	return out
}

// Students returns the set of student IDs with records, sorted.
func (s *Store) Students() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	for _, f := range s.feedback {
		seen[f.StudentID] = true
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Alerts returns a copy of every educator alert in append order.
func (s *Store) Alerts() []EducatorAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EducatorAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// AlertsSince returns alerts with a timestamp after t, in append order.
func (s *Store) AlertsSince(t time.Time) []EducatorAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []EducatorAlert
	for _, a := range s.alerts {
		if a.Timestamp.After(t) {
			out = append(out, a)
		}
	}
	return out
}
