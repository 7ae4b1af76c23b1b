package history

import (
	"math"
	"reflect"
	"testing"

	"github.com/abhisek/gradewise/internal/reward"
)

func TestDashboard_Empty(t *testing.T) {
	s := NewStore()

	d := s.Dashboard()
	if d.ClassOverview.TotalStudents != 0 || d.ClassOverview.TotalResponses != 0 {
		t.Errorf("overview = %+v, want zeros", d.ClassOverview)
	}
	if d.ClassOverview.ClassAverageScore != 0 {
		t.Errorf("ClassAverageScore = %f, want 0", d.ClassOverview.ClassAverageScore)
	}
}

func TestDashboard_ClassOverview(t *testing.T) {
	s := NewStore()
	s.Record(record("alice", 0.8, 75, reward.Gold))
	s.Record(record("bob", 0.4, 25, reward.Bronze))
	s.Record(record("alice", 0.6, 25, reward.Bronze))

	d := s.Dashboard()
	if d.ClassOverview.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", d.ClassOverview.TotalStudents)
	}
	if d.ClassOverview.TotalResponses != 3 {
		t.Errorf("TotalResponses = %d, want 3", d.ClassOverview.TotalResponses)
	}
	wantAvg := (0.8 + 0.4 + 0.6) / 3
	if math.Abs(d.ClassOverview.ClassAverageScore-wantAvg) > 1e-9 {
		t.Errorf("ClassAverageScore = %f, want %f", d.ClassOverview.ClassAverageScore, wantAvg)
	}
}

func TestDashboard_StrugglingUsesGlobalTail(t *testing.T) {
	s := NewStore()
	// Carol's low scores sit outside the global last-3 window once other
	// students pile in.
	s.Record(record("carol", 0.1, 10, reward.Bronze))
	s.Record(record("carol", 0.2, 10, reward.Bronze))
	s.Record(record("alice", 0.9, 100, reward.Platinum))
	s.Record(record("bob", 0.9, 100, reward.Platinum))
	s.Record(record("dave", 0.9, 100, reward.Platinum))

	d := s.Dashboard()
	if len(d.StrugglingStudents) != 0 {
		t.Errorf("StrugglingStudents = %v, want none (carol left the window)", d.StrugglingStudents)
	}
}

func TestDashboard_StrugglingInWindow(t *testing.T) {
	s := NewStore()
	s.Record(record("alice", 0.9, 100, reward.Platinum))
	s.Record(record("carol", 0.2, 10, reward.Bronze))
	s.Record(record("carol", 0.3, 10, reward.Bronze))
	s.Record(record("bob", 0.9, 100, reward.Platinum))

	d := s.Dashboard()
	if !reflect.DeepEqual(d.StrugglingStudents, []string{"carol"}) {
		t.Errorf("StrugglingStudents = %v, want [carol]", d.StrugglingStudents)
	}
	if d.ClassOverview.StudentsNeedingAttention != 1 {
		t.Errorf("StudentsNeedingAttention = %d, want 1", d.ClassOverview.StudentsNeedingAttention)
	}
}

func TestDashboard_Idempotent(t *testing.T) {
	s := NewStore()
	s.Record(record("alice", 0.8, 75, reward.Gold))
	s.Record(record("bob", 0.3, 10, reward.Bronze))

	first := s.Dashboard()
	second := s.Dashboard()
	if !reflect.DeepEqual(first.ClassOverview, second.ClassOverview) {
		t.Errorf("overview changed between calls: %+v vs %+v", first.ClassOverview, second.ClassOverview)
	}
	if !reflect.DeepEqual(first.StrugglingStudents, second.StrugglingStudents) {
		t.Errorf("struggling list changed between calls")
	}
}
