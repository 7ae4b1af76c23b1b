package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/gradewise/internal/reward"
)

func TestExport_Document(t *testing.T) {
	s := NewStore()
	s.Record(record("alice", 0.9, 100, reward.Platinum))
	s.AppendAlert(EducatorAlert{
		AlertID:   "alert_1",
		StudentID: "bob",
		AlertType: AlertLowPerformance,
		Severity:  SeverityHigh,
		Timestamp: time.Now(),
	})

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc struct {
		FeedbackHistory []Feedback      `json:"feedback_history"`
		EducatorAlerts  []EducatorAlert `json:"educator_alerts"`
		ExportTimestamp time.Time       `json:"export_timestamp"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}

	if len(doc.FeedbackHistory) != 1 || doc.FeedbackHistory[0].StudentID != "alice" {
		t.Errorf("feedback_history = %v", doc.FeedbackHistory)
	}
	if len(doc.EducatorAlerts) != 1 || doc.EducatorAlerts[0].AlertType != AlertLowPerformance {
		t.Errorf("educator_alerts = %v", doc.EducatorAlerts)
	}
	if doc.ExportTimestamp.IsZero() {
		t.Error("export_timestamp missing")
	}
}

func TestExport_EmptyStoreHasArrays(t *testing.T) {
	s := NewStore()

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(doc["feedback_history"]) != "[]" {
		t.Errorf("feedback_history = %s, want []", doc["feedback_history"])
	}
	if string(doc["educator_alerts"]) != "[]" {
		t.Errorf("educator_alerts = %s, want []", doc["educator_alerts"])
	}
}

func TestExportFile_DefaultName(t *testing.T) {
	s := NewStore()
	s.Record(record("alice", 0.9, 100, reward.Platinum))

	dir := t.TempDir()
	cwd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	path, err := s.ExportFile("")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Ext(path) != ".json" {
		t.Errorf("path = %q, want a .json file", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestExportFile_BadPathSurfacesError(t *testing.T) {
	s := NewStore()
	if _, err := s.ExportFile(filepath.Join(t.TempDir(), "missing", "deep", "x.json")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestDefaultExportFilename(t *testing.T) {
	ts := time.Date(2025, 3, 9, 14, 30, 5, 0, time.UTC)
	if got := DefaultExportFilename(ts); got != "feedback_data_20250309_143005.json" {
		t.Errorf("filename = %q", got)
	}
}
