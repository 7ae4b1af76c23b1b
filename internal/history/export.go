package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// exportDoc is the on-disk export format. time.Time fields marshal as
// RFC 3339, satisfying the ISO-8601 requirement.
type exportDoc struct {
	FeedbackHistory []Feedback      `json:"feedback_history"`
	EducatorAlerts  []EducatorAlert `json:"educator_alerts"`
	ExportTimestamp time.Time       `json:"export_timestamp"`
}

// Export writes the full feedback history and alert list as an indented
// JSON document.
func (s *Store) Export(w io.Writer) error {
	doc := exportDoc{
		FeedbackHistory: s.All(),
		EducatorAlerts:  s.Alerts(),
		ExportTimestamp: time.Now(),
	}
	if doc.FeedbackHistory == nil {
		doc.FeedbackHistory = []Feedback{}
	}
	if doc.EducatorAlerts == nil {
		doc.EducatorAlerts = []EducatorAlert{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ExportFile writes the export document to path, or to a
// timestamp-derived default filename when path is empty. Returns the
// filename written. I/O errors surface to the caller.
func (s *Store) ExportFile(path string) (string, error) {
	if path == "" {
		path = DefaultExportFilename(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	if err := s.Export(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}

// DefaultExportFilename derives the default export filename from a
// timestamp.
func DefaultExportFilename(t time.Time) string {
	return fmt.Sprintf("feedback_data_%s.json", t.Format("20060102_150405"))
}
