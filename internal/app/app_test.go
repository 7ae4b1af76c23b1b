package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/gradewise/internal/corpus"
	"github.com/abhisek/gradewise/internal/embedding"
	"github.com/abhisek/gradewise/internal/feedback"
)

func newTestApp(out *bytes.Buffer) *App {
	return New(embedding.NewLexicalEmbedder(), corpus.Builtin(), out)
}

func TestGrade_PrintsResult(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out)

	res, err := a.Grade(context.Background(), feedback.StudentResponse{
		StudentID:    "alice_001",
		QuestionID:   "math_algebra_01",
		Subject:      "mathematics",
		ResponseText: "Subtract 6 from both sides, then divide both sides by 2 to isolate the variable.",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Score:", "Reward:", "Points:", "Feedback:", "Tips"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, res.Feedback.RewardType.DisplayName()) {
		t.Errorf("output missing tier name %q", res.Feedback.RewardType.DisplayName())
	}
}

func TestPrintProgress(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out)

	a.PrintProgress("nobody")
	if !strings.Contains(out.String(), "No responses recorded") {
		t.Errorf("unseen student output = %q", out.String())
	}

	out.Reset()
	if _, err := a.Grade(context.Background(), feedback.StudentResponse{
		StudentID:    "bob_002",
		Subject:      "science",
		ResponseText: "Objects in motion stay in motion unless a force acts on them.",
	}); err != nil {
		t.Fatalf("grade: %v", err)
	}

	out.Reset()
	a.PrintProgress("bob_002")
	text := out.String()
	if !strings.Contains(text, "Progress for bob_002") || !strings.Contains(text, "Responses: 1") {
		t.Errorf("progress output = %q", text)
	}
}

func TestRunDemo_EndToEnd(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out)

	exportPath := filepath.Join(t.TempDir(), "demo.json")
	if err := a.RunDemo(context.Background(), exportPath); err != nil {
		t.Fatalf("demo: %v", err)
	}

	if a.Store().Len() != len(SampleResponses()) {
		t.Errorf("store len = %d, want %d", a.Store().Len(), len(SampleResponses()))
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Errorf("export file missing: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Gradewise demo session",
		"Educator Dashboard",
		"Progress for alice_001",
		"Exported feedback data to",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}

func TestRenderDashboard_NoAlerts(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&out)

	a.PrintDashboard()
	if !strings.Contains(out.String(), "No recent alerts") {
		t.Errorf("empty dashboard output = %q", out.String())
	}
}
