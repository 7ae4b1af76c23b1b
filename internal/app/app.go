// Package app wires the grading pipeline together and renders results
// for the CLI.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/gradewise/internal/corpus"
	"github.com/abhisek/gradewise/internal/embedding"
	"github.com/abhisek/gradewise/internal/feedback"
	"github.com/abhisek/gradewise/internal/history"
	"github.com/abhisek/gradewise/internal/scoring"
)

// App holds the assembled pipeline and the output writer.
type App struct {
	provider  embedding.Provider
	generator *feedback.Generator
	out       io.Writer
}

// New assembles an App over a provider and corpus, writing to out.
func New(provider embedding.Provider, c *corpus.Corpus, out io.Writer) *App {
	scorer := scoring.New(provider, c, scoring.DefaultConfig())
	store := history.NewStore()
	return &App{
		provider:  provider,
		generator: feedback.NewGenerator(scorer, store),
		out:       out,
	}
}

// Grade runs one response through the pipeline and prints the result.
func (a *App) Grade(ctx context.Context, resp feedback.StudentResponse) (feedback.Result, error) {
	res, err := a.generator.Generate(ctx, resp)
	if err != nil {
		return feedback.Result{}, err
	}
	fmt.Fprintln(a.out, renderResult(res))
	return res, nil
}

// PrintProgress prints the progress report for one student.
func (a *App) PrintProgress(studentID string) {
	report, ok := a.generator.Store().Progress(studentID)
	if !ok {
		fmt.Fprintf(a.out, "No responses recorded for %s yet.\n", studentID)
		return
	}
	fmt.Fprintln(a.out, renderProgress(report))
}

// PrintDashboard prints the educator dashboard.
func (a *App) PrintDashboard() {
	fmt.Fprintln(a.out, renderDashboard(a.generator.Store().Dashboard()))
}

// Export writes the session's history to a JSON file and reports the
// resulting path. An empty path picks a timestamped default name.
func (a *App) Export(path string) (string, error) {
	written, err := a.generator.Store().ExportFile(path)
	if err != nil {
		return "", fmt.Errorf("exporting feedback data: %w", err)
	}
	fmt.Fprintf(a.out, "Exported feedback data to %s\n", written)
	return written, nil
}

// Store exposes the session history for reporting.
func (a *App) Store() *history.Store {
	return a.generator.Store()
}
