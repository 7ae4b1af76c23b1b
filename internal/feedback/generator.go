package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/gradewise/internal/history"
	"github.com/abhisek/gradewise/internal/reward"
	"github.com/abhisek/gradewise/internal/scoring"
)

// ErrMissingStudent is returned when a response carries no student ID.
var ErrMissingStudent = errors.New("feedback: student id is required")

// Result is the full outcome of grading one response: the recorded
// feedback, the reference sentences the response matched best, and any
// educator alerts the score raised.
type Result struct {
	Feedback    history.Feedback
	BestMatches []string
	Alerts      []history.EducatorAlert
}

// Generator runs the whole pipeline for a response: score, classify,
// compose, record, and evaluate alert rules.
type Generator struct {
	scorer *scoring.Scorer
	store  *history.Store
	alerts *history.AlertEngine
	now    func() time.Time
}

// NewGenerator wires a Generator over a scorer and a history store.
func NewGenerator(scorer *scoring.Scorer, store *history.Store) *Generator {
	return &Generator{
		scorer: scorer,
		store:  store,
		alerts: history.NewAlertEngine(store, history.DefaultAlertConfig()),
		now:    time.Now,
	}
}

// Generate grades one response end to end. Scoring degradations (empty
// text, unknown subject, provider failure) still yield a recorded
// feedback; only an invalid response fails outright.
func (g *Generator) Generate(ctx context.Context, resp StudentResponse) (Result, error) {
	if resp.StudentID == "" {
		return Result{}, ErrMissingStudent
	}

	score, matches := g.scorer.Score(ctx, resp.ResponseText, resp.Subject, resp.ExpectedKeywords)

	award := reward.Classify(score)
	comp := Compose(score, award.Tier)

	fb := history.Feedback{
		ResponseID:       "resp_" + uuid.NewString(),
		StudentID:        resp.StudentID,
		SimilarityScore:  score,
		RewardType:       award.Tier,
		Participation:    award.Participation,
		FeedbackText:     comp.Text,
		Strengths:        comp.Strengths,
		ImprovementAreas: comp.ImprovementAreas,
		PersonalizedTips: comp.Tips,
		PointsEarned:     award.Points,
		Timestamp:        g.now(),
	}
	g.store.Record(fb)

	raised := g.alerts.Evaluate(resp.StudentID, resp.Subject, score)

	return Result{Feedback: fb, BestMatches: matches, Alerts: raised}, nil
}

// GenerateAll grades responses in order, collecting every result. A
// response that fails validation aborts the batch with its position.
func (g *Generator) GenerateAll(ctx context.Context, responses []StudentResponse) ([]Result, error) {
	results := make([]Result, 0, len(responses))
	for i, resp := range responses {
		r, err := g.Generate(ctx, resp)
		if err != nil {
			return results, fmt.Errorf("response %d (%s): %w", i, resp.QuestionID, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// Store exposes the backing history store for reporting and export.
func (g *Generator) Store() *history.Store {
	return g.store
}
