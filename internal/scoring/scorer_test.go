package scoring

import (
	"context"
	"testing"

	"github.com/abhisek/gradewise/internal/corpus"
	"github.com/abhisek/gradewise/internal/embedding"
)

func testCorpus() *corpus.Corpus {
	return corpus.New(map[string]map[string][]string{
		"mathematics": {
			"algebra": {
				"isolate the variable using inverse operations",
				"the quadratic formula solves second degree equations",
				"functions map inputs to outputs",
			},
		},
	})
}

func TestScore_MaxAndMatches(t *testing.T) {
	// Response vector, then one vector per reference (3 refs, no keywords).
	mock := embedding.NewMockProvider(
		embedding.MockResponse{Vectors: [][]float32{{1, 0, 0}}},
		embedding.MockResponse{Vectors: [][]float32{
			{1, 0, 0},       // sim 1.0
			{0.5, 0.866, 0}, // sim 0.5
			{0, 1, 0},       // sim 0.0
		}},
	)
	s := New(mock, testCorpus(), DefaultConfig())

	score, matches := s.Score(context.Background(), "some answer", "mathematics", nil)
	if score != 1.0 {
		t.Errorf("score = %f, want 1.0", score)
	}
	if len(matches) != 2 {
		t.Fatalf("match count = %d, want 2 (third is below threshold)", len(matches))
	}
	if matches[0] != "isolate the variable using inverse operations" {
		t.Errorf("best match = %q, want the identical-direction reference", matches[0])
	}
}

func TestScore_KeywordsAddSyntheticReference(t *testing.T) {
	mock := embedding.NewMockProvider(
		embedding.MockResponse{Vectors: [][]float32{{1, 0}}},
		embedding.MockResponse{Vectors: [][]float32{
			{0, 1}, {0, 1}, {0, 1},
			{1, 0}, // the synthetic keyword reference
		}},
	)
	s := New(mock, testCorpus(), DefaultConfig())

	score, matches := s.Score(context.Background(), "answer", "mathematics", []string{"inverse operations", "subtract"})
	if score != 1.0 {
		t.Errorf("score = %f, want 1.0 via keyword reference", score)
	}
	if len(matches) != 1 || matches[0] != "inverse operations subtract" {
		t.Errorf("matches = %v, want the joined keyword reference", matches)
	}

	// The batched call must carry all references plus the keyword text.
	if got := len(mock.Calls[1]); got != 4 {
		t.Errorf("reference batch size = %d, want 4", got)
	}
}

func TestScore_UnknownSubjectIsNeutral(t *testing.T) {
	mock := embedding.NewMockProvider()
	s := New(mock, testCorpus(), DefaultConfig())

	score, matches := s.Score(context.Background(), "anything", "philosophy", nil)
	if score != 0.5 {
		t.Errorf("score = %f, want exactly 0.5", score)
	}
	if matches != nil {
		t.Errorf("matches = %v, want nil", matches)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider was called %d times for an unknown subject", mock.CallCount())
	}
}

func TestScore_EmptyTextScoresZero(t *testing.T) {
	mock := embedding.NewMockProvider()
	s := New(mock, testCorpus(), DefaultConfig())

	for _, text := range []string{"", "   ", "\n\t"} {
		score, matches := s.Score(context.Background(), text, "mathematics", nil)
		if score != 0 || matches != nil {
			t.Errorf("Score(%q) = (%f, %v), want (0, nil)", text, score, matches)
		}
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider was called %d times for empty text", mock.CallCount())
	}
}

func TestScore_ProviderFailureDegradesToZero(t *testing.T) {
	mock := embedding.NewMockProvider(
		embedding.MockResponse{Err: &embedding.ErrProviderUnavailable{}},
	)
	s := New(mock, testCorpus(), DefaultConfig())

	score, matches := s.Score(context.Background(), "answer", "mathematics", nil)
	if score != 0 || matches != nil {
		t.Errorf("Score = (%f, %v), want (0, nil) on provider failure", score, matches)
	}
}

func TestScore_BatchFailureDegradesToZero(t *testing.T) {
	mock := embedding.NewMockProvider(
		embedding.MockResponse{Vectors: [][]float32{{1, 0}}},
		embedding.MockResponse{Err: &embedding.ErrProviderUnavailable{}},
	)
	s := New(mock, testCorpus(), DefaultConfig())

	score, matches := s.Score(context.Background(), "answer", "mathematics", nil)
	if score != 0 || matches != nil {
		t.Errorf("Score = (%f, %v), want (0, nil) on reference batch failure", score, matches)
	}
}

func TestScore_LexicalEndToEnd(t *testing.T) {
	// The offline embedder should rank a lexically similar response high.
	s := New(embedding.NewLexicalEmbedder(), testCorpus(), DefaultConfig())

	score, matches := s.Score(context.Background(),
		"to solve it, isolate the variable with inverse operations",
		"mathematics",
		[]string{"inverse operations", "isolate"},
	)
	if score <= 0.3 {
		t.Errorf("score = %f, want comfortably above the match threshold", score)
	}
	if len(matches) == 0 {
		t.Error("expected at least one top match")
	}
	if score < 0 || score > 1 {
		t.Errorf("score %f outside [0,1]", score)
	}
}
