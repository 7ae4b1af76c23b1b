// Package scoring computes similarity between a student response and
// the reference corpus via an embedding provider.
package scoring

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/gradewise/internal/corpus"
	"github.com/abhisek/gradewise/internal/embedding"
)

// Config holds scorer tuning knobs.
type Config struct {
	// MatchThreshold is the minimum similarity for a reference to count
	// as a top match.
	MatchThreshold float64

	// MaxMatches caps how many top matches are returned.
	MaxMatches int

	// NeutralScore is returned for subjects absent from the corpus, so
	// students are not penalized for questions outside the reference set.
	NeutralScore float64
}

// DefaultConfig returns the standard scorer configuration.
func DefaultConfig() Config {
	return Config{
		MatchThreshold: 0.3,
		MaxMatches:     3,
		NeutralScore:   0.5,
	}
}

// Scorer scores response text against the reference corpus.
type Scorer struct {
	provider embedding.Provider
	corpus   *corpus.Corpus
	config   Config
}

// New creates a Scorer.
func New(provider embedding.Provider, c *corpus.Corpus, cfg Config) *Scorer {
	return &Scorer{
		provider: provider,
		corpus:   c,
		config:   cfg,
	}
}

// Score embeds the response text and every reference for the subject and
// returns the maximum cosine similarity in [0,1] plus the best-matching
// reference sentences (at most MaxMatches, above MatchThreshold, ordered
// by descending similarity).
//
// Degradation rules, in order:
//   - empty text scores 0 with no provider call;
//   - a subject absent from the corpus scores NeutralScore with no matches;
//   - any provider failure is logged and scores 0 with no matches.
//
// Score never returns an error; producing a usable number beats failing
// the whole feedback pipeline.
func (s *Scorer) Score(ctx context.Context, text, subject string, keywords []string) (float64, []string) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	if !s.corpus.HasSubject(subject) {
		fmt.Fprintf(os.Stderr, "warning: no reference answers for subject %q\n", subject)
		return s.config.NeutralScore, nil
	}

	refs := s.corpus.References(subject)

	// A supplied keyword list becomes one synthetic reference, boosting
	// responses that hit the expected vocabulary.
	if len(keywords) > 0 {
		refs = append(refs, strings.Join(keywords, " "))
	}

	responseVec, err := s.provider.Embed(embedding.WithPurpose(ctx, "score-response"), text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: embedding response failed: %v\n", err)
		return 0, nil
	}

	refVecs, err := s.provider.EmbedBatch(embedding.WithPurpose(ctx, "score-references"), refs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: embedding references failed: %v\n", err)
		return 0, nil
	}

	similarities := make([]float64, len(refVecs))
	for i, rv := range refVecs {
		similarities[i] = embedding.ClampScore(embedding.CosineSimilarity(responseVec, rv))
	}

	maxSim := 0.0
	for _, sim := range similarities {
		if sim > maxSim {
			maxSim = sim
		}
	}

	return maxSim, s.topMatches(refs, similarities)
}

// topMatches returns the references with the highest similarities above
// the threshold, descending, capped at MaxMatches.
func (s *Scorer) topMatches(refs []string, similarities []float64) []string {
	idx := make([]int, len(refs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return similarities[idx[a]] > similarities[idx[b]]
	})

	var matches []string
	for _, i := range idx {
		if len(matches) >= s.config.MaxMatches {
			break
		}
		if similarities[i] <= s.config.MatchThreshold {
			break
		}
		matches = append(matches, refs[i])
	}
	return matches
}
