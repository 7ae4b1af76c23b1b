package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// lexicalDim is the fixed vector size of the LexicalEmbedder. Tokens are
// hashed into buckets, so vectors from separate calls stay comparable.
const lexicalDim = 512

var tokenSplitRE = regexp.MustCompile(`[^a-z0-9]+`)

// LexicalEmbedder is a deterministic hashed bag-of-words embedder.
// It needs no API key and exists so the pipeline can run offline (demos,
// tests). It captures lexical overlap only, not meaning, and is not a
// substitute for a real embedding model.
type LexicalEmbedder struct{}

// NewLexicalEmbedder creates a LexicalEmbedder.
func NewLexicalEmbedder() *LexicalEmbedder {
	return &LexicalEmbedder{}
}

func (l *LexicalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	return lexicalVector(text), nil
}

func (l *LexicalEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		vecs[i] = lexicalVector(t)
	}
	return vecs, nil
}

// ModelID returns "lexical".
func (l *LexicalEmbedder) ModelID() string {
	return "lexical"
}

// lexicalVector builds an L2-normalized term-frequency vector, hashing
// each token into one of lexicalDim buckets.
func lexicalVector(text string) []float32 {
	vec := make([]float32, lexicalDim)

	toks := tokenize(text)
	if len(toks) == 0 {
		return vec
	}

	for _, tok := range toks {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%lexicalDim]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec
}

func tokenize(s string) []string {
	parts := tokenSplitRE.Split(strings.ToLower(s), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) > 1 {
			out = append(out, p)
		}
	}
	return out
}
