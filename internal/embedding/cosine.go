package embedding

import "math"

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 1.0 for identical directions and 0.0 for orthogonal vectors,
// mismatched lengths, or zero-norm inputs.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ClampScore forces a similarity value into the [0,1] range used for
// scoring. Embedding models can produce slightly negative similarities
// for unrelated texts; those count as zero.
func ClampScore(s float64) float64 {
	switch {
	case s < 0 || math.IsNaN(s):
		return 0
	case s > 1:
		return 1
	}
	return s
}
