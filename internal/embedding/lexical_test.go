package embedding

import (
	"context"
	"testing"
)

func TestLexical_Deterministic(t *testing.T) {
	l := NewLexicalEmbedder()
	ctx := context.Background()

	a, err := l.Embed(ctx, "solve the equation by inverse operations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := l.Embed(ctx, "solve the equation by inverse operations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := CosineSimilarity(a, b); got < 0.999999 {
		t.Errorf("same text similarity = %f, want 1.0", got)
	}
}

func TestLexical_OverlapRanksHigher(t *testing.T) {
	l := NewLexicalEmbedder()
	ctx := context.Background()

	resp, _ := l.Embed(ctx, "subtract 5 from both sides using inverse operations")
	vecs, err := l.EmbedBatch(ctx, []string{
		"isolate the variable by performing inverse operations on both sides",
		"the periodic table organizes elements by atomic number",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	related := CosineSimilarity(resp, vecs[0])
	unrelated := CosineSimilarity(resp, vecs[1])
	if related <= unrelated {
		t.Errorf("related = %f not greater than unrelated = %f", related, unrelated)
	}
}

func TestLexical_CrossCallComparable(t *testing.T) {
	l := NewLexicalEmbedder()
	ctx := context.Background()

	// Vectors from separate calls must share dimensionality.
	a, _ := l.Embed(ctx, "first call text")
	batch, _ := l.EmbedBatch(ctx, []string{"a much longer second call with many new tokens present"})

	if len(a) != len(batch[0]) {
		t.Errorf("dimensions differ across calls: %d vs %d", len(a), len(batch[0]))
	}
}

func TestLexical_EmptyText(t *testing.T) {
	l := NewLexicalEmbedder()

	vec, err := l.Embed(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range vec {
		if v != 0 {
			t.Fatal("empty text should produce a zero vector")
		}
	}
}
