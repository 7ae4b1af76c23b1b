package embedding

import "context"

// Provider is the core abstraction for embedding model interaction.
// Consumers hand over text and receive fixed-length numeric vectors.
type Provider interface {
	// Embed converts a single text into a vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch converts multiple texts in a single call. On success the
	// result slice has the same length as texts, with result[i]
	// corresponding to texts[i]. All vectors produced by one provider
	// share the same dimensionality.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// resolveModel maps a friendly model name to the provider's model ID.
// Unknown names are passed through unchanged so callers can pin exact IDs.
func resolveModel(name string, known map[string]string) string {
	if id, ok := known[name]; ok {
		return id
	}
	return name
}
