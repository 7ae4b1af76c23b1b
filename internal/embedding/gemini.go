package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// geminiModels maps friendly names to Gemini embedding model IDs.
var geminiModels = map[string]string{
	"gemini-embedding": "gemini-embedding-001",
	"text-embedding":   "text-embedding-004",
}

// GeminiEmbedder implements Provider using the Google Gemini SDK.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a new Gemini embedding provider.
func NewGeminiEmbedder(ctx context.Context, cfg GeminiConfig) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := resolveModel(cfg.Model, geminiModels)

	return &GeminiEmbedder{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (p *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{{Text: t}},
		}
	}

	result, err := p.client.Models.EmbedContent(ctx, p.model, contents, nil)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	if len(result.Embeddings) != len(texts) {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("got %d embeddings for %d inputs", len(result.Embeddings), len(texts)),
		}
	}

	vecs := make([][]float32, len(texts))
	for i, e := range result.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, &ErrInvalidResponse{
				Err: fmt.Errorf("empty embedding at index %d", i),
			}
		}
		vecs[i] = e.Values
	}
	return vecs, nil
}

func (p *GeminiEmbedder) ModelID() string {
	return p.model
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.Code >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
