package embedding

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and request-log middleware.
func NewProvider(ctx context.Context, cfg Config, log *RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIEmbedder(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiEmbedder(ctx, cfg.Gemini)
	case "lexical":
		base = NewLexicalEmbedder()
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithRequestLog(base, log)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from GRADEWISE_* env vars, falling
// back to probing standard API key vars. Returns an error if no backend
// is configured.
func NewProviderFromEnv(ctx context.Context, log *RequestLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
