package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdrill/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// middleware chain: caller → rate limit → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, events)
	retried := WithRetry(logged, cfg.Retry)
	limited := WithRateLimit(retried, cfg.RequestsPerMinute)

	return limited, nil
}

// NewProviderFromEnv builds a provider from PREPDRILL_* env config,
// falling back to DiscoverConfig probing of standard API key vars.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
