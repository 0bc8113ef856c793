package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Deps are the optional collaborators of a provider built by NewProvider.
type Deps struct {
	Recorder EventRecorder
	Log      *zap.Logger
}

// NewProvider builds the configured backend wrapped as
// caller -> timeout -> retry -> logging -> backend, so every attempt is
// recorded and the timeout covers all of them.
func NewProvider(ctx context.Context, cfg Config, deps Deps) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, deps.Recorder, deps.Log)
	retried := WithRetry(logged, cfg.Retry).Logger(deps.Log)
	return WithTimeout(retried, cfg.Timeout), nil
}

// NewProviderFromEnv uses AETHER_LLM_PROVIDER when set and otherwise
// checks the standard vendor key variables. It returns (nil, nil) when no
// provider is configured; coaching is then unavailable.
func NewProviderFromEnv(ctx context.Context, deps Deps) (Provider, error) {
	var cfg Config
	if os.Getenv("AETHER_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, nil
		}
		cfg = discovered
		cfg.Timeout = ConfigFromEnv().Timeout
	}
	return NewProvider(ctx, cfg, deps)
}
