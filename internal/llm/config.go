package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend; one of the Provider* constants.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// envVar binds one AETHER_* variable to a Config field.
type envVar struct {
	name string
	set  func(*Config, string)
}

var envVars = []envVar{
	{"AETHER_LLM_PROVIDER", func(c *Config, v string) { c.Provider = v }},
	{"AETHER_ANTHROPIC_API_KEY", func(c *Config, v string) { c.Anthropic.APIKey = v }},
	{"AETHER_ANTHROPIC_MODEL", func(c *Config, v string) { c.Anthropic.Model = v }},
	{"AETHER_OPENAI_API_KEY", func(c *Config, v string) { c.OpenAI.APIKey = v }},
	{"AETHER_OPENAI_MODEL", func(c *Config, v string) { c.OpenAI.Model = v }},
	{"AETHER_OPENAI_BASE_URL", func(c *Config, v string) { c.OpenAI.BaseURL = v }},
	{"AETHER_GEMINI_API_KEY", func(c *Config, v string) { c.Gemini.APIKey = v }},
	{"AETHER_GEMINI_MODEL", func(c *Config, v string) { c.Gemini.Model = v }},
	{"AETHER_OPENROUTER_API_KEY", func(c *Config, v string) { c.OpenRouter.APIKey = v }},
	{"AETHER_OPENROUTER_MODEL", func(c *Config, v string) { c.OpenRouter.Model = v }},
	{"AETHER_OPENROUTER_BASE_URL", func(c *Config, v string) { c.OpenRouter.BaseURL = v }},
}

// ConfigFromEnv builds a Config from AETHER_* environment variables,
// falling back to defaults for unset values. A malformed
// AETHER_LLM_TIMEOUT is ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for _, ev := range envVars {
		if v := os.Getenv(ev.name); v != "" {
			ev.set(&cfg, v)
		}
	}
	if v := os.Getenv("AETHER_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// standardKeys lists the vendor API key variables DiscoverConfig checks,
// in priority order.
var standardKeys = []struct {
	env      string
	provider string
	set      func(*Config, string)
}{
	{"GEMINI_API_KEY", ProviderGemini, func(c *Config, k string) { c.Gemini.APIKey = k }},
	{"OPENAI_API_KEY", ProviderOpenAI, func(c *Config, k string) { c.OpenAI.APIKey = k }},
	{"ANTHROPIC_API_KEY", ProviderAnthropic, func(c *Config, k string) { c.Anthropic.APIKey = k }},
	{"OPENROUTER_API_KEY", ProviderOpenRouter, func(c *Config, k string) { c.OpenRouter.APIKey = k }},
}

// DiscoverConfig returns a Config for the first provider whose standard
// API key variable is set, or (Config{}, false) when none is.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, k := range standardKeys {
		if key := os.Getenv(k.env); key != "" {
			cfg.Provider = k.provider
			k.set(&cfg, key)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("AETHER_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
