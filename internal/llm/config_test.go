package llm

import (
	"context"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateNamesEnvVar(t *testing.T) {
	err := Config{Provider: ProviderOpenRouter}.Validate()
	if err == nil || err.Error() != "AETHER_OPENROUTER_API_KEY is required for the openrouter provider" {
		t.Fatalf("err = %v", err)
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, ev := range envVars {
		t.Setenv(ev.name, "")
	}
	for _, k := range standardKeys {
		t.Setenv(k.env, "")
	}
	t.Setenv("AETHER_LLM_TIMEOUT", "")
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("AETHER_LLM_PROVIDER", "openai")
	t.Setenv("AETHER_OPENAI_API_KEY", "sk-env")
	t.Setenv("AETHER_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("AETHER_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("defaults lost: %+v", cfg.Anthropic)
	}

	t.Setenv("AETHER_LLM_TIMEOUT", "soon")
	if ConfigFromEnv().Timeout != DefaultConfig().Timeout {
		t.Fatal("bad timeout should fall back to the default")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-oai" {
		t.Fatalf("cfg = %+v, ok = %v", cfg, ok)
	}

	t.Setenv("GEMINI_API_KEY", "g")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != ProviderGemini {
		t.Fatalf("gemini should win, got %s", cfg.Provider)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	clearLLMEnv(t)
	p, err := NewProviderFromEnv(context.Background(), Deps{})
	if err != nil || p != nil {
		t.Fatalf("expected (nil, nil) without configuration, got (%v, %v)", p, err)
	}

	t.Setenv("AETHER_LLM_PROVIDER", "mock")
	p, err = NewProviderFromEnv(context.Background(), Deps{})
	if err != nil {
		t.Fatalf("mock provider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q", p.ModelID())
	}

	t.Setenv("AETHER_LLM_PROVIDER", "anthropic")
	if _, err := NewProviderFromEnv(context.Background(), Deps{}); err == nil {
		t.Fatal("expected validation error without key")
	}
}
