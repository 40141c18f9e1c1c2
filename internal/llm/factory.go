package llm

import (
	"strings"

	"payment-intent-parser/internal/common/config"
)

// NewProvider builds the backend named by cfg.Provider, or nil for an
// unknown/empty provider name.
func NewProvider(cfg config.LLMConfig) Provider {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "claude", "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "google":
		return NewGoogleProvider(cfg.Google)
	default:
		return nil
	}
}

// ConfiguredProvider returns the configured backend, or nil when none is
// usable (unknown name or missing credentials).
func ConfiguredProvider(cfg config.LLMConfig) Provider {
	provider := NewProvider(cfg)
	if provider != nil && provider.IsConfigured() {
		return provider
	}
	return nil
}
