package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-intent-parser/internal/common/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		expected string
	}{
		{"openai", "openai", "openai"},
		{"claude alias", "claude", "anthropic"},
		{"anthropic", "anthropic", "anthropic"},
		{"google", "google", "google"},
		{"case insensitive", "OpenAI", "openai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewProvider(config.LLMConfig{Provider: tt.provider})
			assert.NotNil(t, provider)
			assert.Equal(t, tt.expected, provider.Name())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		assert.Nil(t, NewProvider(config.LLMConfig{Provider: "cohere"}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, NewProvider(config.LLMConfig{}))
	})
}

func TestConfiguredProvider(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		cfg := config.LLMConfig{Provider: "openai"}
		assert.Nil(t, ConfiguredProvider(cfg))
	})

	t.Run("with credentials", func(t *testing.T) {
		cfg := config.LLMConfig{
			Provider: "openai",
			OpenAI:   config.ProviderConfig{APIKey: "sk-test"},
		}
		provider := ConfiguredProvider(cfg)
		assert.NotNil(t, provider)
		assert.Equal(t, "openai", provider.Name())
	})
}
