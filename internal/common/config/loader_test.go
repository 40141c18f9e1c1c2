package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Parser.MaxInputLength)
	assert.Equal(t, "USD", cfg.Parser.DefaultCurrency)
	assert.Equal(t, "standard", cfg.Parser.DefaultUrgency)
	assert.Equal(t, 0.6, cfg.LLM.ConfidenceThreshold)
	assert.True(t, cfg.LLM.UseFallback)
	assert.Equal(t, 300, cfg.Cache.TTL)
}

func TestLoad_FirstLoadWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGet_BeforeLoad(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Get()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestSet_InstallsDirectly(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	installed := &Config{Parser: ParserConfig{MaxInputLength: 42}}
	Set(installed)

	cfg, err := Get()
	require.NoError(t, err)
	assert.Same(t, installed, cfg)
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 3000}
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Parser: ParserConfig{MaxInputLength: 1000, DefaultUrgency: "standard"},
			LLM:    LLMConfig{ConfidenceThreshold: 0.6},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate(valid()))
	})

	t.Run("non-positive max input length", func(t *testing.T) {
		cfg := valid()
		cfg.Parser.MaxInputLength = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("unknown urgency", func(t *testing.T) {
		cfg := valid()
		cfg.Parser.DefaultUrgency = "extreme"
		assert.Error(t, validate(cfg))
	})

	t.Run("threshold out of range", func(t *testing.T) {
		cfg := valid()
		cfg.LLM.ConfidenceThreshold = 1.5
		assert.Error(t, validate(cfg))
	})

	t.Run("cache enabled without address", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Enabled = true
		cfg.Cache.Address = ""
		assert.Error(t, validate(cfg))
	})
}
