package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrNotLoaded is returned by Get before the first successful Load. Callers
// that can degrade (the extractors) catch it and use hardcoded fallbacks.
var ErrNotLoaded = errors.New("configuration not loaded: call config.Load first")

var (
	mu     sync.Mutex
	loaded *Config
)

// Load reads configuration from .env, config.yaml and the environment.
// The first successful load wins; subsequent calls return the cached value.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if loaded != nil {
		return loaded, nil
	}

	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Enable ENV override like PARSER_DEFAULT_CURRENCY or LLM_PROVIDER
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideFromEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loaded = &cfg
	return loaded, nil
}

// Get returns the cached configuration, or ErrNotLoaded before init.
func Get() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if loaded == nil {
		return nil, ErrNotLoaded
	}
	return loaded, nil
}

// Reset clears the cached configuration. Test hook; a re-load must be
// explicit.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loaded = nil
}

// Set installs a configuration directly, bypassing file/env loading.
// Test hook.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	loaded = cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "payment-intent-parser")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)

	v.SetDefault("parser.max_input_length", 1000)
	v.SetDefault("parser.default_currency", "USD")
	v.SetDefault("parser.default_urgency", "standard")

	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.confidence_threshold", 0.6)
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.use_fallback", true)
	v.SetDefault("llm.timeout", 30000)
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.anthropic.model", "claude-3-5-sonnet-20241022")
	v.SetDefault("llm.anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("llm.google.model", "gemini-pro")
	v.SetDefault("llm.google.base_url", "https://generativelanguage.googleapis.com/v1beta")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.address", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 300)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// loadEnvFile tries .env in the working directory and walks up to the
// project root so tests running from package directories pick it up too.
func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env", "../../../.env"}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// overrideFromEnv applies the well-known provider key variables that have no
// dotted config counterpart.
func overrideFromEnv(cfg *Config) {
	if cfg.LLM.OpenAI.APIKey == "" {
		cfg.LLM.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.LLM.OpenAI.Model = v
	}
	if cfg.LLM.Anthropic.APIKey == "" {
		cfg.LLM.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		cfg.LLM.Anthropic.Model = v
	}
	if cfg.LLM.Google.APIKey == "" {
		cfg.LLM.Google.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if v := os.Getenv("GOOGLE_MODEL"); v != "" {
		cfg.LLM.Google.Model = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" && cfg.LLM.Provider == "" {
		cfg.LLM.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("LLM_ENABLED"); strings.EqualFold(v, "true") {
		cfg.LLM.Enabled = true
	}
}

func validate(cfg *Config) error {
	if cfg.Parser.MaxInputLength <= 0 {
		return fmt.Errorf("parser.max_input_length must be positive")
	}
	if cfg.Parser.DefaultUrgency != "standard" && cfg.Parser.DefaultUrgency != "high" {
		return fmt.Errorf("parser.default_urgency must be standard or high, got %q", cfg.Parser.DefaultUrgency)
	}
	if cfg.LLM.ConfidenceThreshold < 0 || cfg.LLM.ConfidenceThreshold > 1 {
		return fmt.Errorf("llm.confidence_threshold must be in [0,1]")
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache is enabled")
	}
	return nil
}
