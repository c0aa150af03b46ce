package llm

import (
	"os"
	"time"
)

// Config selects and configures the LLM provider.
type Config struct {
	// Provider: "anthropic", "openai", "gemini" or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single collaborator call including its retry.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry:     DefaultRetryConfig(),
		Timeout:   30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from PATHWISE_* environment variables,
// falling back to defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PATHWISE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("PATHWISE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("PATHWISE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if k := os.Getenv("PATHWISE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("PATHWISE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("PATHWISE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("PATHWISE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("PATHWISE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if d := os.Getenv("PATHWISE_LLM_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}
