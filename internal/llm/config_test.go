package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := ConfigFromEnv()

	require.Equal(t, "anthropic", cfg.Provider)
	require.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, 2, cfg.Retry.MaxAttempts)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("PATHWISE_LLM_PROVIDER", "openai")
	t.Setenv("PATHWISE_OPENAI_API_KEY", "sk-test")
	t.Setenv("PATHWISE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("PATHWISE_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("PATHWISE_LLM_TIMEOUT", "90s")

	cfg := ConfigFromEnv()

	require.Equal(t, "openai", cfg.Provider)
	require.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	require.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	require.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	require.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestConfigFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("PATHWISE_LLM_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()
	require.Equal(t, 30*time.Second, cfg.Timeout)
}
