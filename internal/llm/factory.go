package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with a call
// timeout, retry and request auditing. Middleware order:
// caller -> timeout -> retry -> audit -> base, so the timeout bounds the
// whole call including its retry and every physical attempt is audited.
func NewProvider(ctx context.Context, cfg Config, sink AuditSink, log *zap.Logger) (Provider, error) {
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
		return WithTimeout(NewMockProvider(), cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if sink != nil {
		base = WithAudit(base, cfg.Provider, sink, log)
	}
	return WithTimeout(WithRetry(base, cfg.Retry), cfg.Timeout), nil
}
