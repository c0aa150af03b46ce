package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AuditEntry is one recorded LLM call.
type AuditEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AuditSink persists audit entries. The store's event repo implements it.
type AuditSink interface {
	AppendLLMRequest(ctx context.Context, entry AuditEntry) error
}

// AuditProvider records every call as an audit event. Persistence failures
// are logged and swallowed; auditing never fails the request itself.
type AuditProvider struct {
	inner Provider
	name  string
	sink  AuditSink
	log   *zap.Logger
}

// WithAudit wraps a Provider with request auditing. name is the provider
// identifier recorded on every entry ("anthropic", "openai", ...).
func WithAudit(p Provider, name string, sink AuditSink, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuditProvider{inner: p, name: name, sink: sink, log: log}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := a.inner.Generate(ctx, req)

	entry := AuditEntry{
		Provider:  a.name,
		Model:     a.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	if sinkErr := a.sink.AppendLLMRequest(ctx, entry); sinkErr != nil {
		a.log.Warn("llm audit append failed", zap.Error(sinkErr))
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}
