package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// memSink records audit entries in memory.
type memSink struct {
	entries []AuditEntry
	err     error
}

func (m *memSink) AppendLLMRequest(_ context.Context, entry AuditEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func TestAuditRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 50},
	})
	sink := &memSink{}
	p := WithAudit(mock, "mock", sink, nil)

	ctx := WithPurpose(context.Background(), "roadmap")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(sink.entries))
	}
	e := sink.entries[0]
	if e.Provider != "mock" || e.Purpose != "roadmap" || !e.Success {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.InputTokens != 100 || e.OutputTokens != 50 {
		t.Errorf("tokens = %d/%d, want 100/50", e.InputTokens, e.OutputTokens)
	}
}

func TestAuditRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	sink := &memSink{}
	p := WithAudit(mock, "mock", sink, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(sink.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(sink.entries))
	}
	e := sink.entries[0]
	if e.Success || e.ErrorMessage == "" {
		t.Errorf("failure not recorded: %+v", e)
	}
}

func TestAuditSinkFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	sink := &memSink{err: errors.New("disk full")}
	p := WithAudit(mock, "mock", sink, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Errorf("audit failure leaked into the request: %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("unset purpose = %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "profile")
	if got := PurposeFrom(ctx); got != "profile" {
		t.Errorf("purpose = %q, want profile", got)
	}
}
