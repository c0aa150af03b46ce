package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps backoff out of test runtime.
func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  1.0,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}},
		MockResponse{Content: json.RawMessage(`{"ok": true}`)},
	)
	p := WithRetry(mock, fastRetry(2))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"ok": true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(2))

	_, err := p.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want exactly 2 (single retry)", mock.CallCount())
	}
}

func TestRetryInvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema mismatch")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema mismatch")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (malformed output gets one fresh attempt)", mock.CallCount())
	}
}

func TestRetryMaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (truncation is not transient)", mock.CallCount())
	}
}

func TestRetryContextCancellationNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryHonorsRateLimitHint(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(2))

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if elapsed := time.Since(start); elapsed < time.Millisecond {
		t.Errorf("elapsed %v, want at least the RetryAfter hint", elapsed)
	}
}

func TestValidateResponseAgainstSchema(t *testing.T) {
	schema := &Schema{
		Name: "test-schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
			"required":             []any{"name"},
			"additionalProperties": false,
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"name": "ok"}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	err := validateResponse(schema, json.RawMessage(`{"other": 1}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}

	// No schema means no validation.
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Errorf("nil schema should skip validation: %v", err)
	}
}
