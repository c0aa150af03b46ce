package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// hangingProvider never answers; it only returns once the context dies.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestTimeoutBoundsHangingCall(t *testing.T) {
	p := WithTimeout(hangingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed > time.Second {
		t.Errorf("call took %v, want well under a second", elapsed)
	}
}

func TestTimeoutBoundsRetriedCall(t *testing.T) {
	// The timeout wraps the retry loop, so a provider that hangs on every
	// attempt still returns within the budget instead of burning attempts.
	p := WithTimeout(WithRetry(hangingProvider{}, fastRetry(3)), 20*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestTimeoutPassesFastCallsThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithTimeout(mock, time.Minute)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}

func TestTimeoutDisabledWhenNonPositive(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Error("zero timeout should return the provider unwrapped")
	}
}
