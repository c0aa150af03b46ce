package llm

import (
	"context"
	"time"
)

// TimeoutProvider bounds every Generate call with a deadline. It wraps the
// retry decorator, so the budget covers the whole call including its retry;
// the retry loop stops as soon as the deadline expires.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider so each call runs under a deadline. A
// non-positive timeout returns the provider unwrapped.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
