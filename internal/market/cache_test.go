package market

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/profile"
)

// countingSource records how many snapshot fetches hit it.
type countingSource struct {
	inner Source
	calls int
}

func (c *countingSource) Snapshot(ctx context.Context, role string) (*Data, error) {
	c.calls++
	return c.inner.Snapshot(ctx, role)
}

func (c *countingSource) CandidateRoles(ctx context.Context, prof *profile.StudentProfile) ([]string, error) {
	return c.inner.CandidateRoles(ctx, prof)
}

func newCachedTestSource(t *testing.T, ttl time.Duration) (*CachedSource, *countingSource) {
	t.Helper()
	base, err := NewDefaultSource()
	if err != nil {
		t.Fatal(err)
	}
	counting := &countingSource{inner: base}
	cached, err := NewCachedSource(counting, 8, ttl)
	if err != nil {
		t.Fatal(err)
	}
	return cached, counting
}

func TestCacheServesRepeatFetches(t *testing.T) {
	cached, counting := newCachedTestSource(t, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := cached.Snapshot(ctx, "Data Analyst"); err != nil {
			t.Fatalf("snapshot %d: %v", i, err)
		}
	}
	if counting.calls != 1 {
		t.Errorf("upstream calls = %d, want 1", counting.calls)
	}

	// Different casing is the same cache key.
	if _, err := cached.Snapshot(ctx, "DATA ANALYST"); err != nil {
		t.Fatal(err)
	}
	if counting.calls != 1 {
		t.Errorf("upstream calls = %d, want 1 after case-variant fetch", counting.calls)
	}
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	cached, counting := newCachedTestSource(t, time.Minute)
	ctx := context.Background()

	current := time.Now()
	cached.now = func() time.Time { return current }

	if _, err := cached.Snapshot(ctx, "Data Analyst"); err != nil {
		t.Fatal(err)
	}
	current = current.Add(30 * time.Second)
	if _, err := cached.Snapshot(ctx, "Data Analyst"); err != nil {
		t.Fatal(err)
	}
	if counting.calls != 1 {
		t.Errorf("upstream calls = %d, want 1 inside TTL", counting.calls)
	}

	current = current.Add(time.Minute)
	if _, err := cached.Snapshot(ctx, "Data Analyst"); err != nil {
		t.Fatal(err)
	}
	if counting.calls != 2 {
		t.Errorf("upstream calls = %d, want 2 after expiry", counting.calls)
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	cached, _ := newCachedTestSource(t, time.Minute)
	ctx := context.Background()

	a, err := cached.Snapshot(ctx, "Data Analyst")
	if err != nil {
		t.Fatal(err)
	}
	a.ActiveJobs = -1
	a.RequiredSkills[0] = "mutated"

	b, err := cached.Snapshot(ctx, "Data Analyst")
	if err != nil {
		t.Fatal(err)
	}
	if b.ActiveJobs == -1 {
		t.Error("cached entry mutated through a returned snapshot")
	}
	if b.RequiredSkills[0] == "mutated" {
		t.Error("cached skills slice aliased by a returned snapshot")
	}
}

func TestCacheErrorsPassThrough(t *testing.T) {
	cached, counting := newCachedTestSource(t, time.Minute)
	ctx := context.Background()

	if _, err := cached.Snapshot(ctx, "Lion Tamer"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	// Errors are not cached.
	if _, err := cached.Snapshot(ctx, "Lion Tamer"); err == nil {
		t.Fatal("expected error again")
	}
	if counting.calls != 2 {
		t.Errorf("upstream calls = %d, want 2 (errors not cached)", counting.calls)
	}
}
