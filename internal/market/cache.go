package market

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/abhisek/pathwise/internal/profile"
)

// DefaultTTL is how long a cached snapshot stays fresh.
const DefaultTTL = 15 * time.Minute

// CachedSource caches role snapshots from an inner Source in an LRU with a
// TTL. Market data moves slowly; the ranker fetches a snapshot per candidate
// on every reevaluation, so without a cache a single blocked step can fan
// out into a dozen identical upstream calls.
type CachedSource struct {
	inner Source
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

type cacheEntry struct {
	data      *Data
	fetchedAt time.Time
}

// NewCachedSource wraps inner with an LRU of the given size and TTL.
func NewCachedSource(inner Source, size int, ttl time.Duration) (*CachedSource, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedSource{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

func (c *CachedSource) Snapshot(ctx context.Context, role string) (*Data, error) {
	key := strings.ToLower(role)

	if v, ok := c.cache.Get(key); ok {
		entry := v.(cacheEntry)
		if c.now().Sub(entry.fetchedAt) < c.ttl {
			return entry.data.clone(), nil
		}
		c.cache.Remove(key)
	}

	d, err := c.inner.Snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, cacheEntry{data: d, fetchedAt: c.now()})

	return d.clone(), nil
}

// CandidateRoles is not cached: the pool depends on the profile and is
// fetched once per reevaluation anyway.
func (c *CachedSource) CandidateRoles(ctx context.Context, prof *profile.StudentProfile) ([]string, error) {
	return c.inner.CandidateRoles(ctx, prof)
}
