package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MemoryCache is an in-memory cache that never evicts.
type MemoryCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	group   singleflight.Group
}

// NewMemoryCache creates a new empty in-memory cache.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return &MemoryCache[V]{
		entries: make(map[string]V),
	}
}

// Get retrieves a value from the cache. Returns (zero, false) on miss.
func (c *MemoryCache[V]) Get(_ context.Context, key string) (V, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	return v, ok
}

// GetOrCreate returns the cached value or builds it.
// Concurrent callers for the same key share one build. A failed build is not
// stored and is reported only to the caller that ran it; waiters retry with
// their own build.
func (c *MemoryCache[V]) GetOrCreate(ctx context.Context, key string, build BuildFunc[V]) (V, bool, error) {
	var zero V
	if err := ValidateKey(key); err != nil {
		return zero, false, err
	}
	if build == nil {
		return zero, false, ErrNilBuilder
	}

	for {
		if v, ok := c.Get(ctx, key); ok {
			return v, false, nil
		}

		ran := false
		v, err, _ := c.group.Do(key, func() (any, error) {
			if v, ok := c.Get(ctx, key); ok {
				return v, nil
			}

			ran = true
			built, err := build(ctx)
			if err != nil {
				return nil, err
			}

			c.mu.Lock()
			c.entries[key] = built
			c.mu.Unlock()
			return built, nil
		})

		if err == nil {
			value, _ := v.(V)
			return value, ran, nil
		}
		if ran {
			return zero, false, err
		}
		// A peer's build failed; run our own.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, false, ctxErr
		}
	}
}

// Len returns the number of cached entries.
func (c *MemoryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure MemoryCache implements Cache
var _ Cache[int] = (*MemoryCache[int])(nil)
