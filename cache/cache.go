package cache

import (
	"context"
	"errors"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilCache   = errors.New("cache: cache is nil")
	ErrNilBuilder = errors.New("cache: build func is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
)

// BuildFunc constructs the value for a missing key.
type BuildFunc[V any] func(ctx context.Context) (V, error)

// Cache is the interface for caches of built values such as formatters.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Growth: entries are never evicted for the lifetime of the cache.
// - Errors: Get never errors; it returns (zero, false) on miss.
// - Errors returned by a BuildFunc are never stored.
type Cache[V any] interface {
	// Get retrieves a cached value. Returns (zero, false) on miss.
	Get(ctx context.Context, key string) (V, bool)

	// GetOrCreate returns the cached value for key, building and storing it
	// on miss. created reports whether this call ran build.
	GetOrCreate(ctx context.Context, key string, build BuildFunc[V]) (value V, created bool, err error)

	// Len returns the number of cached entries.
	Len() int
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
