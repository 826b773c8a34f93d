// Package cache provides deterministic formatter caching.
//
// It provides a Cache interface with a monotonic memory implementation,
// SHA-256 fingerprinting of option tuples, and de-duplicated construction
// of entries that are requested concurrently.
package cache
