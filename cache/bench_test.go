package cache

import (
	"context"
	"testing"
)

// BenchmarkMemoryCache_Get_Hit measures cache hit performance.
func BenchmarkMemoryCache_Get_Hit(b *testing.B) {
	c := NewMemoryCache[string]()
	ctx := context.Background()

	_, _, _ = c.GetOrCreate(ctx, "fmt:key", func(context.Context) (string, error) { return "v", nil })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(ctx, "fmt:key")
	}
}

// BenchmarkMemoryCache_GetOrCreate_Hit measures the cached lookup path.
func BenchmarkMemoryCache_GetOrCreate_Hit(b *testing.B) {
	c := NewMemoryCache[string]()
	ctx := context.Background()
	build := func(context.Context) (string, error) { return "v", nil }

	_, _, _ = c.GetOrCreate(ctx, "fmt:key", build)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.GetOrCreate(ctx, "fmt:key", build)
	}
}

// BenchmarkFingerprint measures key derivation for a six-part option tuple.
func BenchmarkFingerprint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Fingerprint("short", "short", "en_US", "Europe/Berlin", "gregorian", "yyyy-MM-dd")
	}
}

func BenchmarkFastKeyer(b *testing.B) {
	var k FastKeyer
	for i := 0; i < b.N; i++ {
		_, _ = k.Key("short", "short", "en_US", "Europe/Berlin", "gregorian", "yyyy-MM-dd")
	}
}
