package cache

import (
	"context"
	"time"
)

// Cache defines the interface for memoizing evaluation results.
//
// Falsification searches can re-propose samples, and model simulations are
// pure, so a cache never changes a search outcome; it only skips repeated
// simulation cost.
type Cache interface {
	// Get retrieves a cached value by key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given key and TTL. A zero TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a cached value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error

	// Stats returns cache statistics.
	Stats() Stats

	// Close releases any resources held by the cache.
	Close() error
}

// Stats contains cache performance statistics.
type Stats struct {
	Hits    int64
	Misses  int64
	Sets    int64
	Deletes int64
	Size    int64
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}
