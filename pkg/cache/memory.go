package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a process-local Cache backed by a mutex-guarded map.
// Suitable for single-scenario searches where the cache does not need to
// survive the process.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	stats   Stats
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.expired() {
		if ok {
			delete(c.entries, key)
		}
		c.stats.Misses++
		return nil, false, nil
	}

	c.stats.Hits++

	value := make([]byte, len(e.value))
	copy(value, e.value)

	return value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	copied := make([]byte, len(value))
	copy(copied, value)

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: copied, expiresAt: expiresAt}
	c.stats.Sets++
	c.stats.Size = int64(len(c.entries))

	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.stats.Deletes++
	c.stats.Size = int64(len(c.entries))

	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.stats.Size = 0

	return nil
}

func (c *MemoryCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.stats
}

func (c *MemoryCache) Close() error {
	return nil
}
