// file: service/cache.go

package service

import (
	"sync"
	"time"
)

// ICache defines the contract for the read-through cache fronting the
// analytics endpoints. This abstraction decouples AnalyticsService from a
// concrete implementation, enabling easier testing.
type ICache interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte, ttl time.Duration)
	Delete(key string)
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// TTLCache is an in-process cache with per-entry expiry. Expired entries
// are dropped lazily on read.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{entries: map[string]cacheEntry{}}
}

func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

func (c *TTLCache) Set(key string, data []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{data: data, expiresAt: time.Now().Add(ttl)}
}

func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}
