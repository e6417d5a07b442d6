package api

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a cached response stays fresh.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	body     []byte
	storedAt time.Time
}

// responseCache maps endpoint paths (query string included) to raw response
// bodies. Expiry is lazy: a stale entry stays in the map and reads as a
// miss until the next Put replaces it. There is no size cap; the key set is
// bounded by the watch list, which a single caller controls.
type responseCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached body for key, or nil and false if the key is
// absent or older than the TTL.
func (c *responseCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.body, true
}

// Put stores body under key with a fresh timestamp, replacing any previous
// entry outright.
func (c *responseCache) Put(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{body: body, storedAt: c.now()}
}
