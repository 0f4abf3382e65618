// Package cache provides a small process-wide TTL cache. Entries expire on a
// fixed deadline and are refreshed lazily by callers; Sweep exists so a
// janitor can drop expired entries without touching live ones.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so tests can simulate expiry deterministically.
type Clock func() time.Time

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a string-keyed TTL cache. Safe for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	clock   Clock
	entries map[string]entry[V]
}

// New creates a cache using the given clock. A nil clock means time.Now.
func New[V any](clock Clock) *Cache[V] {
	if clock == nil {
		clock = time.Now
	}
	return &Cache[V]{
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !c.clock().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl from now.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.clock().Add(ttl),
	}
}

// Delete removes key if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *Cache[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	dropped := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
