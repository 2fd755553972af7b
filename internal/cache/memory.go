// Package cache provides an in-process store whose entries stay fresh for a fixed window.
package cache

import (
	"sync"
	"time"
)

// Entry is a cached value together with the moment it was stored.
type Entry[V any] struct {
	Value    V
	StoredAt time.Time
}

// Memory is a concurrency-safe map cache. Freshness is checked when an entry is read;
// stale entries stay in memory until the same key is written again.
type Memory[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates a cache whose entries are fresh for ttl. A nil clock means time.Now.
func NewMemory[V any](ttl time.Duration, now func() time.Time) *Memory[V] {
	if now == nil {
		now = time.Now
	}
	return &Memory[V]{
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the value stored under key if it is younger than the freshness window.
func (c *Memory[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if !found || c.now().Sub(entry.StoredAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

// Set stores value under key, stamped with the current time. Last writer wins.
func (c *Memory[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{Value: value, StoredAt: c.now()}
}

// Len reports how many entries are held, stale ones included.
func (c *Memory[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the freshness window.
func (c *Memory[V]) TTL() time.Duration {
	return c.ttl
}
