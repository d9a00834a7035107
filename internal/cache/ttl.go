// Package cache provides the in-memory caches shared by the stream hub.
package cache

import (
	"sync"
	"time"

	"github.com/juju/clock"
)

// TTL is a map whose whole content is dropped once ttl has elapsed since the
// previous flush. The mutex is held only for the map access, never across I/O.
type TTL[K comparable, V any] struct {
	mu        sync.Mutex
	clock     clock.Clock
	ttl       time.Duration
	entries   map[K]V
	flushedAt time.Time
}

func NewTTL[K comparable, V any](clk clock.Clock, ttl time.Duration) *TTL[K, V] {
	if clk == nil {
		clk = clock.WallClock
	}
	return &TTL[K, V]{
		clock:     clk,
		ttl:       ttl,
		entries:   make(map[K]V),
		flushedAt: clk.Now(),
	}
}

// Get returns the cached value and whether it was present.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked()
	v, ok := c.entries[key]
	return v, ok
}

func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked()
	c.entries[key] = value
}

func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Flush drops every entry and restarts the TTL window.
func (c *TTL[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.flushedAt = c.clock.Now()
}

func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked()
	return len(c.entries)
}

func (c *TTL[K, V]) expireLocked() {
	now := c.clock.Now()
	if now.Sub(c.flushedAt) < c.ttl {
		return
	}
	clear(c.entries)
	c.flushedAt = now
}
