// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/learnqueue/internal/metrics"
)

// Entry represents a cached value with expiration
type Entry[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory cache with TTL support.
// Expired entries are dropped lazily on Get or by Purge.
type Cache[V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	now     func() time.Time
	stats   Stats
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClock overrides the time source, for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) { c.now = now }
}

// New creates a cache whose entries live for ttl. The name labels the
// Prometheus hit/miss counters.
//
// Example:
//
//	items := cache.New[[]models.Item]("items", 5*time.Minute)
//	items.Set("notion", fetched)
//	if cached, ok := items.Get("notion"); ok {
//	    return cached
//	}
func New[V any](name string, ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		name:    name,
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stats.LastCleanup = c.now()
	return c
}

// Get retrieves a value by key. An expired entry is removed and counted as a
// miss plus an eviction.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.stats.Misses++
		metrics.RecordCacheLookup(c.name, false)
		var zero V
		return zero, false
	}

	if c.now().After(entry.ExpiresAt) {
		delete(c.entries, key)
		c.stats.Misses++
		c.stats.Evictions++
		c.stats.TotalKeys = int64(len(c.entries))
		metrics.RecordCacheLookup(c.name, false)
		metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		var zero V
		return zero, false
	}

	c.stats.Hits++
	metrics.RecordCacheLookup(c.name, true)
	return entry.Data, true
}

// Set stores a value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{
		Data:      value,
		ExpiresAt: c.now().Add(ttl),
	}
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes an entry. No-op for unknown keys.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	c.stats.Evictions++
	c.stats.TotalKeys = int64(len(c.entries))
	metrics.CacheEvictions.WithLabelValues(c.name).Inc()
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]Entry[V])
	c.stats.Evictions += int64(n)
	c.stats.TotalKeys = 0
	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(n))
}

// Purge removes all expired entries and returns how many were dropped.
func (c *Cache[V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			n++
		}
	}
	c.stats.Evictions += int64(n)
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
	if n > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(n))
	}
	return n
}

// GetStats returns a snapshot of the counters.
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}
