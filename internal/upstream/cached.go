// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/cache"
	"github.com/tomtom215/learnqueue/internal/models"
)

const itemsCacheName = "items"

// CachedSource serves the last successful fetch for a TTL. Failed fetches are
// never cached. Concurrent misses share a single upstream call.
type CachedSource struct {
	src    Source
	items  *cache.Cache[[]models.Item]
	fetch  sync.Mutex
	logger zerolog.Logger

	stateMu     sync.RWMutex
	lastFetched time.Time
	lastErr     error
}

// NewCachedSource wraps src with an item cache.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCachedSource(src Source, ttl time.Duration, logger zerolog.Logger) *CachedSource {
	return &CachedSource{
		src:    src,
		items:  cache.New[[]models.Item](itemsCacheName, ttl),
		logger: logger.With().Str("component", "upstream").Str("source", src.Name()).Logger(),
	}
}

// Name implements Source.
func (c *CachedSource) Name() string {
	return c.src.Name()
}

// Fetch returns cached items when fresh, otherwise fetches from the source.
// The returned slice is shared; callers must not modify it.
func (c *CachedSource) Fetch(ctx context.Context) ([]models.Item, error) {
	if items, ok := c.items.Get(c.src.Name()); ok {
		return items, nil
	}

	c.fetch.Lock()
	defer c.fetch.Unlock()

	// Another caller may have filled the cache while we waited.
	if items, ok := c.items.Get(c.src.Name()); ok {
		return items, nil
	}
	return c.load(ctx)
}

// Refresh fetches unconditionally and replaces the cached list on success.
func (c *CachedSource) Refresh(ctx context.Context) ([]models.Item, error) {
	c.fetch.Lock()
	defer c.fetch.Unlock()
	return c.load(ctx)
}

// Invalidate drops the cached list.
func (c *CachedSource) Invalidate() {
	c.items.Delete(c.src.Name())
}

// LastFetch reports when the last successful fetch completed and the error of
// the most recent attempt, if it failed.
func (c *CachedSource) LastFetch() (time.Time, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.lastFetched, c.lastErr
}

func (c *CachedSource) load(ctx context.Context) ([]models.Item, error) {
	items, err := c.src.Fetch(ctx)

	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if err != nil {
		c.lastErr = err
		c.logger.Warn().Err(err).Msg("item fetch failed")
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	c.items.Set(c.src.Name(), items)
	c.lastFetched = time.Now()
	c.lastErr = nil
	c.logger.Debug().Int("items", len(items)).Msg("item cache refreshed")
	return items, nil
}
