// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package cache provides a thread-safe, generic in-memory cache with TTL support.

The item list fetched from the upstream source is the main tenant: it is
served from the cache for the configured TTL (default 5m) and re-warmed by the
supervised refresh service.

# Expiration

Entries expire lazily. Get drops an expired entry and reports a miss; Purge
sweeps everything that has expired. There is no background goroutine, so a
Cache needs no Close.

# Metrics

Every lookup increments learnqueue_cache_hits_total or
learnqueue_cache_misses_total labelled with the cache name. Removals increment
learnqueue_cache_evictions_total.
*/
package cache
