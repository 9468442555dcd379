// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package dashboard composes the pure engines with persistence, the item source
and the event bus.

Every operation the HTTP API and the CLI expose goes through Service:

  - reads: filtered items, facets, analytics, recommendations, streak,
    saved views, the one-shot Snapshot
  - engagement: bookmark toggles, consumed toggles, notes
  - settings: dark mode, learned preferences
  - maintenance: export selection, local-storage import

# Concurrency

State lives in a prefstore.Store. Each operation loads what it needs, applies
an engine, and writes the result back while holding a single mutex, so the
engines always observe one consistent snapshot and concurrent requests
resolve as last-write-wins. The item list is fetched before the lock is
taken; the cached source makes that cheap.

# Failure policy

A failed item fetch is not an operation error for composite reads: Snapshot
reports it in FetchError and renders zero items. Malformed persisted values
fall back to their defaults inside prefstore.Load. Event publishing is best
effort and never fails the user action.
*/
package dashboard
