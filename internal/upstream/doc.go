// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package upstream fetches the read-only item list from the external content
database.

Sources:
  - NotionSource queries a Notion database (POST /v1/databases/{id}/query),
    following has_more/next_cursor up to a page limit, and maps page properties
    onto Item.
  - JSONSource GETs a URL returning either a bare item array or {"items": [...]}.

Both pace requests through a golang.org/x/time/rate limiter. New wraps the
configured source in a CircuitBreakerSource (sony/gobreaker) that rejects calls
while the source is failing and records fetch metrics.

Every failure surfaces as *FetchError carrying one user-visible message. There
are no automatic retries; the caller renders zero items plus the message.
*/
package upstream
