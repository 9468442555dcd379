// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package filter implements the dashboard's filter and sort pipeline.
//
// Every function is pure: items in, a new slice out, inputs untouched. Apply is
// deterministic and idempotent, so Apply(Apply(items, f), f) equals
// Apply(items, f).
//
// # Predicate
//
// Clauses are AND-combined:
//   - search query: case-insensitive substring of title, summary or whyItMatters
//   - sourceType: exact match when set
//   - tags: at least one requested tag present (OR)
//   - hideConsumed: drop consumed items
//   - showBookmarked: keep only bookmarked items
//
// # Ordering
//
// Sorting is stable. Items missing the sort field go last in input order:
//   - score: descending
//   - estimatedTime: ascending
//   - dateAdded: newest first; unparseable dates count as missing
package filter
