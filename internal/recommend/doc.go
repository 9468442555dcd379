// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package recommend ranks unengaged items into a short suggestion list and
// learns user preferences from engagement.
//
// # Architecture
//
// The engine runs an ordered list of passes over the candidate pool (items
// neither consumed nor bookmarked):
//
//   - Trending: highly scored items
//   - Personalized: items matching preferred tags or source types
//   - Quick wins: short, well-rated items
//   - Deep dive: long-form items
//
// Each pass emits up to its cap with a constant confidence. The merged output
// is de-duplicated by item id keeping the first occurrence, so pass order is the
// tie-break, then stably sorted by confidence and truncated to MaxResults.
//
// # Preference Learning
//
// Learn derives preferred tags, source types and a time range from the
// bookmarked and consumed items. Policy decides whether saved preferences are
// refreshed on every engagement change or only computed once.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	recs := engine.Recommend(recommend.Request{
//	    Items:       items,
//	    Bookmarks:   bookmarks,
//	    Consumed:    consumedIDs,
//	    Preferences: prefs,
//	})
//
// # Thread Safety
//
// The engine holds no per-request state and is safe for concurrent use.
package recommend
