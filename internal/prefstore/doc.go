// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package prefstore is the persisted key-value store for user state.
//
// Keys are namespaced strings holding JSON values, matching the layout a
// browser build keeps in localStorage:
//
//	ai-dashboard-bookmarks     []string
//	ai-dashboard-preferences   UserPreferences
//	ai-dashboard-streaks       StreakState
//	ai-dashboard-saved-views   []SavedView
//	consumed                   ConsumedLog
//	notes-<item id>            string
//	darkMode                   bool
//
// Writes are unconditional overwrites. Reads go through Load, which falls back
// to the caller's default when a key is absent or its value cannot be decoded;
// a malformed value is logged and counted, never returned as an error.
//
// Backends:
//   - badger: embedded LSM store, the default
//   - sqlite: single-table store on modernc.org/sqlite, no cgo
//   - memory: map-backed, for tests and ephemeral runs
package prefstore
