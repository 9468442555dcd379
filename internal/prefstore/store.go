// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package prefstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Well-known keys.
const (
	KeyBookmarks   = "ai-dashboard-bookmarks"
	KeyPreferences = "ai-dashboard-preferences"
	KeyStreaks     = "ai-dashboard-streaks"
	KeySavedViews  = "ai-dashboard-saved-views"
	KeyConsumed    = "consumed"
	KeyDarkMode    = "darkMode"

	// NotePrefix prefixes per-item note keys.
	NotePrefix = "notes-"
)

// Backend names accepted by Open.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// NoteKey returns the key holding the note for itemID.
func NoteKey(itemID string) string {
	return NotePrefix + itemID
}

// IsKnownKey reports whether key belongs to the store's namespace.
func IsKnownKey(key string) bool {
	switch key {
	case KeyBookmarks, KeyPreferences, KeyStreaks, KeySavedViews, KeyConsumed, KeyDarkMode:
		return true
	}
	return strings.HasPrefix(key, NotePrefix) && len(key) > len(NotePrefix)
}

// Store is a byte-valued key-value store.
type Store interface {
	// Get returns the raw value for key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists keys with the given prefix in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Backend names the implementation.
	Backend() string

	Close() error
}

// Open creates a store for backend. path is ignored by the memory backend.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(backend, path string, logger zerolog.Logger) (Store, error) {
	var (
		s   Store
		err error
	)
	switch backend {
	case BackendBadger:
		s, err = OpenBadger(path)
	case BackendSQLite:
		s, err = OpenSQLite(path)
	case BackendMemory:
		s = NewMemory()
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("component", "prefstore").
		Str("backend", backend).
		Str("path", path).
		Msg("preference store opened")
	return Instrument(s), nil
}
