// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/learnqueue/internal/models"
)

// Scope selects which items are exported.
type Scope string

// Export scopes.
const (
	ScopeAll        Scope = "all"
	ScopeBookmarked Scope = "bookmarked"
	ScopeConsumed   Scope = "consumed"
)

// ErrUnknownScope is returned by ParseScope for unrecognized names.
var ErrUnknownScope = errors.New("unknown export scope")

// DefaultScope matches the export dialog's initial selection.
const DefaultScope = ScopeBookmarked

// ParseScope accepts the scope names case-insensitively. Empty yields DefaultScope.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultScope, nil
	case ScopeAll:
		return ScopeAll, nil
	case ScopeBookmarked:
		return ScopeBookmarked, nil
	case ScopeConsumed:
		return ScopeConsumed, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownScope, s)
}

// Label is the capitalized scope name used in titles.
func (s Scope) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Select returns the items in scope, in input order.
func Select(items []models.Item, scope Scope, bookmarks models.BookmarkSet) []models.Item {
	out := make([]models.Item, 0, len(items))
	for i := range items {
		switch scope {
		case ScopeBookmarked:
			if !bookmarks.Has(items[i].ID) {
				continue
			}
		case ScopeConsumed:
			if !items[i].Consumed {
				continue
			}
		}
		out = append(out, items[i])
	}
	return out
}
