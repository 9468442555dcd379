// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

// BookmarkSet is an in-memory membership index over bookmarked item ids.
// The persisted form is an id array; see NewBookmarkSet.
type BookmarkSet map[string]struct{}

// NewBookmarkSet builds a set from persisted ids.
func NewBookmarkSet(ids []string) BookmarkSet {
	s := make(BookmarkSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set has no members.
func (s BookmarkSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
