// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

// SortBy selects the ordering applied after filtering.
type SortBy string

const (
	SortByScore         SortBy = "score"
	SortByEstimatedTime SortBy = "estimatedTime"
	SortByDateAdded     SortBy = "dateAdded"
)

// Valid reports whether s is a known sort key.
func (s SortBy) Valid() bool {
	switch s {
	case SortByScore, SortByEstimatedTime, SortByDateAdded:
		return true
	}
	return false
}

// FilterState is the fully specified set of view parameters.
// Tags use OR semantics: an item matches when it carries any requested tag.
type FilterState struct {
	SourceType     string   `json:"sourceType" validate:"max=200"`
	Tags           []string `json:"tags" validate:"max=50,dive,max=200"`
	HideConsumed   bool     `json:"hideConsumed"`
	SortBy         SortBy   `json:"sortBy" validate:"omitempty,oneof=score estimatedTime dateAdded"`
	ShowBookmarked bool     `json:"showBookmarked"`
}

// DefaultFilterState returns the initial filter state.
func DefaultFilterState() FilterState {
	return FilterState{
		SourceType: "",
		Tags:       []string{},
		SortBy:     SortByScore,
	}
}

// Clone returns a deep copy so the tag slice is not shared.
func (f FilterState) Clone() FilterState {
	out := f
	out.Tags = make([]string, len(f.Tags))
	copy(out.Tags, f.Tags)
	return out
}

// Normalize returns a clone with an unknown sort key replaced by score.
func (f FilterState) Normalize() FilterState {
	out := f.Clone()
	if !out.SortBy.Valid() {
		out.SortBy = SortByScore
	}
	return out
}
