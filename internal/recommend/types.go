// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package recommend

import (
	"github.com/tomtom215/learnqueue/internal/models"
)

// Policy decides when saved preferences are refreshed.
type Policy string

const (
	// PolicyOnce learns preferences only when none have been saved.
	PolicyOnce Policy = "once"

	// PolicyContinuous relearns after every engagement change.
	PolicyContinuous Policy = "continuous"
)

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == PolicyOnce || p == PolicyContinuous
}

// ShouldLearn reports whether preferences must be (re)computed given whether a
// saved copy exists.
func (p Policy) ShouldLearn(saved bool) bool {
	return !saved || p == PolicyContinuous
}

// Request carries the inputs of one Recommend call.
type Request struct {
	Items       []models.Item
	Bookmarks   models.BookmarkSet
	Consumed    []string
	Preferences models.UserPreferences
}

// Pass selects and annotates candidates for one category.
type Pass interface {
	// Category is the label attached to every emitted recommendation.
	Category() models.Category

	// Select returns up to the pass cap from candidates, best first.
	// candidates must not be modified.
	Select(candidates []models.Item, prefs models.UserPreferences) []models.Recommendation
}

// Metrics tracks engine activity since start.
type Metrics struct {
	Requests        int64                     `json:"requests"`
	Recommendations int64                     `json:"recommendations"`
	ByCategory      map[models.Category]int64 `json:"by_category"`
}
