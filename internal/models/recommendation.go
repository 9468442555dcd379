// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

// Category names the heuristic pass that produced a recommendation.
type Category string

const (
	CategoryTrending     Category = "trending"
	CategoryPersonalized Category = "personalized"
	CategoryQuickWins    Category = "quick_wins"
	CategoryDeepDive     Category = "deep_dive"
)

// Recommendation is a suggested item with a human-readable reason.
// Confidence is a fixed per-category weight in (0,1].
type Recommendation struct {
	Item       Item     `json:"item"`
	Reason     string   `json:"reason"`
	Confidence float64  `json:"confidence"`
	Category   Category `json:"category"`
}
