// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

// TimeRange buckets the mean estimated time of engaged items.
type TimeRange string

const (
	TimeRangeShort  TimeRange = "short"
	TimeRangeMedium TimeRange = "medium"
	TimeRangeLong   TimeRange = "long"
)

// UserPreferences are learned from engagement and persisted.
type UserPreferences struct {
	PreferredTags        []string  `json:"preferredTags"`
	PreferredSourceTypes []string  `json:"preferredSourceTypes"`
	PreferredTimeRange   TimeRange `json:"preferredTimeRange"`
	LearningGoals        []string  `json:"learningGoals"`
}

// DefaultUserPreferences is what the scorer uses before anything is learned.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		PreferredTags:        []string{},
		PreferredSourceTypes: []string{},
		PreferredTimeRange:   TimeRangeMedium,
		LearningGoals:        []string{},
	}
}
