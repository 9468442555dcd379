// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package recommend

import (
	"github.com/tomtom215/learnqueue/internal/analytics"
	"github.com/tomtom215/learnqueue/internal/models"
)

// LearningGoals are the static goal labels attached to learned preferences.
var LearningGoals = []string{"AI/ML", "Professional Development", "Technology Trends"}

// Learn derives preferences from engagement. Engaged items are the bookmarked
// items followed by the consumed items, each in item-list order; an item that
// is both counts twice.
func (e *Engine) Learn(items []models.Item, bookmarks models.BookmarkSet, consumed []string) models.UserPreferences {
	return Learn(e.config.Learning, items, bookmarks, consumed)
}

// Learn is the engine-free form of Engine.Learn.
func Learn(cfg LearningConfig, items []models.Item, bookmarks models.BookmarkSet, consumed []string) models.UserPreferences {
	consumedSet := models.NewBookmarkSet(consumed)

	var engaged []*models.Item
	for i := range items {
		if bookmarks.Has(items[i].ID) {
			engaged = append(engaged, &items[i])
		}
	}
	for i := range items {
		if consumedSet.Has(items[i].ID) {
			engaged = append(engaged, &items[i])
		}
	}

	var tags, sources []string
	var total float64
	for _, it := range engaged {
		tags = append(tags, it.Tags...)
		sources = append(sources, it.SourceType)
		total += it.EstimatedTimeOr(cfg.MissingTime)
	}

	prefs := models.UserPreferences{
		PreferredTags:        analytics.TopN(tags, cfg.TopTags),
		PreferredSourceTypes: analytics.TopN(sources, cfg.TopSourceTypes),
		PreferredTimeRange:   models.TimeRangeMedium,
		LearningGoals:        append([]string(nil), LearningGoals...),
	}
	if len(engaged) > 0 {
		prefs.PreferredTimeRange = bucket(cfg, total/float64(len(engaged)))
	}
	return prefs
}

func bucket(cfg LearningConfig, mean float64) models.TimeRange {
	switch {
	case mean < cfg.ShortBelow:
		return models.TimeRangeShort
	case mean > cfg.LongAbove:
		return models.TimeRangeLong
	default:
		return models.TimeRangeMedium
	}
}

// Policy returns the configured learning policy.
func (e *Engine) Policy() Policy {
	return e.config.Learning.Policy
}
