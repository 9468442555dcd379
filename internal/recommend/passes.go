// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/learnqueue/internal/models"
)

type trendingPass struct{ cfg TrendingConfig }

func (p trendingPass) Category() models.Category { return models.CategoryTrending }

func (p trendingPass) Select(candidates []models.Item, _ models.UserPreferences) []models.Recommendation {
	picked := keep(candidates, func(it *models.Item) bool {
		return it.Score != nil && *it.Score >= p.cfg.MinScore
	})
	byScoreDesc(picked)
	return annotate(capItems(picked, p.cfg.Cap), p.Category(), p.cfg.Confidence, func(it *models.Item) string {
		return fmt.Sprintf("High-rated content (%s/10) that's trending in the community", num(it.ScoreOr(0)))
	})
}

type personalizedPass struct{ cfg PersonalizedConfig }

func (p personalizedPass) Category() models.Category { return models.CategoryPersonalized }

func (p personalizedPass) Select(candidates []models.Item, prefs models.UserPreferences) []models.Recommendation {
	type match struct {
		item models.Item
		tags []string
	}

	var matches []match
	for i := range candidates {
		it := &candidates[i]
		tags := matchedTags(it, prefs.PreferredTags)
		if len(tags) > 0 || contains(prefs.PreferredSourceTypes, it.SourceType) {
			matches = append(matches, match{item: *it, tags: tags})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].tags) > len(matches[j].tags)
	})
	if len(matches) > p.cfg.Cap {
		matches = matches[:p.cfg.Cap]
	}

	out := make([]models.Recommendation, 0, len(matches))
	for _, m := range matches {
		reason := m.item.SourceType + " content based on your preferences"
		if len(m.tags) > 0 {
			shown := m.tags
			if len(shown) > 2 {
				shown = shown[:2]
			}
			reason = "Matches your interests in " + strings.Join(shown, ", ")
		}
		out = append(out, models.Recommendation{
			Item:       m.item,
			Reason:     reason,
			Confidence: p.cfg.Confidence,
			Category:   p.Category(),
		})
	}
	return out
}

type quickWinsPass struct{ cfg QuickWinsConfig }

func (p quickWinsPass) Category() models.Category { return models.CategoryQuickWins }

func (p quickWinsPass) Select(candidates []models.Item, _ models.UserPreferences) []models.Recommendation {
	picked := keep(candidates, func(it *models.Item) bool {
		return it.EstimatedTime != nil && *it.EstimatedTime <= p.cfg.MaxTime &&
			it.Score != nil && *it.Score >= p.cfg.MinScore
	})
	byScoreDesc(picked)
	return annotate(capItems(picked, p.cfg.Cap), p.Category(), p.cfg.Confidence, func(it *models.Item) string {
		return fmt.Sprintf("Quick %smin read with high impact (%s/10)", num(it.EstimatedTimeOr(0)), num(it.ScoreOr(0)))
	})
}

type deepDivePass struct{ cfg DeepDiveConfig }

func (p deepDivePass) Category() models.Category { return models.CategoryDeepDive }

func (p deepDivePass) Select(candidates []models.Item, _ models.UserPreferences) []models.Recommendation {
	picked := keep(candidates, func(it *models.Item) bool {
		return it.EstimatedTime != nil && *it.EstimatedTime >= p.cfg.MinTime
	})
	byScoreDesc(picked)
	return annotate(capItems(picked, p.cfg.Cap), p.Category(), p.cfg.Confidence, func(it *models.Item) string {
		return fmt.Sprintf("Comprehensive %smin deep dive for thorough understanding", num(it.EstimatedTimeOr(0)))
	})
}

// keep copies the items satisfying pred.
func keep(items []models.Item, pred func(*models.Item) bool) []models.Item {
	var out []models.Item
	for i := range items {
		if pred(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// byScoreDesc sorts stably by score, absent scores ranking as zero.
func byScoreDesc(items []models.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ScoreOr(0) > items[j].ScoreOr(0)
	})
}

func capItems(items []models.Item, n int) []models.Item {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func annotate(items []models.Item, cat models.Category, confidence float64, reason func(*models.Item) string) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(items))
	for i := range items {
		out = append(out, models.Recommendation{
			Item:       items[i],
			Reason:     reason(&items[i]),
			Confidence: confidence,
			Category:   cat,
		})
	}
	return out
}

func matchedTags(it *models.Item, preferred []string) []string {
	var out []string
	for _, tag := range it.Tags {
		if contains(preferred, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// num formats 8 as "8" and 8.5 as "8.5".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
