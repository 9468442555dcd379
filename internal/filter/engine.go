// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package filter

import (
	"sort"
	"strings"

	"github.com/tomtom215/learnqueue/internal/models"
)

// Apply filters items by f, bookmarks and query, then sorts by f.SortBy.
func Apply(items []models.Item, f models.FilterState, bookmarks models.BookmarkSet, query string) []models.Item {
	q := strings.ToLower(query)

	result := make([]models.Item, 0, len(items))
	for i := range items {
		if Matches(&items[i], f, bookmarks, q) {
			result = append(result, items[i])
		}
	}

	Sort(result, f.SortBy)
	return result
}

// Matches reports whether item passes every clause. lowerQuery must already
// be lowercased.
func Matches(item *models.Item, f models.FilterState, bookmarks models.BookmarkSet, lowerQuery string) bool {
	if lowerQuery != "" && !matchesQuery(item, lowerQuery) {
		return false
	}
	if f.SourceType != "" && item.SourceType != f.SourceType {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(item, f.Tags) {
		return false
	}
	if f.HideConsumed && item.Consumed {
		return false
	}
	if f.ShowBookmarked && !bookmarks.Has(item.ID) {
		return false
	}
	return true
}

func matchesQuery(item *models.Item, q string) bool {
	return strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Summary), q) ||
		strings.Contains(strings.ToLower(item.WhyItMatters), q)
}

func hasAnyTag(item *models.Item, tags []string) bool {
	for _, tag := range tags {
		if item.HasTag(tag) {
			return true
		}
	}
	return false
}

// Sort orders items in place. Unknown keys leave the order unchanged.
func Sort(items []models.Item, by models.SortBy) {
	var less func(a, b *models.Item) bool

	switch by {
	case models.SortByScore:
		less = func(a, b *models.Item) bool {
			return nullsLast(a.Score, b.Score, func(x, y float64) bool { return x > y })
		}
	case models.SortByEstimatedTime:
		less = func(a, b *models.Item) bool {
			return nullsLast(a.EstimatedTime, b.EstimatedTime, func(x, y float64) bool { return x < y })
		}
	case models.SortByDateAdded:
		less = func(a, b *models.Item) bool {
			ta, okA := a.AddedAt()
			tb, okB := b.AddedAt()
			switch {
			case !okA:
				return false
			case !okB:
				return true
			default:
				return ta.After(tb)
			}
		}
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(&items[i], &items[j])
	})
}

// nullsLast orders present values by cmp and places nil after every present value.
func nullsLast(a, b *float64, cmp func(x, y float64) bool) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return cmp(*a, *b)
	}
}
