// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package filter

import (
	"sort"

	"github.com/tomtom215/learnqueue/internal/models"
)

// AvailableTags returns every distinct tag across items, sorted.
func AvailableTags(items []models.Item) []string {
	seen := make(map[string]struct{})
	for i := range items {
		for _, tag := range items[i].Tags {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// AvailableSourceTypes returns every distinct non-empty source type, sorted.
func AvailableSourceTypes(items []models.Item) []string {
	seen := make(map[string]struct{})
	for i := range items {
		if st := items[i].SourceType; st != "" {
			seen[st] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
