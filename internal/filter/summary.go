// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package filter

import (
	"strings"

	"github.com/tomtom215/learnqueue/internal/models"
)

const summarySeparator = " • "

// Summary renders a one-line description of f, for example
// "Source: Paper • Tags: ai, ml... • Hide consumed • Sort: score".
func Summary(f models.FilterState) string {
	parts := make([]string, 0, 5)
	if f.SourceType != "" {
		parts = append(parts, "Source: "+f.SourceType)
	}
	if len(f.Tags) > 0 {
		shown := f.Tags
		suffix := ""
		if len(shown) > 2 {
			shown = shown[:2]
			suffix = "..."
		}
		parts = append(parts, "Tags: "+strings.Join(shown, ", ")+suffix)
	}
	if f.HideConsumed {
		parts = append(parts, "Hide consumed")
	}
	if f.ShowBookmarked {
		parts = append(parts, "Show bookmarked")
	}
	parts = append(parts, "Sort: "+string(f.SortBy))
	return strings.Join(parts, summarySeparator)
}

// HasActiveFilters reports whether f differs from the default filter state.
func HasActiveFilters(f models.FilterState) bool {
	return f.SourceType != "" ||
		len(f.Tags) > 0 ||
		f.HideConsumed ||
		f.ShowBookmarked ||
		f.SortBy != models.SortByScore
}
