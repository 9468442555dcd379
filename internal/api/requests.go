// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/learnqueue/internal/dashboard"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/validation"
)

// FilterQuery holds the filter query parameters shared by the item endpoints.
type FilterQuery struct {
	Search         string   `json:"q" validate:"max=200"`
	SourceType     string   `json:"sourceType" validate:"max=200"`
	Tags           []string `json:"tags" validate:"max=50,dive,max=200"`
	HideConsumed   bool     `json:"hideConsumed"`
	ShowBookmarked bool     `json:"showBookmarked"`
	SortBy         string   `json:"sortBy" validate:"omitempty,sortby"`
}

// BookmarksRequest replaces the bookmark set.
type BookmarksRequest struct {
	Bookmarks []string `json:"bookmarks" validate:"max=10000,dive,max=500"`
}

// ConsumedRequest sets an item's consumed flag.
type ConsumedRequest struct {
	Consumed *bool `json:"consumed" validate:"required"`
}

// NoteRequest saves a note. Blank text deletes it.
type NoteRequest struct {
	Note string `json:"note" validate:"max=20000"`
}

// DarkModeRequest sets the dark-mode flag.
type DarkModeRequest struct {
	DarkMode *bool `json:"darkMode" validate:"required"`
}

// CreateViewRequest saves a filter state. Missing filters save the defaults.
type CreateViewRequest struct {
	Name        string              `json:"name" validate:"notblank,max=100"`
	Description string              `json:"description" validate:"max=500"`
	Filters     *models.FilterState `json:"filters"`
}

// UpdateViewRequest renames a view.
type UpdateViewRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// ExportQuery selects the export scope and format.
type ExportQuery struct {
	Scope  string `json:"scope" validate:"omitempty,oneof=all bookmarked consumed"`
	Format string `json:"format" validate:"omitempty,oneof=csv html"`
}

// parseFilterQuery reads the filter parameters. Absent parameters take the
// default filter state.
func parseFilterQuery(r *http.Request) (dashboard.Query, *validation.RequestValidationError) {
	q := r.URL.Query()
	fq := FilterQuery{
		Search:         q.Get("q"),
		SourceType:     q.Get("sourceType"),
		Tags:           parseCommaSeparated(q.Get("tags")),
		HideConsumed:   parseBool(q.Get("hideConsumed")),
		ShowBookmarked: parseBool(q.Get("showBookmarked")),
		SortBy:         q.Get("sortBy"),
	}
	if verr := validation.ValidateStruct(&fq); verr != nil {
		return dashboard.Query{}, verr
	}

	filters := models.FilterState{
		SourceType:     fq.SourceType,
		Tags:           fq.Tags,
		HideConsumed:   fq.HideConsumed,
		ShowBookmarked: fq.ShowBookmarked,
		SortBy:         models.SortBy(fq.SortBy),
	}
	return dashboard.Query{Filters: filters.Normalize(), Search: fq.Search}, nil
}

// parseCommaSeparated splits a list parameter, dropping empty entries.
func parseCommaSeparated(value string) []string {
	result := []string{}
	if value == "" {
		return result
	}
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseBool treats anything strconv cannot parse as false.
func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
