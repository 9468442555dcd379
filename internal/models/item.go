// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

import (
	"strings"
	"time"
)

// Item is a curated content entry from the item source.
type Item struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	SourceType      string   `json:"sourceType"`
	Summary         string   `json:"summary"`
	WhyItMatters    string   `json:"whyItMatters"`
	Tags            []string `json:"tags"`
	Score           *float64 `json:"score"`
	EstimatedTime   *float64 `json:"estimatedTime"`
	Consumed        bool     `json:"consumed"`
	DateAdded       *string  `json:"dateAdded"`
	PublicationDate *string  `json:"publicationDate"`
	Link            *string  `json:"link"`
}

// HasTag reports whether tag is one of the item's tags.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScoreOr returns the score, or def when the item is unrated.
func (i *Item) ScoreOr(def float64) float64 {
	if i.Score == nil {
		return def
	}
	return *i.Score
}

// EstimatedTimeOr returns the estimated time in minutes, or def when unknown.
func (i *Item) EstimatedTimeOr(def float64) float64 {
	if i.EstimatedTime == nil {
		return def
	}
	return *i.EstimatedTime
}

// dateLayouts covers Notion date.start values, which are plain dates or
// RFC3339 timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// AddedAt parses DateAdded. ok is false when the date is absent or unparseable.
func (i *Item) AddedAt() (t time.Time, ok bool) {
	return ParseDate(i.DateAdded)
}

// ParseDate parses an optional date string in any supported layout.
func ParseDate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
