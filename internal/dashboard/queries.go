// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"

	"github.com/tomtom215/learnqueue/internal/analytics"
	"github.com/tomtom215/learnqueue/internal/filter"
	"github.com/tomtom215/learnqueue/internal/metrics"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/recommend"
	"github.com/tomtom215/learnqueue/internal/streak"
	"github.com/tomtom215/learnqueue/internal/views"
)

// Query selects and orders items.
type Query struct {
	Filters models.FilterState
	Search  string
}

// Facets lists the filter choices present in the item list.
type Facets struct {
	Tags        []string `json:"tags"`
	SourceTypes []string `json:"sourceTypes"`
}

// FilterSummary describes a filter state for display.
type FilterSummary struct {
	Summary string `json:"summary"`
	Active  bool   `json:"active"`
}

// StreakView is the streak record plus its badge.
type StreakView struct {
	models.StreakState
	Badge string `json:"badge"`
}

// Snapshot is everything the dashboard page renders, in one call.
type Snapshot struct {
	Items           []models.Item           `json:"items"`
	TotalItems      int                     `json:"totalItems"`
	Metrics         analytics.Metrics       `json:"metrics"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Preferences     models.UserPreferences  `json:"preferences"`
	Streak          StreakView              `json:"streak"`
	SavedViews      []models.SavedView      `json:"savedViews"`
	Bookmarks       []string                `json:"bookmarks"`
	DarkMode        bool                    `json:"darkMode"`
	Facets          Facets                  `json:"facets"`
	Filters         FilterSummary           `json:"filters"`
	// FetchError is the user-visible item source failure, if any.
	FetchError string `json:"fetchError,omitempty"`
}

// Summarize describes f.
func Summarize(f models.FilterState) FilterSummary {
	return FilterSummary{Summary: filter.Summary(f), Active: filter.HasActiveFilters(f)}
}

func newStreakView(st models.StreakState) StreakView {
	return StreakView{StreakState: st, Badge: streak.Badge(st.CurrentStreak)}
}

// overlaid fetches items and applies the consumed log. The returned error is
// the fetch failure.
func (s *Service) overlaid(ctx context.Context) ([]models.Item, engagement, error) {
	items, err := s.fetch(ctx)
	if err != nil {
		return nil, engagement{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return nil, engagement{}, err
	}
	return eng.consumed.Overlay(items), eng, nil
}

// Items returns the filtered and sorted item list.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (s *Service) Items(ctx context.Context, q Query) ([]models.Item, error) {
	items, eng, err := s.overlaid(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, q.Filters, eng.bookmarkSet(), q.Search), nil
}

// Facets returns the tags and source types present in the item list.
func (s *Service) Facets(ctx context.Context) (Facets, error) {
	items, err := s.fetch(ctx)
	if err != nil {
		return Facets{}, err
	}
	return Facets{Tags: filter.AvailableTags(items), SourceTypes: filter.AvailableSourceTypes(items)}, nil
}

// Analytics summarizes the filtered item list.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (s *Service) Analytics(ctx context.Context, q Query) (analytics.Metrics, error) {
	items, err := s.Items(ctx, q)
	if err != nil {
		return analytics.Metrics{}, err
	}
	return analytics.Summarize(items), nil
}

// Recommendations ranks unengaged items using the learned preferences.
func (s *Service) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	raw, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return nil, err
	}
	items := eng.consumed.Overlay(raw)
	prefs, err := s.resolvePreferences(ctx, items, &eng, learnOnRead)
	if err != nil {
		return nil, err
	}
	return s.recommend(items, &eng, prefs), nil
}

func (s *Service) recommend(items []models.Item, eng *engagement, prefs models.UserPreferences) []models.Recommendation {
	recs := s.rec.Recommend(recommend.Request{
		Items:       items,
		Bookmarks:   eng.bookmarkSet(),
		Consumed:    eng.consumed.IDs(),
		Preferences: prefs,
	})
	for _, r := range recs {
		metrics.RecommendationsServed.WithLabelValues(string(r.Category)).Inc()
	}
	return recs
}

// Streak returns the stored streak record with its badge.
func (s *Service) Streak(ctx context.Context) (StreakView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadStreak(ctx)
	if err != nil {
		return StreakView{}, err
	}
	return newStreakView(st), nil
}

// Snapshot assembles the whole dashboard. An item fetch failure yields zero
// items and a FetchError message rather than an error.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (s *Service) Snapshot(ctx context.Context, q Query) (Snapshot, error) {
	raw, fetchErr := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	st, err := s.loadStreak(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	list, err := s.loadViews(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	dark, err := s.darkMode(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	items := overlay(&eng.consumed, raw, fetchErr)
	prefs, err := s.resolvePreferences(ctx, items, &eng, learnOnRead)
	if err != nil {
		return Snapshot{}, err
	}
	if items == nil {
		items = []models.Item{}
	}

	filtered := filter.Apply(items, q.Filters, eng.bookmarkSet(), q.Search)
	snap := Snapshot{
		Items:           filtered,
		TotalItems:      len(items),
		Metrics:         analytics.Summarize(filtered),
		Recommendations: s.recommend(items, &eng, prefs),
		Preferences:     prefs,
		Streak:          newStreakView(st),
		SavedViews:      views.Sorted(list),
		Bookmarks:       eng.bookmarks,
		DarkMode:        dark,
		Facets:          Facets{Tags: filter.AvailableTags(items), SourceTypes: filter.AvailableSourceTypes(items)},
		Filters:         Summarize(q.Filters),
	}
	if fetchErr != nil {
		snap.FetchError = userMessage(fetchErr)
	}
	return snap, nil
}
