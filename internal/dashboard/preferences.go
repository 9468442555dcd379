// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"

	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/prefstore"
	"github.com/tomtom215/learnqueue/internal/recommend"
)

// learnMode says why preferences are being resolved.
type learnMode int

const (
	learnOnRead learnMode = iota
	learnOnEngagement
	learnForced
)

// resolvePreferences returns the saved preferences, relearning and persisting
// them first when the policy asks for it. items may be nil when the fetch
// failed; learning is then skipped so an outage cannot freeze empty
// preferences. Caller holds s.mu.
func (s *Service) resolvePreferences(ctx context.Context, items []models.Item, eng *engagement, mode learnMode) (models.UserPreferences, error) {
	saved, found, err := prefstore.Load(ctx, s.store, prefstore.KeyPreferences, models.DefaultUserPreferences())
	if err != nil {
		return saved, err
	}

	learn := false
	switch mode {
	case learnOnRead:
		learn = !found
	case learnOnEngagement:
		learn = s.rec.Policy().ShouldLearn(found)
	case learnForced:
		learn = true
	}
	if !learn || items == nil {
		return saved, nil
	}

	prefs := s.rec.Learn(items, eng.bookmarkSet(), eng.consumed.IDs())
	if err := prefstore.Save(ctx, s.store, prefstore.KeyPreferences, prefs); err != nil {
		return saved, err
	}
	s.logger.Debug().
		Strs("tags", prefs.PreferredTags).
		Strs("source_types", prefs.PreferredSourceTypes).
		Str("time_range", string(prefs.PreferredTimeRange)).
		Msg("preferences learned")
	return prefs, nil
}

// Preferences returns the learned preferences, learning them if none are saved.
func (s *Service) Preferences(ctx context.Context) (models.UserPreferences, error) {
	items, fetchErr := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return models.UserPreferences{}, err
	}
	return s.resolvePreferences(ctx, overlay(&eng.consumed, items, fetchErr), &eng, learnOnRead)
}

// RecomputePreferences relearns and saves preferences regardless of policy.
// It fails with the fetch error when the item list is unavailable.
func (s *Service) RecomputePreferences(ctx context.Context) (models.UserPreferences, error) {
	items, err := s.fetch(ctx)
	if err != nil {
		return models.UserPreferences{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return models.UserPreferences{}, err
	}
	return s.resolvePreferences(ctx, eng.consumed.Overlay(items), &eng, learnForced)
}

// Policy reports the active preference refresh policy.
func (s *Service) Policy() recommend.Policy {
	return s.rec.Policy()
}
