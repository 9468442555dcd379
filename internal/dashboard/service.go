// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/events"
	"github.com/tomtom215/learnqueue/internal/metrics"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/prefstore"
	"github.com/tomtom215/learnqueue/internal/recommend"
	"github.com/tomtom215/learnqueue/internal/streak"
	"github.com/tomtom215/learnqueue/internal/upstream"
	"github.com/tomtom215/learnqueue/internal/views"
)

// Options wires a Service. Store, Source, Recommender and Tracker are required.
type Options struct {
	Store       prefstore.Store
	Source      upstream.Source
	Recommender *recommend.Engine
	Tracker     *streak.Tracker
	Views       *views.Manager

	// Publisher receives engagement events. Nil disables publishing.
	Publisher events.Publisher

	// WeeklyGoal seeds a fresh streak record. Zero means models.DefaultWeeklyGoal.
	WeeklyGoal int

	// Now overrides the clock for consumed timestamps.
	Now func() time.Time

	Logger zerolog.Logger
}

// Service is the single entry point for dashboard state.
type Service struct {
	store      prefstore.Store
	source     upstream.Source
	rec        *recommend.Engine
	tracker    *streak.Tracker
	views      *views.Manager
	publisher  events.Publisher
	weeklyGoal int
	now        func() time.Time
	logger     zerolog.Logger

	mu sync.Mutex
}

// New validates opts and returns a Service.
//
//nolint:gocritic // hugeParam: options are read once
func New(opts Options) (*Service, error) {
	switch {
	case opts.Store == nil:
		return nil, errors.New("dashboard: store is required")
	case opts.Source == nil:
		return nil, errors.New("dashboard: item source is required")
	case opts.Recommender == nil:
		return nil, errors.New("dashboard: recommender is required")
	case opts.Tracker == nil:
		return nil, errors.New("dashboard: streak tracker is required")
	}
	if opts.Views == nil {
		opts.Views = views.NewManager()
	}
	if opts.WeeklyGoal <= 0 {
		opts.WeeklyGoal = models.DefaultWeeklyGoal
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store:      opts.Store,
		source:     opts.Source,
		rec:        opts.Recommender,
		tracker:    opts.Tracker,
		views:      opts.Views,
		publisher:  opts.Publisher,
		weeklyGoal: opts.WeeklyGoal,
		now:        opts.Now,
		logger:     opts.Logger.With().Str("component", "dashboard").Logger(),
	}, nil
}

// engagement is the persisted engagement state loaded under the lock.
type engagement struct {
	bookmarks []string
	consumed  models.ConsumedLog
}

func (e *engagement) bookmarkSet() models.BookmarkSet {
	return models.NewBookmarkSet(e.bookmarks)
}

// fetch returns the raw item list. The error is always a *upstream.FetchError.
func (s *Service) fetch(ctx context.Context) ([]models.Item, error) {
	items, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, upstream.AsFetchError(s.source.Name(), err)
	}
	return items, nil
}

// overlay applies the consumed log, or returns nil when the fetch failed.
func overlay(log *models.ConsumedLog, items []models.Item, fetchErr error) []models.Item {
	if fetchErr != nil {
		return nil
	}
	return log.Overlay(items)
}

func (s *Service) loadEngagement(ctx context.Context) (engagement, error) {
	bookmarks, _, err := prefstore.Load(ctx, s.store, prefstore.KeyBookmarks, []string{})
	if err != nil {
		return engagement{}, err
	}
	consumed, _, err := prefstore.Load(ctx, s.store, prefstore.KeyConsumed, models.ConsumedLog{})
	if err != nil {
		return engagement{}, err
	}
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return engagement{bookmarks: bookmarks, consumed: consumed}, nil
}

func (s *Service) loadStreak(ctx context.Context) (models.StreakState, error) {
	def := models.DefaultStreakState()
	def.WeeklyGoal = s.weeklyGoal
	st, _, err := prefstore.Load(ctx, s.store, prefstore.KeyStreaks, def)
	if err != nil {
		return def, err
	}
	return streak.Normalize(st, s.weeklyGoal), nil
}

func (s *Service) loadViews(ctx context.Context) ([]models.SavedView, error) {
	list, _, err := prefstore.Load(ctx, s.store, prefstore.KeySavedViews, []models.SavedView{})
	if list == nil {
		list = []models.SavedView{}
	}
	return list, err
}

// saveStreak persists st and announces any newly unlocked achievements.
func (s *Service) saveStreak(ctx context.Context, res streak.Result) error {
	if err := prefstore.Save(ctx, s.store, prefstore.KeyStreaks, res.State); err != nil {
		return err
	}
	metrics.CurrentStreak.Set(float64(res.State.CurrentStreak))
	for _, a := range res.Unlocked {
		metrics.RecordAchievement(a.ID, string(a.Rarity))
		s.logger.Info().Str("achievement", a.ID).Str("rarity", string(a.Rarity)).Msg("achievement unlocked")
		s.publish(ctx, events.New(events.TypeAchievementUnlocked, "", map[string]any{
			"id":     a.ID,
			"title":  a.Title,
			"icon":   a.Icon,
			"rarity": string(a.Rarity),
		}))
	}
	return nil
}

// publish sends ev, logging rather than returning failures.
func (s *Service) publish(ctx context.Context, ev events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn().Err(err).Str("type", string(ev.Type)).Str("item_id", ev.ItemID).Msg("event publish failed")
	}
}

// userMessage returns the single user-visible message for a fetch failure.
func userMessage(err error) string {
	if fe := upstream.AsFetchError("", err); fe != nil {
		return fe.Message
	}
	return ""
}
