// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/models"
)

// Refresher refetches the item list, bypassing any cache.
type Refresher interface {
	Refresh(ctx context.Context) ([]models.Item, error)
}

// RefreshNotifier is told about each refresh outcome.
type RefreshNotifier interface {
	BroadcastItemsRefreshed(items int, err error)
}

// RefreshServiceConfig holds the refresh schedule.
type RefreshServiceConfig struct {
	// Interval between refreshes. Required.
	Interval time.Duration

	// Timeout bounds one refresh. Default: half the interval.
	Timeout time.Duration

	// WarmOnStartup refreshes once before the first tick.
	WarmOnStartup bool
}

// RefreshService keeps the item cache warm.
type RefreshService struct {
	source   Refresher
	notifier RefreshNotifier
	config   RefreshServiceConfig
	logger   zerolog.Logger
}

// NewRefreshService creates the service. notifier may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(source Refresher, notifier RefreshNotifier, cfg RefreshServiceConfig, logger zerolog.Logger) *RefreshService {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval / 2
	}
	return &RefreshService{
		source:   source,
		notifier: notifier,
		config:   cfg,
		logger:   logger.With().Str("service", "refresh").Logger(),
	}
}

// Serve implements suture.Service. Refresh failures are logged and broadcast
// but never stop the loop.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Msg("item refresh service starting")

	if s.config.WarmOnStartup {
		s.refresh(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *RefreshService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	items, err := s.source.Refresh(refreshCtx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("scheduled item refresh failed")
	} else {
		s.logger.Debug().Int("items", len(items)).Dur("duration", time.Since(start)).Msg("item cache refreshed")
	}
	if s.notifier != nil {
		s.notifier.BroadcastItemsRefreshed(len(items), err)
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *RefreshService) String() string { return "item-refresh" }
