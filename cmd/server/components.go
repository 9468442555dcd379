// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package main

import (
	"time"

	"github.com/tomtom215/learnqueue/internal/api"
	"github.com/tomtom215/learnqueue/internal/config"
	"github.com/tomtom215/learnqueue/internal/recommend"
	"github.com/tomtom215/learnqueue/internal/streak"
)

// buildEngineConfig overlays the configured tunables on the stock ranking
// constants. Confidences and learning thresholds are not configurable.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	r := cfg.Recommend

	rc.Learning.Policy = recommend.Policy(r.PreferencePolicy)
	if r.MaxResults > 0 {
		rc.MaxResults = r.MaxResults
	}
	rc.Trending.MinScore = r.TrendingMinScore
	rc.Trending.Cap = r.TrendingCap
	rc.Personalized.Cap = r.PersonalizedCap
	rc.QuickWins.MaxTime = r.QuickWinMaxTime
	rc.QuickWins.MinScore = r.QuickWinMinScore
	rc.QuickWins.Cap = r.QuickWinCap
	rc.DeepDive.MinTime = r.DeepDiveMinTime
	rc.DeepDive.Cap = r.DeepDiveCap
	return rc
}

func buildTrackerConfig(cfg *config.Config, now func() time.Time) streak.Config {
	return streak.Config{
		Location: cfg.Streak.Location(),
		Window:   streak.Window(cfg.Streak.WeeklyWindow),
		Now:      now,
	}
}

func buildMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	return api.ChiMiddlewareFromConfig(cfg.Security)
}
