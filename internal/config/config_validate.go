// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateUpstream(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateStreak(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.PublicURL != "" {
		if err := checkURL("PUBLIC_URL", c.Server.PublicURL, httpSchemes); err != nil {
			return err
		}
	}
	return nil
}

// validateUpstream leaves credentials optional: a missing Notion key is
// reported per request as a fetch error rather than refusing to start.
func (c *Config) validateUpstream() error {
	u := c.Upstream
	switch u.Kind {
	case "notion", "json":
	default:
		return fmt.Errorf("UPSTREAM_KIND must be 'notion' or 'json', got %q", u.Kind)
	}
	if err := checkURL("UPSTREAM_URL", u.BaseURL, httpSchemes); err != nil {
		return err
	}
	if u.PageSize < 1 || u.PageSize > 100 {
		return fmt.Errorf("NOTION_PAGE_SIZE must be between 1 and 100, got %d", u.PageSize)
	}
	if u.MaxPages < 1 {
		return fmt.Errorf("NOTION_MAX_PAGES must be at least 1, got %d", u.MaxPages)
	}
	if u.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if u.RequestsPerSecond <= 0 {
		return fmt.Errorf("UPSTREAM_REQUESTS_PER_SECOND must be positive")
	}
	if u.CacheTTL < 0 || u.RefreshInterval < 0 {
		return fmt.Errorf("upstream cache_ttl and refresh_interval must not be negative")
	}
	return nil
}

func (c *Config) validateStore() error {
	switch c.Store.Backend {
	case "memory":
		return nil
	case "badger", "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("STORE_PATH is required for the %s backend", c.Store.Backend)
		}
		return nil
	default:
		return fmt.Errorf("STORE_BACKEND must be 'badger', 'sqlite' or 'memory', got %q", c.Store.Backend)
	}
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.PreferencePolicy != "once" && r.PreferencePolicy != "continuous" {
		return fmt.Errorf("RECOMMEND_PREFERENCE_POLICY must be 'once' or 'continuous', got %q", r.PreferencePolicy)
	}
	if r.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be at least 1, got %d", r.MaxResults)
	}
	if r.TrendingCap < 0 || r.PersonalizedCap < 0 || r.QuickWinCap < 0 || r.DeepDiveCap < 0 {
		return fmt.Errorf("recommendation pass caps must not be negative")
	}
	return nil
}

func (c *Config) validateStreak() error {
	s := c.Streak
	if s.WeeklyGoal < 1 {
		return fmt.Errorf("STREAK_WEEKLY_GOAL must be at least 1, got %d", s.WeeklyGoal)
	}
	if s.WeeklyWindow != "lifetime" && s.WeeklyWindow != "rolling" {
		return fmt.Errorf("STREAK_WEEKLY_WINDOW must be 'lifetime' or 'rolling', got %q", s.WeeklyWindow)
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("STREAK_TIMEZONE is invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) validateEvents() error {
	switch c.Events.Transport {
	case "memory":
	case "nats":
		if err := checkURL("NATS_URL", c.Events.NATSURL, natsSchemes); err != nil {
			return err
		}
		// JetStream stream names are derived from the topic.
		if strings.ContainsAny(c.Events.Topic, ".*> ") {
			return fmt.Errorf("EVENTS_TOPIC must not contain '.', '*', '>' or spaces with the nats transport, got %q", c.Events.Topic)
		}
	default:
		return fmt.Errorf("EVENTS_TRANSPORT must be 'memory' or 'nats', got %q", c.Events.Transport)
	}
	if strings.TrimSpace(c.Events.Topic) == "" {
		return fmt.Errorf("EVENTS_TOPIC must not be empty")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console', got %q", c.Logging.Format)
	}
}

// Location returns the configured streak timezone, falling back to time.Local.
func (s StreakConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
