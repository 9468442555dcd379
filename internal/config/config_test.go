// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad public url", func(c *Config) { c.Server.PublicURL = "ftp://x" }, "PUBLIC_URL"},
		{"unknown upstream kind", func(c *Config) { c.Upstream.Kind = "rss" }, "UPSTREAM_KIND"},
		{"json kind needs url", func(c *Config) { c.Upstream.Kind = "json"; c.Upstream.BaseURL = "" }, "UPSTREAM_URL"},
		{"page size too large", func(c *Config) { c.Upstream.PageSize = 101 }, "NOTION_PAGE_SIZE"},
		{"zero rps", func(c *Config) { c.Upstream.RequestsPerSecond = 0 }, "REQUESTS_PER_SECOND"},
		{"memory store needs no path", func(c *Config) { c.Store.Backend = "memory"; c.Store.Path = "" }, ""},
		{"sqlite store needs path", func(c *Config) { c.Store.Backend = "sqlite"; c.Store.Path = "" }, "STORE_PATH"},
		{"bad policy", func(c *Config) { c.Recommend.PreferencePolicy = "always" }, "PREFERENCE_POLICY"},
		{"negative cap", func(c *Config) { c.Recommend.DeepDiveCap = -1 }, "caps"},
		{"zero weekly goal", func(c *Config) { c.Streak.WeeklyGoal = 0 }, "WEEKLY_GOAL"},
		{"bad window", func(c *Config) { c.Streak.WeeklyWindow = "monthly" }, "WEEKLY_WINDOW"},
		{"bad timezone", func(c *Config) { c.Streak.Timezone = "Mars/Olympus" }, "STREAK_TIMEZONE"},
		{"nats needs valid url", func(c *Config) { c.Events.Transport = "nats"; c.Events.NATSURL = "http://x" }, "NATS_URL"},
		{"dotted topic with nats", func(c *Config) { c.Events.Transport = "nats"; c.Events.Topic = "a.b" }, "EVENTS_TOPIC"},
		{"empty topic", func(c *Config) { c.Events.Topic = " " }, "EVENTS_TOPIC"},
		{"rate limit disabled skips checks", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestStreakLocation(t *testing.T) {
	t.Parallel()

	if loc := (StreakConfig{}).Location(); loc != time.Local {
		t.Errorf("empty timezone should map to time.Local, got %v", loc)
	}
	if loc := (StreakConfig{Timezone: "UTC"}).Location(); loc.String() != "UTC" {
		t.Errorf("Location() = %v, want UTC", loc)
	}
}
