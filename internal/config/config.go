// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Streak    StreakConfig    `koanf:"streak"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// PublicURL is the externally visible base URL used when building share links.
	// Empty means links are returned relative ("/api/v1/shared/<payload>").
	PublicURL string `koanf:"public_url"`
}

// UpstreamConfig describes the read-only item source.
type UpstreamConfig struct {
	// Kind selects the source implementation: "notion" or "json".
	Kind string `koanf:"kind"`

	// BaseURL is the Notion API root for kind=notion, or the full feed URL for kind=json.
	BaseURL string `koanf:"base_url"`

	APIKey        string `koanf:"api_key"`
	DatabaseID    string `koanf:"database_id"`
	NotionVersion string `koanf:"notion_version"`

	// PageSize is the Notion query page size. Default: 10
	PageSize int `koanf:"page_size"`

	// MaxPages bounds cursor pagination. Default: 1 (a single page, like the
	// browser dashboard always did).
	MaxPages int `koanf:"max_pages"`

	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond paces outgoing requests. Notion allows roughly 3.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// CacheTTL is how long a fetched item list is served before refetching.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// RefreshInterval re-warms the cache in the background. Zero disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// StoreConfig selects the preference store backend.
type StoreConfig struct {
	// Backend is "badger" (default), "sqlite" or "memory".
	Backend string `koanf:"backend"`

	// Path is the badger directory or the sqlite database file.
	Path string `koanf:"path"`
}

// RecommendConfig holds recommendation scorer tunables.
type RecommendConfig struct {
	// PreferencePolicy is "once" (learn only when nothing is saved) or
	// "continuous" (relearn after every engagement change).
	PreferencePolicy string `koanf:"preference_policy"`

	// MaxResults truncates the merged recommendation list. Default: 8
	MaxResults int `koanf:"max_results"`

	TrendingMinScore float64 `koanf:"trending_min_score"`
	TrendingCap      int     `koanf:"trending_cap"`
	PersonalizedCap  int     `koanf:"personalized_cap"`
	QuickWinMaxTime  float64 `koanf:"quick_win_max_time"`
	QuickWinMinScore float64 `koanf:"quick_win_min_score"`
	QuickWinCap      int     `koanf:"quick_win_cap"`
	DeepDiveMinTime  float64 `koanf:"deep_dive_min_time"`
	DeepDiveCap      int     `koanf:"deep_dive_cap"`
}

// StreakConfig holds streak tracker settings.
type StreakConfig struct {
	// WeeklyGoal is the default goal for a fresh streak record. Default: 7
	WeeklyGoal int `koanf:"weekly_goal"`

	// WeeklyWindow is "lifetime" (progress = total consumed) or "rolling"
	// (progress = consumed in the trailing 7 days).
	WeeklyWindow string `koanf:"weekly_window"`

	// Timezone is an IANA zone name defining calendar days. Empty means local.
	Timezone string `koanf:"timezone"`
}

// EventsConfig configures the engagement event bus.
type EventsConfig struct {
	// Transport is "memory" (default) or "nats" (requires the nats build tag).
	Transport string `koanf:"transport"`

	Topic   string `koanf:"topic"`
	NATSURL string `koanf:"nats_url"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
