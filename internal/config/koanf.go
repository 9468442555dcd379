// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/learnqueue/config.yaml",
	"/etc/learnqueue/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Upstream: UpstreamConfig{
			Kind:              "notion",
			BaseURL:           "https://api.notion.com",
			NotionVersion:     "2022-06-28",
			PageSize:          10,
			MaxPages:          1,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 3,
			CacheTTL:          5 * time.Minute,
			RefreshInterval:   0,
		},
		Store: StoreConfig{
			Backend: "badger",
			Path:    "/data/learnqueue",
		},
		Recommend: RecommendConfig{
			PreferencePolicy: "once",
			MaxResults:       8,
			TrendingMinScore: 8,
			TrendingCap:      3,
			PersonalizedCap:  4,
			QuickWinMaxTime:  10,
			QuickWinMinScore: 7,
			QuickWinCap:      3,
			DeepDiveMinTime:  20,
			DeepDiveCap:      2,
		},
		Streak: StreakConfig{
			WeeklyGoal:   7,
			WeeklyWindow: "lifetime",
		},
		Events: EventsConfig{
			Transport: "memory",
			Topic:     "learnqueue-engagement",
			NATSURL:   "nats://127.0.0.1:4222",
		},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// sliceConfigPaths are keys whose environment values arrive comma-separated.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// LoadWithKoanf loads configuration using koanf's layered providers.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// NOTION_API_KEY -> upstream.api_key, HTTP_PORT -> server.port, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// processSliceFields splits comma-separated string values into slices.
// Values that are already slices (from YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"shutdown_timeout": "server.shutdown_timeout",
	"public_url":       "server.public_url",

	// Item source; the NOTION_* names match the original dashboard deployment.
	"upstream_kind":                "upstream.kind",
	"upstream_url":                 "upstream.base_url",
	"notion_api_key":               "upstream.api_key",
	"notion_database_id":           "upstream.database_id",
	"notion_version":               "upstream.notion_version",
	"notion_page_size":             "upstream.page_size",
	"notion_max_pages":             "upstream.max_pages",
	"upstream_timeout":             "upstream.timeout",
	"upstream_requests_per_second": "upstream.requests_per_second",
	"upstream_cache_ttl":           "upstream.cache_ttl",
	"upstream_refresh_interval":    "upstream.refresh_interval",

	// Store
	"store_backend": "store.backend",
	"store_path":    "store.path",

	// Recommendations
	"recommend_preference_policy": "recommend.preference_policy",
	"recommend_max_results":       "recommend.max_results",

	// Streaks
	"streak_weekly_goal":   "streak.weekly_goal",
	"streak_weekly_window": "streak.weekly_window",
	"streak_timezone":      "streak.timezone",

	// Events
	"events_transport": "events.transport",
	"events_topic":     "events.topic",
	"nats_url":         "events.nats_url",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
