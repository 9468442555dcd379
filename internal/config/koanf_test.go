// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdirTemp moves into an empty directory so no stray config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Upstream.NotionVersion != "2022-06-28" {
		t.Errorf("Upstream.NotionVersion = %q", cfg.Upstream.NotionVersion)
	}
	if cfg.Upstream.PageSize != 10 {
		t.Errorf("Upstream.PageSize = %d, want 10", cfg.Upstream.PageSize)
	}
	if cfg.Upstream.CacheTTL != 5*time.Minute {
		t.Errorf("Upstream.CacheTTL = %v, want 5m", cfg.Upstream.CacheTTL)
	}
	if cfg.Recommend.MaxResults != 8 {
		t.Errorf("Recommend.MaxResults = %d, want 8", cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.PreferencePolicy != "once" {
		t.Errorf("Recommend.PreferencePolicy = %q, want once", cfg.Recommend.PreferencePolicy)
	}
	if cfg.Streak.WeeklyGoal != 7 {
		t.Errorf("Streak.WeeklyGoal = %d, want 7", cfg.Streak.WeeklyGoal)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Store.Backend != "badger" {
		t.Errorf("Store.Backend = %q, want badger", cfg.Store.Backend)
	}
	if cfg.Events.Topic != "learnqueue-engagement" {
		t.Errorf("Events.Topic = %q", cfg.Events.Topic)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	yamlContent := `
server:
  port: 8080
upstream:
  database_id: from-file
  cache_ttl: 1m
streak:
  weekly_goal: 5
  weekly_window: rolling
security:
  cors_origins:
    - https://a.example
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("NOTION_DATABASE_ID", "from-env")
	t.Setenv("NOTION_API_KEY", "secret")
	t.Setenv("UPSTREAM_REFRESH_INTERVAL", "10m")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 from file", cfg.Server.Port)
	}
	if cfg.Upstream.DatabaseID != "from-env" {
		t.Errorf("Upstream.DatabaseID = %q, env should win over file", cfg.Upstream.DatabaseID)
	}
	if cfg.Upstream.APIKey != "secret" {
		t.Errorf("Upstream.APIKey = %q", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.CacheTTL != time.Minute {
		t.Errorf("Upstream.CacheTTL = %v, want 1m", cfg.Upstream.CacheTTL)
	}
	if cfg.Upstream.RefreshInterval != 10*time.Minute {
		t.Errorf("Upstream.RefreshInterval = %v, want 10m", cfg.Upstream.RefreshInterval)
	}
	if cfg.Streak.WeeklyGoal != 5 || cfg.Streak.WeeklyWindow != "rolling" {
		t.Errorf("Streak = %+v", cfg.Streak)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://a.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_CommaSeparatedSlice(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("STORE_BACKEND", "postgres")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for unknown store backend")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"NOTION_API_KEY":     "upstream.api_key",
		"notion_database_id": "upstream.database_id",
		"HTTP_PORT":          "server.port",
		"LOG_LEVEL":          "logging.level",
		"PATH":               "",
		"HOME":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
