// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// capture points the global logger at a buffer for the duration of a test.
// Tests using it mutate global state and must not run in parallel.
func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: level, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestInit_WritesServiceField(t *testing.T) {
	buf := capture(t, "debug")

	Info().Str("item_id", "abc").Msg("Item marked consumed")

	out := buf.String()
	for _, want := range []string{`"service":"learnqueue"`, `"item_id":"abc"`, `"message":"Item marked consumed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := capture(t, "warn")

	Info().Msg("hidden")
	Debug().Msg("hidden too")
	Warn().Msg("shown")
	Error().Msg("also shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("messages below warn leaked: %s", buf.String())
	}
	if strings.Count(buf.String(), "shown") != 2 {
		t.Errorf("expected warn and error lines: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
