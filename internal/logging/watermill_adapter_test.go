// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
)

func TestWatermillAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewWatermillAdapter(zerolog.New(&buf)).With(watermill.LogFields{"topic": "engagement"})

	adapter.Info("subscribed", watermill.LogFields{"consumers": 1})
	adapter.Error("publish failed", errors.New("closed"), nil)

	out := buf.String()
	if !strings.Contains(out, `"topic":"engagement"`) {
		t.Errorf("expected inherited field, got: %s", out)
	}
	if !strings.Contains(out, `"consumers":1`) {
		t.Errorf("expected call field, got: %s", out)
	}
	if !strings.Contains(out, `"error":"closed"`) {
		t.Errorf("expected error field, got: %s", out)
	}
}
