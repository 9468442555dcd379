// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package prefstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/metrics"
)

// Load decodes key into a T. When the key is absent, or its value is not valid
// JSON for T, def is returned with found=false. err is non-nil only when the
// backend itself failed.
func Load[T any](ctx context.Context, s Store, key string, def T) (v T, found bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, false, nil
	}
	if err != nil {
		return def, false, fmt.Errorf("load %s: %w", key, err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		metrics.StoreDecodeFallbacks.WithLabelValues(metricKey(key)).Inc()
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("key", key).
			Int("bytes", len(raw)).
			Msg("malformed persisted value, using default")
		return def, false, nil
	}
	return out, true, nil
}

// Save encodes v as JSON and overwrites key.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// metricKey collapses per-item note keys into one label value.
func metricKey(key string) string {
	if len(key) > len(NotePrefix) && key[:len(NotePrefix)] == NotePrefix {
		return NotePrefix + "*"
	}
	return key
}
