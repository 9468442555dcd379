// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package prefstore

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/learnqueue/internal/metrics"
)

// instrumented records operation latency and failures for a Store.
type instrumented struct {
	Store
}

// Instrument wraps s with Prometheus instrumentation.
func Instrument(s Store) Store {
	if _, ok := s.(*instrumented); ok {
		return s
	}
	return &instrumented{Store: s}
}

func (i *instrumented) record(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(i.Store.Backend(), op, time.Since(start), err)
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	v, err := i.Store.Get(ctx, key)
	i.record("get", start, err)
	return v, err
}

func (i *instrumented) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := i.Store.Set(ctx, key, value)
	i.record("set", start, err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := i.Store.Delete(ctx, key)
	i.record("delete", start, err)
	return err
}

func (i *instrumented) Keys(ctx context.Context, prefix string) ([]string, error) {
	start := time.Now()
	keys, err := i.Store.Keys(ctx, prefix)
	i.record("keys", start, err)
	return keys, err
}
