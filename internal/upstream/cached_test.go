// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/models"
)

func TestCachedSource_ServesFromCache(t *testing.T) {
	t.Parallel()

	stub := &stubSource{items: []models.Item{{ID: "a"}}}
	cs := NewCachedSource(stub, time.Minute, zerolog.Nop())

	for i := 0; i < 3; i++ {
		items, err := cs.Fetch(context.Background())
		if err != nil || len(items) != 1 {
			t.Fatalf("Fetch = %v, %v", items, err)
		}
	}
	if stub.calls.Load() != 1 {
		t.Errorf("source calls = %d, want 1", stub.calls.Load())
	}

	if _, err := cs.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if stub.calls.Load() != 2 {
		t.Errorf("Refresh should bypass the cache, calls = %d", stub.calls.Load())
	}

	cs.Invalidate()
	_, _ = cs.Fetch(context.Background())
	if stub.calls.Load() != 3 {
		t.Errorf("Fetch after Invalidate should refetch, calls = %d", stub.calls.Load())
	}
}

func TestCachedSource_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	stub := &stubSource{err: &FetchError{Kind: ErrKindStatus, Message: "down"}}
	cs := NewCachedSource(stub, time.Minute, zerolog.Nop())

	if _, err := cs.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if _, lastErr := cs.LastFetch(); lastErr == nil {
		t.Error("LastFetch should report the failure")
	}

	stub.err = nil
	stub.items = nil
	items, err := cs.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch after recovery: %v", err)
	}
	if items == nil {
		t.Error("nil item list should be normalized to empty")
	}
	at, lastErr := cs.LastFetch()
	if lastErr != nil || at.IsZero() {
		t.Errorf("LastFetch = %v, %v", at, lastErr)
	}
}

type slowSource struct {
	stubSource
	release chan struct{}
}

func (s *slowSource) Fetch(ctx context.Context) ([]models.Item, error) {
	<-s.release
	return s.stubSource.Fetch(ctx)
}

func TestCachedSource_ConcurrentMissesShareFetch(t *testing.T) {
	t.Parallel()

	slow := &slowSource{stubSource: stubSource{items: []models.Item{{ID: "a"}}}, release: make(chan struct{})}
	cs := NewCachedSource(slow, time.Minute, zerolog.Nop())

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cs.Fetch(context.Background())
			errs <- err
		}()
	}
	close(slow.release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Fetch: %v", err)
		}
	}
	if slow.calls.Load() != 1 {
		t.Errorf("source calls = %d, want 1", slow.calls.Load())
	}
}
