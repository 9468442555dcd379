// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package prefstore

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/models"
)

// openBackends returns one fresh store per backend, closed on cleanup.
func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	out := map[string]Store{}
	for _, backend := range []string{BackendMemory, BackendBadger, BackendSQLite} {
		path := filepath.Join(t.TempDir(), backend)
		if backend == BackendSQLite {
			path += ".db"
		}
		s, err := Open(backend, path, zerolog.Nop())
		if err != nil {
			t.Fatalf("Open(%s): %v", backend, err)
		}
		t.Cleanup(func() { _ = s.Close() })
		out[backend] = s
	}
	return out
}

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
			}

			if err := s.Set(ctx, KeyDarkMode, []byte("true")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, KeyDarkMode, []byte("false")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := s.Get(ctx, KeyDarkMode)
			if err != nil || string(got) != "false" {
				t.Fatalf("Get = %q, %v; want false", got, err)
			}

			for _, id := range []string{"b", "a", "c"} {
				if err := s.Set(ctx, NoteKey(id), []byte(`"note"`)); err != nil {
					t.Fatalf("Set note: %v", err)
				}
			}
			keys, err := s.Keys(ctx, NotePrefix)
			if err != nil {
				t.Fatalf("Keys: %v", err)
			}
			if want := []string{"notes-a", "notes-b", "notes-c"}; !reflect.DeepEqual(keys, want) {
				t.Errorf("Keys = %v, want %v", keys, want)
			}

			if err := s.Delete(ctx, NoteKey("b")); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := s.Delete(ctx, NoteKey("never")); err != nil {
				t.Errorf("Delete(absent) = %v", err)
			}
			if _, err := s.Get(ctx, NoteKey("b")); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after delete err = %v", err)
			}

			all, err := s.Keys(ctx, "")
			if err != nil {
				t.Fatalf("Keys(all): %v", err)
			}
			if len(all) != 3 {
				t.Errorf("Keys(all) = %v, want 3 keys", all)
			}
		})
	}
}

func TestLoad_FallsBackOnMalformed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemory()
	if err := s.Set(ctx, KeyStreaks, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	def := models.DefaultStreakState()
	got, found, err := Load(ctx, s, KeyStreaks, def)
	if err != nil {
		t.Fatalf("Load err = %v", err)
	}
	if found {
		t.Error("malformed value reported as found")
	}
	if got.WeeklyGoal != def.WeeklyGoal {
		t.Errorf("got %+v, want default", got)
	}
}

func TestLoad_Absent(t *testing.T) {
	t.Parallel()

	got, found, err := Load(context.Background(), NewMemory(), KeyBookmarks, []string{})
	if err != nil || found || got == nil || len(got) != 0 {
		t.Errorf("Load = %v, %v, %v", got, found, err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemory()
	prefs := models.UserPreferences{
		PreferredTags:        []string{"ai"},
		PreferredSourceTypes: []string{"Paper"},
		PreferredTimeRange:   models.TimeRangeLong,
		LearningGoals:        []string{"x"},
	}
	if err := Save(ctx, s, KeyPreferences, prefs); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, _ := s.Get(ctx, KeyPreferences)
	want := `{"preferredTags":["ai"],"preferredSourceTypes":["Paper"],"preferredTimeRange":"long","learningGoals":["x"]}`
	if string(raw) != want {
		t.Errorf("stored %s, want %s", raw, want)
	}

	got, found, err := Load(ctx, s, KeyPreferences, models.DefaultUserPreferences())
	if err != nil || !found || !reflect.DeepEqual(got, prefs) {
		t.Errorf("Load = %+v, %v, %v", got, found, err)
	}
}

func TestLoad_BackendFailure(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	_ = s.Close()
	got, _, err := Load(context.Background(), s, KeyDarkMode, true)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	if !got {
		t.Error("default not returned on failure")
	}
}

func TestIsKnownKey(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		KeyBookmarks:   true,
		KeySavedViews:  true,
		KeyDarkMode:    true,
		"notes-abc":    true,
		"notes-":       false,
		"theme":        false,
		"ai-dashboard": false,
	}
	for key, want := range tests {
		if got := IsKnownKey(key); got != want {
			t.Errorf("IsKnownKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	if _, err := Open("etcd", "", zerolog.Nop()); err == nil {
		t.Error("expected error")
	}
}

func TestSQLite_InMemory(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, err := s.Get(ctx, "k"); err != nil || string(v) != "v" {
		t.Errorf("Get = %q, %v", v, err)
	}
}
