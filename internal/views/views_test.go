// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package views

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/learnqueue/internal/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newTestManager() *Manager {
	c := &fakeClock{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	n := 0
	return NewManager(WithClock(c.now), WithIDGenerator(func() (string, error) {
		n++
		return fmt.Sprintf("view-%d", n), nil
	}))
}

func TestCreate_SnapshotsByValue(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	live := models.DefaultFilterState()
	live.Tags = []string{"ai"}

	list, view, err := m.Create(nil, "  AI only ", " mine ", live)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	live.Tags[0] = "changed"
	live.Tags = append(live.Tags, "more")
	live.HideConsumed = true

	if got := list[0].Filters.Tags; len(got) != 1 || got[0] != "ai" {
		t.Errorf("stored tags = %v, want [ai]", got)
	}
	if list[0].Filters.HideConsumed {
		t.Error("stored filters followed live state")
	}
	if view.Name != "AI only" || view.Description != "mine" {
		t.Errorf("view = %+v", view)
	}
	if !view.CreatedAt.Equal(view.LastUsed) {
		t.Errorf("createdAt %v != lastUsed %v", view.CreatedAt, view.LastUsed)
	}
}

func TestCreate_RejectsBlankName(t *testing.T) {
	t.Parallel()

	list, _, err := newTestManager().Create(nil, "   ", "", models.DefaultFilterState())
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if len(list) != 0 {
		t.Errorf("list = %+v", list)
	}
}

func TestCreate_DefaultIDsAreUUIDv7(t *testing.T) {
	t.Parallel()

	_, view, err := NewManager().Create(nil, "x", "", models.DefaultFilterState())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, err := uuid.Parse(view.ID)
	if err != nil {
		t.Fatalf("id %q: %v", view.ID, err)
	}
	if id.Version() != 7 {
		t.Errorf("version = %d, want 7", id.Version())
	}
}

func TestApply_BumpsLastUsed(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	f := models.DefaultFilterState()
	f.SortBy = models.SortByDateAdded
	list, v1, _ := m.Create(nil, "first", "", f)
	list, _, _ = m.Create(list, "second", "", models.DefaultFilterState())

	updated, got, err := m.Apply(list, v1.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.SortBy != models.SortByDateAdded {
		t.Errorf("filters = %+v", got)
	}
	if !updated[0].LastUsed.After(list[0].LastUsed) {
		t.Error("lastUsed not bumped")
	}
	if list[0].LastUsed != v1.LastUsed {
		t.Error("input slice mutated")
	}
	if sorted := Sorted(updated); sorted[0].ID != v1.ID {
		t.Errorf("Sorted()[0] = %s, want %s", sorted[0].ID, v1.ID)
	}

	if _, _, err := m.Apply(list, "missing"); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("err = %v, want ErrViewNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	f := models.DefaultFilterState()
	f.Tags = []string{"go"}
	list, v, _ := m.Create(nil, "old", "desc", f)

	out, found, err := m.Update(list, v.ID, " new ", "")
	if err != nil || !found {
		t.Fatalf("Update: found=%v err=%v", found, err)
	}
	if out[0].Name != "new" || out[0].Description != "" {
		t.Errorf("view = %+v", out[0])
	}
	if out[0].Filters.Tags[0] != "go" {
		t.Error("filters changed by rename")
	}

	same, found, err := m.Update(list, "nope", "x", "")
	if err != nil || found || len(same) != 1 || same[0].Name != "old" {
		t.Errorf("unknown id: found=%v err=%v list=%+v", found, err, same)
	}

	if _, _, err := m.Update(list, v.ID, "", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	list, a, _ := m.Create(nil, "a", "", models.DefaultFilterState())
	list, b, _ := m.Create(list, "b", "", models.DefaultFilterState())

	out, found := m.Delete(list, a.ID)
	if !found || len(out) != 1 || out[0].ID != b.ID {
		t.Errorf("Delete = %+v, %v", out, found)
	}
	if len(list) != 2 {
		t.Error("input slice mutated")
	}
	if out, found := m.Delete(out, "nope"); found || len(out) != 1 {
		t.Errorf("unknown id: %+v, %v", out, found)
	}
}

func TestSorted_StableOnEqualTimes(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	list := []models.SavedView{
		{ID: "a", LastUsed: ts},
		{ID: "b", LastUsed: ts.Add(time.Hour)},
		{ID: "c", LastUsed: ts},
	}
	got := Sorted(list)
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Sorted[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}
