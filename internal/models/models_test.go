// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestItem_JSONNullsForAbsentFields(t *testing.T) {
	t.Parallel()

	item := Item{ID: "a", Title: "T", SourceType: "Article", Tags: []string{}}
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"a","title":"T","sourceType":"Article","summary":"","whyItMatters":"","tags":[],"score":null,"estimatedTime":null,"consumed":false,"dateAdded":null,"publicationDate":null,"link":null}`
	if string(data) != want {
		t.Errorf("marshal =\n%s\nwant\n%s", data, want)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     *string
		wantOK bool
		want   time.Time
	}{
		{"nil", nil, false, time.Time{}},
		{"empty", String(""), false, time.Time{}},
		{"plain date", String("2024-03-05"), true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", String("2024-03-05T10:30:00.000Z"), true, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)},
		{"garbage", String("next tuesday"), false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDate(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterState_CloneIsDeep(t *testing.T) {
	t.Parallel()

	f := FilterState{Tags: []string{"ai"}, SortBy: SortByScore}
	c := f.Clone()
	f.Tags[0] = "changed"
	if c.Tags[0] != "ai" {
		t.Errorf("clone shares tag storage: %v", c.Tags)
	}
}

func TestFilterState_Normalize(t *testing.T) {
	t.Parallel()

	f := FilterState{SortBy: "bogus"}.Normalize()
	if f.SortBy != SortByScore {
		t.Errorf("SortBy = %q, want score", f.SortBy)
	}
	if f.Tags == nil {
		t.Error("Tags should be a non-nil empty slice")
	}
}

func TestConsumedLog_MarkAndOverlay(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	var log ConsumedLog
	log.Mark("a", true, t0)
	log.Mark("b", true, t0.Add(time.Hour))
	log.Mark("a", true, t0.Add(2*time.Hour))

	if got := log.IDs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("IDs = %v, want [a b]", got)
	}
	if !log.Entries[0].ConsumedAt.Equal(t0) {
		t.Errorf("re-marking should keep original timestamp")
	}

	// upstream says c is consumed; un-marking it locally must win
	log.Mark("c", false, t0)
	items := []Item{{ID: "a"}, {ID: "b"}, {ID: "c", Consumed: true}, {ID: "d"}}
	out := log.Overlay(items)

	want := []bool{true, true, false, false}
	for i, w := range want {
		if out[i].Consumed != w {
			t.Errorf("item %s consumed = %v, want %v", out[i].ID, out[i].Consumed, w)
		}
	}
	if !items[2].Consumed || items[0].Consumed {
		t.Error("Overlay must not mutate the source slice")
	}

	log.Mark("c", true, t0)
	if log.IsCleared("c") {
		t.Error("marking consumed should drop the cleared flag")
	}
}

func TestConsumedLog_CountSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	log := ConsumedLog{Entries: []ConsumedEntry{
		{ItemID: "old", ConsumedAt: now.AddDate(0, 0, -8)},
		{ItemID: "edge", ConsumedAt: now.AddDate(0, 0, -7)},
		{ItemID: "new", ConsumedAt: now},
	}}
	if got := log.CountSince(now.AddDate(0, 0, -7)); got != 2 {
		t.Errorf("CountSince = %d, want 2", got)
	}
}

func TestStreakState_CloneAndHasAchievement(t *testing.T) {
	t.Parallel()

	s := DefaultStreakState()
	if s.WeeklyGoal != 7 {
		t.Errorf("WeeklyGoal = %d, want 7", s.WeeklyGoal)
	}
	s.Achievements = append(s.Achievements, Achievement{ID: "first_read"})
	c := s.Clone()
	c.Achievements[0].ID = "changed"
	if !s.HasAchievement("first_read") {
		t.Error("clone should not share achievements")
	}
}
