// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/learnqueue/internal/models"
)

func TestLearn_NoEngagement(t *testing.T) {
	t.Parallel()

	prefs := Learn(DefaultConfig().Learning, []models.Item{item("a", "Paper", nil, nil, "ai")}, nil, nil)
	if prefs.PreferredTimeRange != models.TimeRangeMedium {
		t.Errorf("time range = %s, want medium", prefs.PreferredTimeRange)
	}
	if len(prefs.PreferredTags) != 0 || len(prefs.PreferredSourceTypes) != 0 {
		t.Errorf("prefs = %+v", prefs)
	}
	if !reflect.DeepEqual(prefs.LearningGoals, LearningGoals) {
		t.Errorf("goals = %v", prefs.LearningGoals)
	}
}

func TestLearn_TopTagsAndSources(t *testing.T) {
	t.Parallel()

	items := []models.Item{
		item("a", "Paper", nil, models.Float(5), "ml", "ai"),
		item("b", "Video", nil, models.Float(5), "ai"),
		item("c", "Paper", nil, models.Float(5), "go"),
		item("d", "Blog", nil, models.Float(5), "rust"),
	}
	// a is both bookmarked and consumed, so its tags count twice.
	prefs := Learn(DefaultConfig().Learning, items, models.NewBookmarkSet([]string{"a", "c"}), []string{"a", "b"})

	if want := []string{"ai", "ml", "go"}; !reflect.DeepEqual(prefs.PreferredTags, want) {
		t.Errorf("tags = %v, want %v", prefs.PreferredTags, want)
	}
	if want := []string{"Paper", "Video"}; !reflect.DeepEqual(prefs.PreferredSourceTypes, want) {
		t.Errorf("sources = %v, want %v", prefs.PreferredSourceTypes, want)
	}
	if prefs.PreferredTimeRange != models.TimeRangeShort {
		t.Errorf("time range = %s, want short", prefs.PreferredTimeRange)
	}
}

func TestLearn_TimeBuckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minutes []*float64
		want    models.TimeRange
	}{
		{"missing counts as ten", []*float64{nil, nil}, models.TimeRangeMedium},
		{"short", []*float64{models.Float(2), models.Float(9)}, models.TimeRangeShort},
		{"long", []*float64{models.Float(45), models.Float(60)}, models.TimeRangeLong},
		{"boundary thirty", []*float64{models.Float(30)}, models.TimeRangeMedium},
		{"mixed with missing", []*float64{models.Float(5), nil}, models.TimeRangeShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var items []models.Item
			var consumed []string
			for i, m := range tt.minutes {
				id := string(rune('a' + i))
				items = append(items, item(id, "Paper", nil, m))
				consumed = append(consumed, id)
			}
			if got := Learn(DefaultConfig().Learning, items, nil, consumed).PreferredTimeRange; got != tt.want {
				t.Errorf("time range = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPolicy_ShouldLearn(t *testing.T) {
	t.Parallel()

	if !PolicyOnce.ShouldLearn(false) || PolicyOnce.ShouldLearn(true) {
		t.Error("once policy should learn only when nothing is saved")
	}
	if !PolicyContinuous.ShouldLearn(true) || !PolicyContinuous.ShouldLearn(false) {
		t.Error("continuous policy should always learn")
	}
}
