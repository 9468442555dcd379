// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package filter

import (
	"reflect"
	"testing"

	"github.com/tomtom215/learnqueue/internal/models"
)

func scored(id string, score *float64) models.Item {
	return models.Item{ID: id, Title: id, SourceType: "Article", Tags: []string{}, Score: score}
}

func timed(id string, minutes *float64) models.Item {
	return models.Item{ID: id, Title: id, SourceType: "Article", Tags: []string{}, EstimatedTime: minutes}
}

func ids(items []models.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func fixture() []models.Item {
	return []models.Item{
		{ID: "1", Title: "Transformers explained", SourceType: "Paper", Summary: "Attention layers", Tags: []string{"ai", "nlp"}, Score: models.Float(9), EstimatedTime: models.Float(25), DateAdded: models.String("2024-03-01")},
		{ID: "2", Title: "Go generics", SourceType: "Article", Summary: "Type params", WhyItMatters: "Cleaner APIs", Tags: []string{"go"}, Score: models.Float(6), EstimatedTime: models.Float(8), Consumed: true, DateAdded: models.String("2024-03-05")},
		{ID: "3", Title: "Diffusion talk", SourceType: "Video", Tags: []string{"ai", "vision"}, DateAdded: nil},
		{ID: "4", Title: "RAG patterns", SourceType: "Article", Summary: "retrieval AUGMENTED generation", Tags: []string{"ai"}, Score: models.Float(7), DateAdded: models.String("not a date")},
	}
}

func TestApply_SortByScoreNullsLast(t *testing.T) {
	t.Parallel()

	items := []models.Item{
		scored("a", models.Float(3)),
		scored("n1", nil),
		scored("b", models.Float(9)),
		scored("n2", nil),
		scored("c", models.Float(5)),
	}
	got := Apply(items, models.DefaultFilterState(), nil, "")
	want := []string{"b", "c", "a", "n1", "n2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestApply_SortByEstimatedTimeNullsLast(t *testing.T) {
	t.Parallel()

	items := []models.Item{
		timed("n1", nil),
		timed("a", models.Float(5)),
		timed("b", models.Float(2)),
		timed("n2", nil),
		timed("c", models.Float(8)),
	}
	f := models.DefaultFilterState()
	f.SortBy = models.SortByEstimatedTime
	got := Apply(items, f, nil, "")
	want := []string{"b", "a", "c", "n1", "n2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestApply_SortByDateAddedNewestFirst(t *testing.T) {
	t.Parallel()

	f := models.DefaultFilterState()
	f.SortBy = models.SortByDateAdded
	got := Apply(fixture(), f, nil, "")
	// 3 has no date and 4 has an unparseable one; both trail in input order.
	want := []string{"2", "1", "3", "4"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestApply_Predicates(t *testing.T) {
	t.Parallel()

	bookmarks := models.NewBookmarkSet([]string{"3", "4"})

	tests := []struct {
		name   string
		mutate func(*models.FilterState)
		query  string
		want   []string
	}{
		{"default", func(*models.FilterState) {}, "", []string{"1", "4", "2", "3"}},
		{"search title", func(*models.FilterState) {}, "GENERICS", []string{"2"}},
		{"search summary", func(*models.FilterState) {}, "augmented", []string{"4"}},
		{"search why it matters", func(*models.FilterState) {}, "cleaner", []string{"2"}},
		{"source type exact", func(f *models.FilterState) { f.SourceType = "Article" }, "", []string{"4", "2"}},
		{"source type no partial match", func(f *models.FilterState) { f.SourceType = "Art" }, "", []string{}},
		{"tags or", func(f *models.FilterState) { f.Tags = []string{"go", "vision"} }, "", []string{"2", "3"}},
		{"hide consumed", func(f *models.FilterState) { f.HideConsumed = true }, "", []string{"1", "4", "3"}},
		{"show bookmarked", func(f *models.FilterState) { f.ShowBookmarked = true }, "", []string{"4", "3"}},
		{"combined", func(f *models.FilterState) { f.Tags = []string{"ai"}; f.ShowBookmarked = true }, "diffusion", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := models.DefaultFilterState()
			tt.mutate(&f)
			got := ids(Apply(fixture(), f, bookmarks, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_HideConsumedNeverReturnsConsumed(t *testing.T) {
	t.Parallel()

	f := models.DefaultFilterState()
	f.HideConsumed = true
	for _, item := range Apply(fixture(), f, nil, "") {
		if item.Consumed {
			t.Errorf("item %s is consumed", item.ID)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	bookmarks := models.NewBookmarkSet([]string{"1", "3"})
	filters := []models.FilterState{
		models.DefaultFilterState(),
		{Tags: []string{"ai"}, SortBy: models.SortByEstimatedTime},
		{SourceType: "Article", HideConsumed: true, SortBy: models.SortByDateAdded},
		{ShowBookmarked: true, SortBy: models.SortByScore},
	}
	for _, f := range filters {
		once := Apply(fixture(), f, bookmarks, "a")
		twice := Apply(once, f, bookmarks, "a")
		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Errorf("filters %+v: once %v, twice %v", f, ids(once), ids(twice))
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := fixture()
	before := ids(items)
	f := models.DefaultFilterState()
	f.SortBy = models.SortByEstimatedTime
	_ = Apply(items, f, nil, "")
	if !reflect.DeepEqual(ids(items), before) {
		t.Errorf("input reordered: %v", ids(items))
	}
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	t.Parallel()

	items := fixture()
	Sort(items, models.SortBy("popularity"))
	if got := ids(items); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("order = %v", got)
	}
}

func TestFacets(t *testing.T) {
	t.Parallel()

	items := append(fixture(), models.Item{ID: "5", Tags: []string{"go"}})
	if got, want := AvailableTags(items), []string{"ai", "go", "nlp", "vision"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableTags = %v, want %v", got, want)
	}
	if got, want := AvailableSourceTypes(items), []string{"Article", "Paper", "Video"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSourceTypes = %v, want %v", got, want)
	}
	if got := AvailableTags(nil); len(got) != 0 {
		t.Errorf("AvailableTags(nil) = %v", got)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    models.FilterState
		want string
	}{
		{"default", models.DefaultFilterState(), "Sort: score"},
		{
			"everything",
			models.FilterState{SourceType: "Paper", Tags: []string{"ai", "ml", "nlp"}, HideConsumed: true, ShowBookmarked: true, SortBy: models.SortByDateAdded},
			"Source: Paper • Tags: ai, ml... • Hide consumed • Show bookmarked • Sort: dateAdded",
		},
		{"two tags", models.FilterState{Tags: []string{"ai", "ml"}, SortBy: models.SortByScore}, "Tags: ai, ml • Sort: score"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Summary(tt.f); got != tt.want {
				t.Errorf("Summary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasActiveFilters(t *testing.T) {
	t.Parallel()

	if HasActiveFilters(models.DefaultFilterState()) {
		t.Error("default filters reported active")
	}
	f := models.DefaultFilterState()
	f.SortBy = models.SortByEstimatedTime
	if !HasActiveFilters(f) {
		t.Error("non-default sort not reported active")
	}
	f = models.DefaultFilterState()
	f.Tags = []string{"ai"}
	if !HasActiveFilters(f) {
		t.Error("tag filter not reported active")
	}
}
