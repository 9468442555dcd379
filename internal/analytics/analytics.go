// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package analytics computes the headline metrics shown above the item list.
//
// Summarize is a pure fold over whatever item slice it receives. The dashboard
// passes the filtered set, so the cards reflect the current view.
package analytics

import (
	"sort"

	"github.com/tomtom215/learnqueue/internal/models"
)

// TopTagLimit bounds Metrics.TopTags.
const TopTagLimit = 5

// Count is one row of a frequency table.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Metrics summarizes an item list.
type Metrics struct {
	TotalItems int `json:"totalItems"`
	// TotalTime is the sum of estimated minutes; absent times count as zero.
	TotalTime float64 `json:"totalTime"`
	// AverageScore is averaged over scored items only, zero when none are scored.
	AverageScore float64 `json:"averageScore"`
	ScoredItems  int     `json:"scoredItems"`
	TopTags      []Count `json:"topTags"`
	SourceTypes  []Count `json:"sourceTypes"`
	Consumed     int     `json:"consumed"`
	// CompletionRate is a percentage in [0, 100].
	CompletionRate float64 `json:"completionRate"`
}

// Summarize aggregates items.
func Summarize(items []models.Item) Metrics {
	m := Metrics{TotalItems: len(items)}

	tags := newCounter()
	sources := newCounter()
	var scoreSum float64

	for i := range items {
		item := &items[i]
		m.TotalTime += item.EstimatedTimeOr(0)
		if item.Score != nil {
			scoreSum += *item.Score
			m.ScoredItems++
		}
		if item.Consumed {
			m.Consumed++
		}
		for _, tag := range item.Tags {
			tags.add(tag)
		}
		sources.add(item.SourceType)
	}

	if m.ScoredItems > 0 {
		m.AverageScore = scoreSum / float64(m.ScoredItems)
	}
	if m.TotalItems > 0 {
		m.CompletionRate = float64(m.Consumed) / float64(m.TotalItems) * 100
	}

	m.TopTags = tags.ranked(TopTagLimit)
	m.SourceTypes = sources.ranked(0)
	return m
}

// TopN ranks keys by descending frequency, ties broken by first appearance,
// and keeps at most n entries (all when n <= 0).
func TopN(keys []string, n int) []string {
	c := newCounter()
	for _, k := range keys {
		c.add(k)
	}
	ranked := c.ranked(n)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Key
	}
	return out
}

// counter tracks first-seen order alongside counts.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) ranked(limit int) []Count {
	out := make([]Count, len(c.order))
	for i, k := range c.order {
		out[i] = Count{Key: k, Count: c.counts[k]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
