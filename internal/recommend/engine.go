// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package recommend

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/models"
)

// Engine merges the category passes into one ranked list.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	passes []Pass

	requestCount atomic.Int64
	emitted      atomic.Int64
	byCategory   map[models.Category]int64
	metricsMu    sync.Mutex
}

// NewEngine creates an engine with the four stock passes in priority order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		passes: []Pass{
			trendingPass{cfg.Trending},
			personalizedPass{cfg.Personalized},
			quickWinsPass{cfg.QuickWins},
			deepDivePass{cfg.DeepDive},
		},
		byCategory: make(map[models.Category]int64),
	}, nil
}

// Recommend returns at most MaxResults suggestions, highest confidence first.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(req Request) []models.Recommendation {
	e.requestCount.Add(1)

	candidates := e.candidates(req)
	if len(candidates) == 0 {
		e.logger.Debug().Int("items", len(req.Items)).Msg("no recommendation candidates")
		return []models.Recommendation{}
	}

	var merged []models.Recommendation
	for _, p := range e.passes {
		merged = append(merged, p.Select(candidates, req.Preferences)...)
	}

	result := dedupe(merged)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})
	if len(result) > e.config.MaxResults {
		result = result[:e.config.MaxResults]
	}

	e.record(result)
	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("merged", len(merged)).
		Int("returned", len(result)).
		Msg("recommendations ranked")
	return result
}

// candidates returns items neither consumed nor bookmarked, in input order.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) candidates(req Request) []models.Item {
	consumed := make(map[string]struct{}, len(req.Consumed))
	for _, id := range req.Consumed {
		consumed[id] = struct{}{}
	}

	out := make([]models.Item, 0, len(req.Items))
	for i := range req.Items {
		it := &req.Items[i]
		if _, ok := consumed[it.ID]; ok || it.Consumed {
			continue
		}
		if req.Bookmarks.Has(it.ID) {
			continue
		}
		out = append(out, *it)
	}
	return out
}

// dedupe keeps the first recommendation seen for each item id.
func dedupe(recs []models.Recommendation) []models.Recommendation {
	seen := make(map[string]struct{}, len(recs))
	out := make([]models.Recommendation, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r.Item.ID]; ok {
			continue
		}
		seen[r.Item.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}

func (e *Engine) record(recs []models.Recommendation) {
	e.emitted.Add(int64(len(recs)))
	e.metricsMu.Lock()
	defer e.metricsMu.Unlock()
	for _, r := range recs {
		e.byCategory[r.Category]++
	}
}

// GetMetrics returns a snapshot of engine counters.
func (e *Engine) GetMetrics() Metrics {
	e.metricsMu.Lock()
	defer e.metricsMu.Unlock()

	byCat := make(map[models.Category]int64, len(e.byCategory))
	for k, v := range e.byCategory {
		byCat[k] = v
	}
	return Metrics{
		Requests:        e.requestCount.Load(),
		Recommendations: e.emitted.Load(),
		ByCategory:      byCat,
	}
}
