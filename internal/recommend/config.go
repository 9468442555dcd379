// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package recommend

import (
	"fmt"
)

// Config contains all tunables for the recommendation engine.
type Config struct {
	// MaxResults truncates the merged list.
	MaxResults int `json:"max_results"`

	Trending     TrendingConfig     `json:"trending"`
	Personalized PersonalizedConfig `json:"personalized"`
	QuickWins    QuickWinsConfig    `json:"quick_wins"`
	DeepDive     DeepDiveConfig     `json:"deep_dive"`

	// Learning controls preference derivation.
	Learning LearningConfig `json:"learning"`
}

// TrendingConfig selects items at or above MinScore.
type TrendingConfig struct {
	MinScore   float64 `json:"min_score"`
	Cap        int     `json:"cap"`
	Confidence float64 `json:"confidence"`
}

// PersonalizedConfig selects items matching learned preferences.
type PersonalizedConfig struct {
	Cap        int     `json:"cap"`
	Confidence float64 `json:"confidence"`
}

// QuickWinsConfig selects short items with a good score.
type QuickWinsConfig struct {
	// MaxTime is inclusive, in minutes.
	MaxTime    float64 `json:"max_time"`
	MinScore   float64 `json:"min_score"`
	Cap        int     `json:"cap"`
	Confidence float64 `json:"confidence"`
}

// DeepDiveConfig selects long items.
type DeepDiveConfig struct {
	// MinTime is inclusive, in minutes.
	MinTime    float64 `json:"min_time"`
	Cap        int     `json:"cap"`
	Confidence float64 `json:"confidence"`
}

// LearningConfig controls preference learning.
type LearningConfig struct {
	Policy         Policy  `json:"policy"`
	TopTags        int     `json:"top_tags"`
	TopSourceTypes int     `json:"top_source_types"`
	ShortBelow     float64 `json:"short_below"`
	LongAbove      float64 `json:"long_above"`
	// MissingTime is substituted for items without an estimated time.
	MissingTime float64 `json:"missing_time"`
}

// DefaultConfig returns the stock ranking constants.
func DefaultConfig() *Config {
	return &Config{
		MaxResults: 8,
		Trending: TrendingConfig{
			MinScore:   8,
			Cap:        3,
			Confidence: 0.9,
		},
		Personalized: PersonalizedConfig{
			Cap:        4,
			Confidence: 0.8,
		},
		QuickWins: QuickWinsConfig{
			MaxTime:    10,
			MinScore:   7,
			Cap:        3,
			Confidence: 0.7,
		},
		DeepDive: DeepDiveConfig{
			MinTime:    20,
			Cap:        2,
			Confidence: 0.6,
		},
		Learning: LearningConfig{
			Policy:         PolicyOnce,
			TopTags:        5,
			TopSourceTypes: 3,
			ShortBelow:     10,
			LongAbove:      30,
			MissingTime:    10,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}

	caps := map[string]int{
		"trending.cap":     c.Trending.Cap,
		"personalized.cap": c.Personalized.Cap,
		"quick_wins.cap":   c.QuickWins.Cap,
		"deep_dive.cap":    c.DeepDive.Cap,
	}
	for name, v := range caps {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", name, v)
		}
	}

	confidences := map[string]float64{
		"trending.confidence":     c.Trending.Confidence,
		"personalized.confidence": c.Personalized.Confidence,
		"quick_wins.confidence":   c.QuickWins.Confidence,
		"deep_dive.confidence":    c.DeepDive.Confidence,
	}
	for name, v := range confidences {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %f", name, v)
		}
	}

	if !c.Learning.Policy.Valid() {
		return fmt.Errorf("learning.policy must be %q or %q, got %q", PolicyOnce, PolicyContinuous, c.Learning.Policy)
	}
	if c.Learning.TopTags < 1 || c.Learning.TopSourceTypes < 1 {
		return fmt.Errorf("learning top-N values must be positive")
	}
	if c.Learning.ShortBelow > c.Learning.LongAbove {
		return fmt.Errorf("learning.short_below (%f) exceeds learning.long_above (%f)",
			c.Learning.ShortBelow, c.Learning.LongAbove)
	}
	return nil
}

// Clone returns a copy of the configuration. All fields are values.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
