// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/learnqueue/internal/metrics"
	"github.com/tomtom215/learnqueue/internal/models"
)

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval resets failure counts while closed.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// ConsecutiveFailures opens the breaker.
	ConsecutiveFailures uint32
}

// DefaultBreakerConfig opens after 3 consecutive failures for 60s.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 3,
	}
}

// CircuitBreakerSource wraps a Source with circuit breaker protection and fetch
// metrics. Configuration errors and cancellations do not count as failures.
type CircuitBreakerSource struct {
	src    Source
	cb     *gobreaker.CircuitBreaker[[]models.Item]
	name   string
	logger zerolog.Logger
}

// NewCircuitBreakerSource wraps src.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCircuitBreakerSource(src Source, cfg BreakerConfig, logger zerolog.Logger) *CircuitBreakerSource {
	name := src.Name() + "-source"
	log := logger.With().Str("component", "upstream").Str("breaker", name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.Item](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
			if trip {
				log.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("opening circuit")
			}
			return trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var fe *FetchError
			return errors.As(err, &fe) && (fe.Kind == ErrKindConfig || fe.Kind == ErrKindCanceled)
		},
	})

	return &CircuitBreakerSource{src: src, cb: cb, name: name, logger: log}
}

// Name implements Source.
func (c *CircuitBreakerSource) Name() string { return c.src.Name() }

// State returns the breaker state name: closed, half-open or open.
func (c *CircuitBreakerSource) State() string { return c.cb.State().String() }

// Fetch implements Source.
func (c *CircuitBreakerSource) Fetch(ctx context.Context) ([]models.Item, error) {
	start := time.Now()
	items, err := c.cb.Execute(func() ([]models.Item, error) {
		return c.src.Fetch(ctx)
	})

	if err != nil {
		var fe *FetchError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			fe = &FetchError{
				Source:  c.src.Name(),
				Kind:    ErrKindCircuitOpen,
				Message: "Item source is temporarily unavailable",
				Cause:   ErrCircuitOpen,
			}
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
			fe = AsFetchError(c.src.Name(), err)
		}
		metrics.RecordUpstreamFetch(c.src.Name(), time.Since(start), 0, fe, fe.Kind)
		c.logger.Warn().Err(fe).Str("kind", fe.Kind).Msg("item fetch failed")
		return nil, fe
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	metrics.RecordUpstreamFetch(c.src.Name(), time.Since(start), len(items), nil, "")
	return items, nil
}
