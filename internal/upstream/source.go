// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/learnqueue/internal/config"
	"github.com/tomtom215/learnqueue/internal/models"
)

// Source kinds accepted by New.
const (
	KindNotion = "notion"
	KindJSON   = "json"
)

// Source returns the current item list.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string

	// Fetch returns every item. Failures are *FetchError.
	Fetch(ctx context.Context) ([]models.Item, error)
}

// New builds the configured source behind a circuit breaker.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg config.UpstreamConfig, logger zerolog.Logger) (Source, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	limiter := newLimiter(cfg.RequestsPerSecond)

	var src Source
	switch cfg.Kind {
	case KindNotion:
		src = NewNotionSource(NotionOptions{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			DatabaseID: cfg.DatabaseID,
			Version:    cfg.NotionVersion,
			PageSize:   cfg.PageSize,
			MaxPages:   cfg.MaxPages,
		}, client, limiter, logger)
	case KindJSON:
		src = NewJSONSource(cfg.BaseURL, cfg.APIKey, client, limiter, logger)
	default:
		return nil, fmt.Errorf("unknown upstream kind %q", cfg.Kind)
	}
	return NewCircuitBreakerSource(src, DefaultBreakerConfig(), logger), nil
}

// newLimiter paces requests at rps with a burst of one. Non-positive rps
// disables pacing.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// ErrCircuitOpen is the cause of a FetchError raised while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Error kinds, used as the error_type metric label.
const (
	ErrKindConfig      = "config"
	ErrKindTransport   = "transport"
	ErrKindStatus      = "http_status"
	ErrKindDecode      = "decode"
	ErrKindCircuitOpen = "circuit_open"
	ErrKindCanceled    = "canceled"
)

// FetchError reports a failed fetch with a single user-visible message.
type FetchError struct {
	Source  string
	Kind    string
	Message string
	// StatusCode is set for ErrKindStatus.
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// AsFetchError normalizes err to a *FetchError, wrapping foreign errors as
// transport failures of source.
func AsFetchError(source string, err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Source: source, Kind: ErrKindCanceled, Message: "Item fetch was canceled", Cause: err}
	}
	return &FetchError{Source: source, Kind: ErrKindTransport, Message: "Failed to fetch items", Cause: err}
}
