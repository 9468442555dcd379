// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/learnqueue/internal/models"
)

var errInvalidJSON = errors.New("invalid JSON")

// JSONSource reads items from a URL serving JSON.
type JSONSource struct {
	url     string
	token   string
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewJSONSource creates a source for url. A non-empty token is sent as a
// bearer credential.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewJSONSource(url, token string, client *http.Client, limiter *rate.Limiter, logger zerolog.Logger) *JSONSource {
	if limiter == nil {
		limiter = newLimiter(0)
	}
	return &JSONSource{
		url:     url,
		token:   token,
		client:  client,
		limiter: limiter,
		logger:  logger.With().Str("component", "upstream").Str("source", KindJSON).Logger(),
	}
}

// Name implements Source.
func (s *JSONSource) Name() string { return KindJSON }

// Fetch implements Source. Payloads that are neither an array nor an object
// with an items array yield zero items and a warning.
func (s *JSONSource) Fetch(ctx context.Context) ([]models.Item, error) {
	if s.url == "" {
		return nil, &FetchError{Source: KindJSON, Kind: ErrKindConfig, Message: "Item feed URL is not configured"}
	}

	headers := map[string]string{"Accept": "application/json"}
	if s.token != "" {
		headers["Authorization"] = "Bearer " + s.token
	}
	body, _, err := execute(ctx, s.client, s.limiter, KindJSON, apiRequest{
		method:  http.MethodGet,
		url:     s.url,
		headers: headers,
	})
	if err != nil {
		return nil, err
	}

	items, ok, err := decodeFeed(body)
	if err != nil {
		return nil, &FetchError{Source: KindJSON, Kind: ErrKindDecode, Message: "Malformed item feed", Cause: err}
	}
	if !ok {
		s.logger.Warn().Int("bytes", len(body)).Msg("item feed has an unrecognized shape, treating as empty")
		return []models.Item{}, nil
	}
	return normalize(items), nil
}

// decodeFeed accepts [...] or {"items": [...]}. ok is false for any other
// well-formed JSON.
func decodeFeed(body []byte) (items []models.Item, ok bool, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, nil
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, false, err
		}
		return items, true, nil
	case '{':
		var wrapped struct {
			Items *[]models.Item `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, false, err
		}
		if wrapped.Items == nil {
			return nil, false, nil
		}
		return *wrapped.Items, true, nil
	default:
		if !json.Valid(trimmed) {
			return nil, false, errInvalidJSON
		}
		return nil, false, nil
	}
}

// normalize replaces nil tag slices so responses always carry [].
func normalize(items []models.Item) []models.Item {
	if items == nil {
		return []models.Item{}
	}
	for i := range items {
		if items[i].Tags == nil {
			items[i].Tags = []string{}
		}
	}
	return items
}
