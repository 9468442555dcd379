// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/learnqueue/internal/dashboard"
	ws "github.com/tomtom215/learnqueue/internal/websocket"
)

// FetchStatus reports the item source's most recent fetch.
type FetchStatus interface {
	LastFetch() (time.Time, error)
}

// HandlerOptions wires a Handler. Service is required.
type HandlerOptions struct {
	Service *dashboard.Service
	Hub     *ws.Hub

	// Upgrader defaults to one accepting any origin.
	Upgrader *websocket.Upgrader

	// Status feeds the health endpoint. Nil omits fetch status.
	Status FetchStatus

	StoreBackend string
	SourceName   string

	// PublicURL prefixes share links. Empty yields relative links.
	PublicURL string

	Version string
	Now     func() time.Time
}

// Handler serves the dashboard API.
//
// Handler methods are split across files:
//   - handlers_items.go: items, facets, analytics, dashboard, filter summary
//   - handlers_engagement.go: bookmarks, consumed, notes, dark mode
//   - handlers_recommend.go: recommendations, preferences, streak
//   - handlers_views.go: saved views
//   - handlers_export.go: export and share links
//   - handlers_health.go: health and websocket
type Handler struct {
	svc       *dashboard.Service
	hub       *ws.Hub
	upgrader  *websocket.Upgrader
	status    FetchStatus
	store     string
	source    string
	publicURL string
	version   string
	now       func() time.Time
	startTime time.Time
}

// NewHandler builds a Handler.
//
//nolint:gocritic // hugeParam: options are read once
func NewHandler(opts HandlerOptions) (*Handler, error) {
	if opts.Service == nil {
		return nil, errors.New("api: dashboard service is required")
	}
	if opts.Upgrader == nil {
		opts.Upgrader = ws.Upgrader(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		svc:       opts.Service,
		hub:       opts.Hub,
		upgrader:  opts.Upgrader,
		status:    opts.Status,
		store:     opts.StoreBackend,
		source:    opts.SourceName,
		publicURL: opts.PublicURL,
		version:   opts.Version,
		now:       opts.Now,
		startTime: opts.Now(),
	}, nil
}
