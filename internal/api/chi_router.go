// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/learnqueue/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses the default CORS and rate limits.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi returns the configured HTTP handler.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route(apiPrefix, func(r chi.Router) {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.PrometheusMetrics)

		r.With(router.chiMiddleware.RateLimitCustom(RateLimitHealth)).Get("/health", h.Health)
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitWebSocket)).Get("/ws", h.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(chimiddleware.Compress(5, "application/json"))

			r.Get("/items", h.Items)
			r.Get("/facets", h.Facets)
			r.Get("/analytics", h.Analytics)
			r.Get("/dashboard", h.Dashboard)
			r.Get("/filters/summary", h.FilterSummary)

			r.Get("/bookmarks", h.Bookmarks)
			r.Put("/bookmarks", h.SetBookmarks)
			r.Post("/bookmarks/{id}/toggle", h.ToggleBookmark)

			r.Route("/items/{id}", func(r chi.Router) {
				r.Post("/consumed", h.SetConsumed)
				r.Get("/note", h.Note)
				r.Put("/note", h.SaveNote)
				r.Delete("/note", h.DeleteNote)
			})

			r.Get("/recommendations", h.Recommendations)
			r.Get("/preferences", h.Preferences)
			r.Post("/preferences/recompute", h.RecomputePreferences)
			r.Get("/preferences/dark-mode", h.DarkMode)
			r.Put("/preferences/dark-mode", h.SetDarkMode)
			r.Get("/streak", h.Streak)

			r.Route("/views", func(r chi.Router) {
				r.Get("/", h.ListViews)
				r.Post("/", h.CreateView)
				r.Patch("/{id}", h.UpdateView)
				r.Delete("/{id}", h.DeleteView)
				r.Post("/{id}/apply", h.ApplyView)
			})

			// Standard base64 payloads may contain '/', so the payload is the whole tail.
			r.Get("/shared/*", h.Shared)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom(RateLimitExport))
			r.Get("/export", h.Export)
			r.Post("/export/share", h.Share)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
