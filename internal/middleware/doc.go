// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package middleware provides the HTTP middleware shared by every API route.

  - RequestID: X-Request-ID propagation into chi and the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by route pattern
  - SecurityHeaders: nosniff, frame denial, referrer policy and HSTS over TLS

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.PrometheusMetrics)

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are
configured in the api package.
*/
package middleware
