// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package logging provides the zerolog-based structured logger shared by every
// learnqueue component.
//
// # Overview
//
// A single global zerolog.Logger is configured once at startup and accessed
// through package-level helpers. Components that keep their own logger take a
// copy from Logger and add a component field.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("server listening")
//
// # Request Scope
//
// The API middleware stores a request ID in the request context. Ctx returns a
// logger carrying it (plus a correlation ID when present):
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("upstream fetch failed")
//
// # Adapters
//
// Two adapters route third-party logging into zerolog:
//   - NewSlogLogger feeds log/slog, used by the suture supervisor event hook.
//   - NewWatermillAdapter implements watermill.LoggerAdapter for the event bus.
//
// # Configuration
//
// Level, format and caller reporting come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
package logging
