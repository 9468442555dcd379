// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package models defines the data contracts shared by the learnqueue engines,
// the preference store and the HTTP API.
//
// JSON field names are camelCase so that persisted values stay compatible
// with the browser dashboard's localStorage format and the frontend can consume
// API payloads unchanged.
//
// Optional item fields are pointers: nil marshals to null and means "absent"
// (an unrated item, an unknown reading time, an undated item). Absence is a
// normal state and every engine defines deterministic behavior for it.
package models
