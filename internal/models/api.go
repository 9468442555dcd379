// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

import "time"

// APIResponse is the envelope for every JSON API response.
//
//	{"status":"success","data":{...},"metadata":{"timestamp":"...","request_id":"..."}}
//	{"status":"error","data":null,"metadata":{...},"error":{"code":"NOT_FOUND","message":"..."}}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	// Count is the number of elements in Data when it is a list.
	Count int `json:"count,omitempty"`
	// RequestID echoes the X-Request-ID response header.
	RequestID string `json:"request_id,omitempty"`
}

// APIError is the structured error body.
//
// Codes: VALIDATION_ERROR, NOT_FOUND, UPSTREAM_FETCH_ERROR, INTERNAL_ERROR,
// RATE_LIMIT_EXCEEDED.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status       string     `json:"status"`
	Version      string     `json:"version"`
	Store        string     `json:"store"`
	Source       string     `json:"source"`
	LastFetch    *time.Time `json:"last_fetch,omitempty"`
	LastFetchErr string     `json:"last_fetch_error,omitempty"`
	WSClients    int        `json:"ws_clients"`
	Uptime       float64    `json:"uptime_seconds"`
}
