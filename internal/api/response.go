// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/learnqueue/internal/dashboard"
	"github.com/tomtom215/learnqueue/internal/export"
	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/upstream"
	"github.com/tomtom215/learnqueue/internal/validation"
	"github.com/tomtom215/learnqueue/internal/views"
)

// Error codes.
const (
	CodeValidation    = validation.CodeValidation
	CodeNotFound      = "NOT_FOUND"
	CodeUpstreamFetch = "UPSTREAM_FETCH_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
	CodeRateLimited   = "RATE_LIMIT_EXCEEDED"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue escapes control characters so client input cannot forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// responseMeta stamps the envelope with the time and the request id set by the
// request ID middleware, so a body can be matched to its X-Request-ID header.
func responseMeta(r *http.Request) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
}

// respondSuccess wraps data in the success envelope. Slices also report a count.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time) {
	meta := responseMeta(r)
	if !start.IsZero() {
		meta.QueryTimeMS = time.Since(start).Milliseconds()
	}
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice {
		meta.Count = v.Len()
	}
	respondJSON(w, status, &models.APIResponse{Status: "success", Data: data, Metadata: meta})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: responseMeta(r),
		Error:    &models.APIError{Code: code, Message: message},
	})
}

func respondValidation(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: responseMeta(r),
		Error:    &models.APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details},
	})
}

// respondServiceError maps a service error to its HTTP status and code.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *upstream.FetchError
	switch {
	case errors.As(err, &fe):
		logging.Ctx(r.Context()).Warn().Err(err).Str("source", fe.Source).Str("kind", fe.Kind).Msg("item fetch failed")
		respondError(w, r, http.StatusBadGateway, CodeUpstreamFetch, fe.Message, nil)
	case errors.Is(err, views.ErrViewNotFound):
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Saved view not found", nil)
	case errors.Is(err, views.ErrEmptyName),
		errors.Is(err, dashboard.ErrEmptyItemID),
		errors.Is(err, export.ErrUnknownScope),
		errors.Is(err, export.ErrInvalidShare):
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}

// decodeBody reads a JSON body into v and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "Request body must be valid JSON", nil)
		return false
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		respondValidation(w, r, verr)
		return false
	}
	return true
}
