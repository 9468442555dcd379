// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/learnqueue/internal/dashboard"
)

// Items returns the filtered, sorted item list.
//
// @Summary List items
// @Description Fetches items, applies the consumed overlay, then filters and sorts them
// @Tags Items
// @Produce json
// @Param q query string false "Case-insensitive search over title, summary, why-it-matters and tags"
// @Param sourceType query string false "Exact source type"
// @Param tags query string false "Comma-separated tags, any may match"
// @Param hideConsumed query bool false "Drop consumed items"
// @Param showBookmarked query bool false "Only bookmarked items"
// @Param sortBy query string false "score, estimatedTime or dateAdded" default(score)
// @Success 200 {object} models.APIResponse{data=[]models.Item}
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /items [get]
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q, verr := parseFilterQuery(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	items, err := h.svc.Items(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, items, start)
}

// Facets lists the tags and source types present in the item list.
//
// @Summary List filter facets
// @Tags Items
// @Produce json
// @Success 200 {object} models.APIResponse{data=dashboard.Facets}
// @Failure 502 {object} models.APIResponse
// @Router /facets [get]
func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	facets, err := h.svc.Facets(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, facets, start)
}

// Analytics summarizes the filtered item list.
//
// @Summary Summarize items
// @Description Counts, averages, top tags and distributions over the filtered set
// @Tags Items
// @Produce json
// @Param q query string false "Search text"
// @Param sourceType query string false "Exact source type"
// @Param tags query string false "Comma-separated tags"
// @Param hideConsumed query bool false "Drop consumed items"
// @Param showBookmarked query bool false "Only bookmarked items"
// @Success 200 {object} models.APIResponse{data=analytics.Metrics}
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q, verr := parseFilterQuery(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	m, err := h.svc.Analytics(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, m, start)
}

// Dashboard returns everything the dashboard page renders. A failed item
// fetch is reported in fetchError with a 200 status.
//
// @Summary Dashboard snapshot
// @Tags Items
// @Produce json
// @Param q query string false "Search text"
// @Param sourceType query string false "Exact source type"
// @Param tags query string false "Comma-separated tags"
// @Param hideConsumed query bool false "Drop consumed items"
// @Param showBookmarked query bool false "Only bookmarked items"
// @Param sortBy query string false "score, estimatedTime or dateAdded"
// @Success 200 {object} models.APIResponse{data=dashboard.Snapshot}
// @Failure 400 {object} models.APIResponse
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q, verr := parseFilterQuery(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	snap, err := h.svc.Snapshot(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, snap, start)
}

// FilterSummary describes the filter parameters.
//
// @Summary Describe filters
// @Tags Items
// @Produce json
// @Param sourceType query string false "Exact source type"
// @Param tags query string false "Comma-separated tags"
// @Param hideConsumed query bool false "Drop consumed items"
// @Param showBookmarked query bool false "Only bookmarked items"
// @Param sortBy query string false "score, estimatedTime or dateAdded"
// @Success 200 {object} models.APIResponse{data=dashboard.FilterSummary}
// @Failure 400 {object} models.APIResponse
// @Router /filters/summary [get]
func (h *Handler) FilterSummary(w http.ResponseWriter, r *http.Request) {
	q, verr := parseFilterQuery(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	respondSuccess(w, r, http.StatusOK, dashboard.Summarize(q.Filters), time.Time{})
}
