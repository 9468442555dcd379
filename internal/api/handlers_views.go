// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/learnqueue/internal/dashboard"
	"github.com/tomtom215/learnqueue/internal/models"
)

// ListViews returns saved views, most recently used first.
//
// @Summary List saved views
// @Tags Views
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.SavedView}
// @Router /views [get]
func (h *Handler) ListViews(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListViews(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, list, time.Time{})
}

// CreateView saves a named filter state.
//
// @Summary Create saved view
// @Tags Views
// @Accept json
// @Produce json
// @Param request body CreateViewRequest true "View"
// @Success 201 {object} models.APIResponse{data=models.SavedView}
// @Failure 400 {object} models.APIResponse
// @Router /views [post]
func (h *Handler) CreateView(w http.ResponseWriter, r *http.Request) {
	var req CreateViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	filters := models.DefaultFilterState()
	if req.Filters != nil {
		filters = *req.Filters
	}
	view, err := h.svc.CreateView(r.Context(), req.Name, req.Description, filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusCreated, view, time.Time{})
}

// UpdateView renames a saved view. Its filters never change.
//
// @Summary Rename saved view
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View id"
// @Param request body UpdateViewRequest true "Name and description"
// @Success 200 {object} models.APIResponse{data=models.SavedView}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /views/{id} [patch]
func (h *Handler) UpdateView(w http.ResponseWriter, r *http.Request) {
	var req UpdateViewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateView(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, view, time.Time{})
}

// DeleteView removes a saved view.
//
// @Summary Delete saved view
// @Tags Views
// @Param id path string true "View id"
// @Success 204
// @Failure 404 {object} models.APIResponse
// @Router /views/{id} [delete]
func (h *Handler) DeleteView(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteView(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// appliedView is the apply payload: the filters and their summary.
type appliedView struct {
	Filters models.FilterState      `json:"filters"`
	Summary dashboard.FilterSummary `json:"summary"`
}

// ApplyView returns a view's filters and marks it most recently used.
//
// @Summary Apply saved view
// @Tags Views
// @Produce json
// @Param id path string true "View id"
// @Success 200 {object} models.APIResponse{data=appliedView}
// @Failure 404 {object} models.APIResponse
// @Router /views/{id}/apply [post]
func (h *Handler) ApplyView(w http.ResponseWriter, r *http.Request) {
	filters, err := h.svc.ApplyView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, appliedView{Filters: filters, Summary: dashboard.Summarize(filters)}, time.Time{})
}
