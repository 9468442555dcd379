// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/recommend"
)

// Recommendations ranks unengaged items.
//
// @Summary Recommendations
// @Description Up to eight suggestions from the trending, personalized, quick-win and deep-dive passes
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Recommendation}
// @Failure 502 {object} models.APIResponse
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	recs, err := h.svc.Recommendations(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, recs, start)
}

// preferencesResponse adds the refresh policy to the learned preferences.
type preferencesResponse struct {
	models.UserPreferences
	Policy recommend.Policy `json:"policy"`
}

// Preferences returns the learned preferences.
//
// @Summary Learned preferences
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.APIResponse{data=preferencesResponse}
// @Router /preferences [get]
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Preferences(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, preferencesResponse{UserPreferences: prefs, Policy: h.svc.Policy()}, time.Time{})
}

// RecomputePreferences relearns preferences from current engagement.
//
// @Summary Recompute preferences
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.APIResponse{data=preferencesResponse}
// @Failure 502 {object} models.APIResponse
// @Router /preferences/recompute [post]
func (h *Handler) RecomputePreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.RecomputePreferences(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, preferencesResponse{UserPreferences: prefs, Policy: h.svc.Policy()}, time.Time{})
}

// Streak returns the streak record and badge.
//
// @Summary Streak
// @Tags Streak
// @Produce json
// @Success 200 {object} models.APIResponse{data=dashboard.StreakView}
// @Router /streak [get]
func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Streak(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, st, time.Time{})
}
