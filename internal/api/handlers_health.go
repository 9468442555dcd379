// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/upstream"
	ws "github.com/tomtom215/learnqueue/internal/websocket"
)

// Health reports liveness. The status is "degraded" while the last item
// fetch failed; the endpoint itself always answers 200.
//
// @Summary Health status
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Store:   h.store,
		Source:  h.source,
		Uptime:  h.now().Sub(h.startTime).Seconds(),
	}
	if h.hub != nil {
		health.WSClients = h.hub.GetClientCount()
	}
	if h.status != nil {
		last, err := h.status.LastFetch()
		if !last.IsZero() {
			health.LastFetch = &last
		}
		if err != nil {
			health.Status = "degraded"
			health.LastFetchErr = err.Error()
			if fe := upstream.AsFetchError(h.source, err); fe != nil {
				health.LastFetchErr = fe.Message
			}
		}
	}
	respondSuccess(w, r, http.StatusOK, health, time.Time{})
}

// WebSocket upgrades to the live event stream.
//
// @Summary Live engagement events
// @Description Pushes engagement and items_refreshed messages; clients may send ping
// @Tags Core
// @Success 101
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeInternal, "Live updates are disabled", nil)
		return
	}
	ws.ServeWS(h.hub, h.upgrader, w, r)
}
