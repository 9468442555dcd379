// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/learnqueue/internal/export"
	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/validation"
)

// apiPrefix is where share links resolve.
const apiPrefix = "/api/v1"

func parseExportQuery(r *http.Request) (ExportQuery, export.Scope, *validation.RequestValidationError) {
	q := ExportQuery{
		Scope:  strings.ToLower(strings.TrimSpace(r.URL.Query().Get("scope"))),
		Format: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))),
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, "", verr
	}
	if q.Format == "" {
		q.Format = "csv"
	}
	scope, _ := export.ParseScope(q.Scope) //nolint:errcheck // oneof already checked the name
	return q, scope, nil
}

// Export downloads the items in scope as CSV or a printable HTML document.
//
// @Summary Export items
// @Tags Export
// @Produce text/csv,text/html
// @Param scope query string false "all, bookmarked or consumed" default(bookmarked)
// @Param format query string false "csv or html" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	q, scope, verr := parseExportQuery(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	items, err := h.svc.ExportItems(r.Context(), scope)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	now := h.now()
	var buf bytes.Buffer
	switch q.Format {
	case "html":
		err = export.WriteHTML(&buf, scope, items, now)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	default:
		err = export.WriteCSV(&buf, items)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.CSVFilename(scope, now)+`"`)
	}
	if err != nil {
		w.Header().Del("Content-Disposition")
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Failed to render export", err)
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("export write failed")
	}
}

// shareResponse carries a share link and prefilled social intents.
type shareResponse struct {
	URL   string            `json:"url"`
	Count int               `json:"count"`
	Links map[string]string `json:"links"`
}

// Share builds a link that renders the items in scope without server state.
//
// @Summary Create share link
// @Tags Export
// @Produce json
// @Param scope query string false "all, bookmarked or consumed" default(bookmarked)
// @Success 200 {object} models.APIResponse{data=shareResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /export/share [post]
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	_, scope, verr := parseExportQuery(r)
	if verr != nil {
		respondValidation(w, r, verr)
		return
	}
	items, err := h.svc.ExportItems(r.Context(), scope)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	payload, err := export.EncodeShare(export.NewShare(scope, items, h.now()))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	link := export.ShareURL(strings.TrimRight(h.publicURL, "/")+apiPrefix, payload)
	respondSuccess(w, r, http.StatusOK, shareResponse{
		URL:   link,
		Count: len(items),
		Links: export.SocialLinks(link, scope, len(items)),
	}, time.Time{})
}

// Shared decodes a share link payload.
//
// @Summary Decode share link
// @Tags Export
// @Produce json
// @Param payload path string true "Share payload"
// @Success 200 {object} models.APIResponse{data=export.Share}
// @Failure 400 {object} models.APIResponse
// @Router /shared/{payload} [get]
func (h *Handler) Shared(w http.ResponseWriter, r *http.Request) {
	payload := chi.URLParam(r, "*")
	if unescaped, err := url.PathUnescape(payload); err == nil {
		payload = unescaped
	}
	share, err := export.DecodeShare(payload)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "Invalid share link", nil)
		return
	}
	respondSuccess(w, r, http.StatusOK, share, time.Time{})
}
