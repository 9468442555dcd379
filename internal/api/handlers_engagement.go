// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Bookmarks returns the bookmarked item ids.
//
// @Summary List bookmarks
// @Tags Engagement
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string}
// @Router /bookmarks [get]
func (h *Handler) Bookmarks(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.Bookmarks(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, ids, time.Time{})
}

// SetBookmarks replaces the bookmark set.
//
// @Summary Replace bookmarks
// @Tags Engagement
// @Accept json
// @Produce json
// @Param request body BookmarksRequest true "Bookmarked item ids"
// @Success 200 {object} models.APIResponse{data=dashboard.BookmarkResult}
// @Failure 400 {object} models.APIResponse
// @Router /bookmarks [put]
func (h *Handler) SetBookmarks(w http.ResponseWriter, r *http.Request) {
	var req BookmarksRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.SetBookmarks(r.Context(), req.Bookmarks)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, res, time.Time{})
}

// ToggleBookmark flips one item's bookmark.
//
// @Summary Toggle bookmark
// @Tags Engagement
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.APIResponse{data=dashboard.BookmarkResult}
// @Failure 400 {object} models.APIResponse
// @Router /bookmarks/{id}/toggle [post]
func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ToggleBookmark(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, res, time.Time{})
}

// SetConsumed marks an item consumed or unconsumed and updates the streak.
//
// @Summary Set consumed
// @Tags Engagement
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param request body ConsumedRequest true "Consumed flag"
// @Success 200 {object} models.APIResponse{data=dashboard.ConsumedResult}
// @Failure 400 {object} models.APIResponse
// @Router /items/{id}/consumed [post]
func (h *Handler) SetConsumed(w http.ResponseWriter, r *http.Request) {
	var req ConsumedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.SetConsumed(r.Context(), chi.URLParam(r, "id"), *req.Consumed)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, res, time.Time{})
}

// noteResponse is the note endpoint payload.
type noteResponse struct {
	ItemID string `json:"itemId"`
	Note   string `json:"note"`
}

// Note returns an item's note, or an empty string.
//
// @Summary Get note
// @Tags Engagement
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.APIResponse{data=noteResponse}
// @Router /items/{id}/note [get]
func (h *Handler) Note(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	note, err := h.svc.Note(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, noteResponse{ItemID: id, Note: note}, time.Time{})
}

// SaveNote stores an item's note. Blank text deletes it; non-blank text
// bookmarks the item if it was not already.
//
// @Summary Save note
// @Tags Engagement
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param request body NoteRequest true "Note text"
// @Success 200 {object} models.APIResponse{data=dashboard.NoteResult}
// @Failure 400 {object} models.APIResponse
// @Router /items/{id}/note [put]
func (h *Handler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.SaveNote(r.Context(), chi.URLParam(r, "id"), req.Note)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, res, time.Time{})
}

// DeleteNote removes an item's note.
//
// @Summary Delete note
// @Tags Engagement
// @Param id path string true "Item id"
// @Success 204
// @Router /items/{id}/note [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// darkModeResponse is the dark-mode payload.
type darkModeResponse struct {
	DarkMode bool `json:"darkMode"`
}

// DarkMode returns the dark-mode flag.
//
// @Summary Get dark mode
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.APIResponse{data=darkModeResponse}
// @Router /preferences/dark-mode [get]
func (h *Handler) DarkMode(w http.ResponseWriter, r *http.Request) {
	on, err := h.svc.DarkMode(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, darkModeResponse{DarkMode: on}, time.Time{})
}

// SetDarkMode stores the dark-mode flag.
//
// @Summary Set dark mode
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body DarkModeRequest true "Flag"
// @Success 200 {object} models.APIResponse{data=darkModeResponse}
// @Failure 400 {object} models.APIResponse
// @Router /preferences/dark-mode [put]
func (h *Handler) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req DarkModeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.SetDarkMode(r.Context(), *req.DarkMode); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, darkModeResponse{DarkMode: *req.DarkMode}, time.Time{})
}
