// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package views manages named snapshots of filter state.
//
// The Manager operates on a caller-owned slice and never mutates it; every
// operation returns a fresh slice for the caller to persist.
package views

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/learnqueue/internal/models"
)

var (
	// ErrEmptyName is returned when a view name is blank after trimming.
	ErrEmptyName = errors.New("view name is required")

	// ErrViewNotFound is returned when no view has the requested id.
	ErrViewNotFound = errors.New("saved view not found")
)

// Manager creates and edits saved views.
type Manager struct {
	now   func() time.Time
	newID func() (string, error)
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(m *Manager) { m.newID = gen }
}

// NewManager returns a Manager issuing UUIDv7 ids.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		now: time.Now,
		newID: func() (string, error) {
			id, err := uuid.NewV7()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create appends a view holding a copy of filters.
func (m *Manager) Create(list []models.SavedView, name, description string, filters models.FilterState) ([]models.SavedView, models.SavedView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return list, models.SavedView{}, ErrEmptyName
	}
	id, err := m.newID()
	if err != nil {
		return list, models.SavedView{}, fmt.Errorf("generate view id: %w", err)
	}

	now := m.now().UTC()
	view := models.SavedView{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		Filters:     filters.Clone(),
		CreatedAt:   now,
		LastUsed:    now,
	}
	return append(clone(list), view), view, nil
}

// Apply returns a copy of the view's filters and bumps its lastUsed.
func (m *Manager) Apply(list []models.SavedView, id string) ([]models.SavedView, models.FilterState, error) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, models.FilterState{}, ErrViewNotFound
	}
	out := clone(list)
	out[idx].LastUsed = m.now().UTC()
	return out, out[idx].Filters.Clone(), nil
}

// Update renames a view. Filters are never edited. found is false, and list is
// returned unchanged, when id is unknown.
func (m *Manager) Update(list []models.SavedView, id, name, description string) (out []models.SavedView, found bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return list, false, ErrEmptyName
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false, nil
	}
	out = clone(list)
	out[idx].Name = name
	out[idx].Description = strings.TrimSpace(description)
	return out, true, nil
}

// Delete removes a view. found is false when id is unknown.
func (m *Manager) Delete(list []models.SavedView, id string) (out []models.SavedView, found bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out = make([]models.SavedView, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return out, true
}

// Sorted returns views ordered by lastUsed, most recent first.
func Sorted(list []models.SavedView) []models.SavedView {
	out := clone(list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUsed.After(out[j].LastUsed)
	})
	return out
}

// Find returns the view with id.
func Find(list []models.SavedView, id string) (models.SavedView, bool) {
	if idx := indexOf(list, id); idx >= 0 {
		return list[idx], true
	}
	return models.SavedView{}, false
}

func indexOf(list []models.SavedView, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(list []models.SavedView) []models.SavedView {
	out := make([]models.SavedView, len(list))
	for i := range list {
		out[i] = list[i]
		out[i].Filters = list[i].Filters.Clone()
	}
	return out
}
