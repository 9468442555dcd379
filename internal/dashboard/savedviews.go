// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"

	"github.com/tomtom215/learnqueue/internal/events"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/prefstore"
	"github.com/tomtom215/learnqueue/internal/views"
)

// ListViews returns saved views, most recently used first.
func (s *Service) ListViews(ctx context.Context) ([]models.SavedView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadViews(ctx)
	if err != nil {
		return nil, err
	}
	return views.Sorted(list), nil
}

// CreateView saves filters under name.
func (s *Service) CreateView(ctx context.Context, name, description string, filters models.FilterState) (models.SavedView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadViews(ctx)
	if err != nil {
		return models.SavedView{}, err
	}
	list, view, err := s.views.Create(list, name, description, filters.Normalize())
	if err != nil {
		return models.SavedView{}, err
	}
	if err := prefstore.Save(ctx, s.store, prefstore.KeySavedViews, list); err != nil {
		return models.SavedView{}, err
	}
	s.logger.Debug().Str("view_id", view.ID).Str("name", view.Name).Msg("saved view created")
	return view, nil
}

// ApplyView returns the view's filters and records it as most recently used.
func (s *Service) ApplyView(ctx context.Context, id string) (models.FilterState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadViews(ctx)
	if err != nil {
		return models.FilterState{}, err
	}
	list, filters, err := s.views.Apply(list, id)
	if err != nil {
		return models.FilterState{}, err
	}
	if err := prefstore.Save(ctx, s.store, prefstore.KeySavedViews, list); err != nil {
		return models.FilterState{}, err
	}
	s.publish(ctx, events.New(events.TypeViewApplied, "", map[string]any{"viewId": id}))
	return filters, nil
}

// UpdateView renames a view. Unknown ids yield views.ErrViewNotFound.
func (s *Service) UpdateView(ctx context.Context, id, name, description string) (models.SavedView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadViews(ctx)
	if err != nil {
		return models.SavedView{}, err
	}
	list, found, err := s.views.Update(list, id, name, description)
	if err != nil {
		return models.SavedView{}, err
	}
	if !found {
		return models.SavedView{}, views.ErrViewNotFound
	}
	if err := prefstore.Save(ctx, s.store, prefstore.KeySavedViews, list); err != nil {
		return models.SavedView{}, err
	}
	view, _ := views.Find(list, id)
	return view, nil
}

// DeleteView removes a view. Unknown ids yield views.ErrViewNotFound.
func (s *Service) DeleteView(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadViews(ctx)
	if err != nil {
		return err
	}
	list, found := s.views.Delete(list, id)
	if !found {
		return views.ErrViewNotFound
	}
	return prefstore.Save(ctx, s.store, prefstore.KeySavedViews, list)
}
