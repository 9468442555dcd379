// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/learnqueue/internal/events"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/prefstore"
)

// ErrEmptyItemID is returned when an engagement operation names no item.
var ErrEmptyItemID = errors.New("item id is required")

// BookmarkResult reports a bookmark change.
type BookmarkResult struct {
	ItemID     string               `json:"itemId"`
	Bookmarked bool                 `json:"bookmarked"`
	Bookmarks  []string             `json:"bookmarks"`
	Unlocked   []models.Achievement `json:"unlocked"`
}

// ConsumedResult reports a consumed toggle and the updated streak.
type ConsumedResult struct {
	ItemID   string               `json:"itemId"`
	Consumed bool                 `json:"consumed"`
	Streak   StreakView           `json:"streak"`
	Unlocked []models.Achievement `json:"unlocked"`
}

// NoteResult reports a saved note.
type NoteResult struct {
	ItemID string `json:"itemId"`
	Note   string `json:"note"`
	// AutoBookmarked is true when saving the note bookmarked the item.
	AutoBookmarked bool `json:"autoBookmarked"`
}

// Bookmarks returns the bookmarked item ids in insertion order.
func (s *Service) Bookmarks(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return nil, err
	}
	return eng.bookmarks, nil
}

// SetBookmarks replaces the bookmark set. Duplicates and empty ids are dropped.
func (s *Service) SetBookmarks(ctx context.Context, ids []string) (BookmarkResult, error) {
	items, fetchErr := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return BookmarkResult{}, err
	}
	eng.bookmarks = dedupeIDs(ids)
	unlocked, err := s.afterBookmarkChange(ctx, overlay(&eng.consumed, items, fetchErr), &eng)
	if err != nil {
		return BookmarkResult{}, err
	}
	return BookmarkResult{Bookmarks: eng.bookmarks, Unlocked: unlocked}, nil
}

// ToggleBookmark adds or removes id from the bookmark set.
func (s *Service) ToggleBookmark(ctx context.Context, id string) (BookmarkResult, error) {
	if strings.TrimSpace(id) == "" {
		return BookmarkResult{}, ErrEmptyItemID
	}
	items, fetchErr := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return BookmarkResult{}, err
	}

	bookmarked := !eng.bookmarkSet().Has(id)
	if bookmarked {
		eng.bookmarks = append(eng.bookmarks, id)
	} else {
		eng.bookmarks = removeID(eng.bookmarks, id)
	}

	unlocked, err := s.afterBookmarkChange(ctx, overlay(&eng.consumed, items, fetchErr), &eng)
	if err != nil {
		return BookmarkResult{}, err
	}
	s.publish(ctx, events.New(events.TypeBookmarkToggled, id, map[string]any{"bookmarked": bookmarked}))
	return BookmarkResult{ItemID: id, Bookmarked: bookmarked, Bookmarks: eng.bookmarks, Unlocked: unlocked}, nil
}

// afterBookmarkChange persists bookmarks, re-evaluates achievements without
// advancing the streak day, and relearns preferences per policy. Caller holds s.mu.
func (s *Service) afterBookmarkChange(ctx context.Context, items []models.Item, eng *engagement) ([]models.Achievement, error) {
	if err := prefstore.Save(ctx, s.store, prefstore.KeyBookmarks, eng.bookmarks); err != nil {
		return nil, err
	}
	st, err := s.loadStreak(ctx)
	if err != nil {
		return nil, err
	}
	res := s.tracker.Evaluate(st, len(eng.bookmarks))
	if len(res.Unlocked) > 0 {
		if err := s.saveStreak(ctx, res); err != nil {
			return nil, err
		}
	}
	if _, err := s.resolvePreferences(ctx, items, eng, learnOnEngagement); err != nil {
		return nil, err
	}
	return nonNil(res.Unlocked), nil
}

// SetConsumed marks id consumed or not and runs the streak update.
func (s *Service) SetConsumed(ctx context.Context, id string, consumed bool) (ConsumedResult, error) {
	if strings.TrimSpace(id) == "" {
		return ConsumedResult{}, ErrEmptyItemID
	}
	items, fetchErr := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return ConsumedResult{}, err
	}
	eng.consumed.Mark(id, consumed, s.now().UTC())
	if err := prefstore.Save(ctx, s.store, prefstore.KeyConsumed, eng.consumed); err != nil {
		return ConsumedResult{}, err
	}

	st, err := s.loadStreak(ctx)
	if err != nil {
		return ConsumedResult{}, err
	}
	res := s.tracker.Update(st, eng.consumed, len(eng.bookmarks))
	if err := s.saveStreak(ctx, res); err != nil {
		return ConsumedResult{}, err
	}
	if _, err := s.resolvePreferences(ctx, overlay(&eng.consumed, items, fetchErr), &eng, learnOnEngagement); err != nil {
		return ConsumedResult{}, err
	}

	s.publish(ctx, events.New(events.TypeConsumedToggled, id, map[string]any{
		"consumed":      consumed,
		"currentStreak": res.State.CurrentStreak,
	}))
	return ConsumedResult{
		ItemID:   id,
		Consumed: consumed,
		Streak:   newStreakView(res.State),
		Unlocked: nonNil(res.Unlocked),
	}, nil
}

// Note returns the note for id, or "" when none is saved.
func (s *Service) Note(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrEmptyItemID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, prefstore.NoteKey(id))
	if errors.Is(err, prefstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SaveNote stores text as the note for id. A note that is blank after
// trimming deletes the key. A non-blank note bookmarks the item if needed.
func (s *Service) SaveNote(ctx context.Context, id, text string) (NoteResult, error) {
	if strings.TrimSpace(id) == "" {
		return NoteResult{}, ErrEmptyItemID
	}
	if strings.TrimSpace(text) == "" {
		return NoteResult{ItemID: id}, s.DeleteNote(ctx, id)
	}
	items, fetchErr := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, prefstore.NoteKey(id), []byte(text)); err != nil {
		return NoteResult{}, err
	}

	eng, err := s.loadEngagement(ctx)
	if err != nil {
		return NoteResult{}, err
	}
	res := NoteResult{ItemID: id, Note: text}
	if !eng.bookmarkSet().Has(id) {
		eng.bookmarks = append(eng.bookmarks, id)
		if _, err := s.afterBookmarkChange(ctx, overlay(&eng.consumed, items, fetchErr), &eng); err != nil {
			return NoteResult{}, err
		}
		res.AutoBookmarked = true
		s.publish(ctx, events.New(events.TypeBookmarkToggled, id, map[string]any{"bookmarked": true}))
	}
	s.publish(ctx, events.New(events.TypeNoteSaved, id, map[string]any{"length": len(text)}))
	return res, nil
}

// DeleteNote removes the note for id.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyItemID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, prefstore.NoteKey(id)); err != nil {
		return err
	}
	s.publish(ctx, events.New(events.TypeNoteSaved, id, map[string]any{"length": 0}))
	return nil
}

// DarkMode returns the dark-mode flag.
func (s *Service) DarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode(ctx)
}

func (s *Service) darkMode(ctx context.Context) (bool, error) {
	v, _, err := prefstore.Load(ctx, s.store, prefstore.KeyDarkMode, false)
	return v, err
}

// SetDarkMode stores the dark-mode flag.
func (s *Service) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return prefstore.Save(ctx, s.store, prefstore.KeyDarkMode, on)
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func nonNil(a []models.Achievement) []models.Achievement {
	if a == nil {
		return []models.Achievement{}
	}
	return a
}
