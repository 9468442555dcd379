// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/prefstore"
)

// browserDateLayout is the Date.toDateString() form older streak records carry.
const browserDateLayout = "Mon Jan 02 2006"

// ImportResult lists imported keys and skipped keys with the reason.
type ImportResult struct {
	Imported []string          `json:"imported"`
	Skipped  map[string]string `json:"skipped"`
}

// ImportLocal ingests a browser localStorage dump. Values are the raw strings
// the browser stored. Unknown keys and undecodable values are skipped; the
// remaining keys overwrite what is stored.
func (s *Service) ImportLocal(ctx context.Context, raw map[string]string) (ImportResult, error) {
	res := ImportResult{Imported: []string{}, Skipped: map[string]string{}}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if !prefstore.IsKnownKey(key) {
			res.Skipped[key] = "unrecognized key"
			continue
		}
		value, err := s.convertImported(key, raw[key])
		if err != nil {
			res.Skipped[key] = err.Error()
			continue
		}
		if value == nil {
			if err := s.store.Delete(ctx, key); err != nil {
				return res, err
			}
		} else if err := s.store.Set(ctx, key, value); err != nil {
			return res, err
		}
		res.Imported = append(res.Imported, key)
	}

	s.logger.Info().
		Int("imported", len(res.Imported)).
		Int("skipped", len(res.Skipped)).
		Msg("local state imported")
	return res, nil
}

// convertImported validates one value and returns the bytes to store. A nil
// result means the key should be removed.
func (s *Service) convertImported(key, value string) ([]byte, error) {
	switch {
	case strings.HasPrefix(key, prefstore.NotePrefix):
		if strings.TrimSpace(value) == "" {
			return nil, nil
		}
		return []byte(value), nil

	case key == prefstore.KeyBookmarks:
		var ids []string
		if err := json.Unmarshal([]byte(value), &ids); err != nil {
			return nil, fmt.Errorf("bookmarks: %w", err)
		}
		return json.Marshal(dedupeIDs(ids))

	case key == prefstore.KeyConsumed:
		log, err := s.importConsumed(value)
		if err != nil {
			return nil, err
		}
		return json.Marshal(log)

	case key == prefstore.KeyStreaks:
		var st models.StreakState
		if err := json.Unmarshal([]byte(value), &st); err != nil {
			return nil, fmt.Errorf("streaks: %w", err)
		}
		if st.LastActivityDate != nil {
			if t, err := time.Parse(browserDateLayout, *st.LastActivityDate); err == nil {
				st.LastActivityDate = models.String(t.Format(time.DateOnly))
			}
		}
		if st.WeeklyGoal <= 0 {
			st.WeeklyGoal = s.weeklyGoal
		}
		return json.Marshal(st)

	case key == prefstore.KeyPreferences:
		var p models.UserPreferences
		if err := json.Unmarshal([]byte(value), &p); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
		return json.Marshal(p)

	case key == prefstore.KeySavedViews:
		var list []models.SavedView
		if err := json.Unmarshal([]byte(value), &list); err != nil {
			return nil, fmt.Errorf("saved views: %w", err)
		}
		return json.Marshal(list)

	case key == prefstore.KeyDarkMode:
		var on bool
		if err := json.Unmarshal([]byte(value), &on); err != nil {
			return nil, fmt.Errorf("dark mode: %w", err)
		}
		return json.Marshal(on)
	}
	return nil, fmt.Errorf("unsupported key")
}

// importConsumed accepts either a stored log or a bare id array; bare ids are
// timestamped now.
func (s *Service) importConsumed(value string) (models.ConsumedLog, error) {
	var log models.ConsumedLog
	if err := json.Unmarshal([]byte(value), &log); err == nil {
		return log, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return models.ConsumedLog{}, fmt.Errorf("consumed: %w", err)
	}
	now := s.now().UTC()
	for _, id := range dedupeIDs(ids) {
		log.Mark(id, true, now)
	}
	return log, nil
}
