// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package streak derives learning streaks, weekly progress and achievements
// from the consumed log.
//
// Calendar days are evaluated in the tracker's location. lastActivityDate is
// stored as YYYY-MM-DD in that location.
package streak

import (
	"fmt"
	"time"

	"github.com/tomtom215/learnqueue/internal/models"
)

// DayLayout is the persisted form of StreakState.LastActivityDate.
const DayLayout = "2006-01-02"

// Window selects how weekly progress is counted.
type Window string

const (
	// WindowLifetime counts every consumed item.
	WindowLifetime Window = "lifetime"

	// WindowRolling counts items consumed in the trailing seven days.
	WindowRolling Window = "rolling"
)

const rollingWindow = 7 * 24 * time.Hour

// Config configures a Tracker.
type Config struct {
	Location *time.Location
	Window   Window
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Tracker applies consumption and bookmark changes to a StreakState.
// It holds no mutable state and is safe for concurrent use.
type Tracker struct {
	loc    *time.Location
	window Window
	now    func() time.Time
}

// Result is the outcome of an update.
type Result struct {
	State models.StreakState
	// Unlocked lists achievements added by this call, in table order.
	Unlocked []models.Achievement
}

// NewTracker validates cfg and returns a Tracker.
func NewTracker(cfg Config) (*Tracker, error) {
	t := &Tracker{loc: cfg.Location, window: cfg.Window, now: cfg.Now}
	if t.loc == nil {
		t.loc = time.Local
	}
	if t.window == "" {
		t.window = WindowLifetime
	}
	if t.window != WindowLifetime && t.window != WindowRolling {
		return nil, fmt.Errorf("unknown weekly window %q", cfg.Window)
	}
	if t.now == nil {
		t.now = time.Now
	}
	return t, nil
}

// Today returns the current calendar day in the tracker's location.
func (t *Tracker) Today() string {
	return t.now().In(t.loc).Format(DayLayout)
}

// Update recomputes prior after the consumed log changed. The input state is
// not modified.
func (t *Tracker) Update(prior models.StreakState, log models.ConsumedLog, bookmarkCount int) Result {
	now := t.now().In(t.loc)
	state := Normalize(prior, 0)

	state.TotalItemsConsumed = len(log.Entries)

	today := now.Format(DayLayout)
	if len(log.Entries) > 0 && (state.LastActivityDate == nil || *state.LastActivityDate != today) {
		yesterday := now.AddDate(0, 0, -1).Format(DayLayout)
		if state.LastActivityDate != nil && *state.LastActivityDate == yesterday {
			state.CurrentStreak++
		} else {
			state.CurrentStreak = 1
		}
		state.LastActivityDate = &today
	}
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}

	weekly := state.TotalItemsConsumed
	if t.window == WindowRolling {
		weekly = log.CountSince(now.Add(-rollingWindow))
	}
	state.WeeklyProgress = min(weekly, state.WeeklyGoal)

	unlocked := t.unlock(&state, bookmarkCount, now)
	return Result{State: state, Unlocked: unlocked}
}

// Evaluate re-checks achievements without touching streak counters. It is
// used when only the bookmark count changed.
func (t *Tracker) Evaluate(prior models.StreakState, bookmarkCount int) Result {
	state := Normalize(prior, 0)
	unlocked := t.unlock(&state, bookmarkCount, t.now())
	return Result{State: state, Unlocked: unlocked}
}

func (t *Tracker) unlock(state *models.StreakState, bookmarkCount int, now time.Time) []models.Achievement {
	var unlocked []models.Achievement
	for _, def := range Definitions {
		if state.HasAchievement(def.ID) || !def.Unlocked(state, bookmarkCount) {
			continue
		}
		a := def.achievement(now.UTC())
		state.Achievements = append(state.Achievements, a)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// Normalize clones s and repairs fields a malformed or partial record could
// leave invalid. A missing weekly goal becomes defaultGoal, or
// models.DefaultWeeklyGoal when defaultGoal is not positive.
func Normalize(s models.StreakState, defaultGoal int) models.StreakState {
	out := s.Clone()
	if out.WeeklyGoal <= 0 {
		out.WeeklyGoal = defaultGoal
		if out.WeeklyGoal <= 0 {
			out.WeeklyGoal = models.DefaultWeeklyGoal
		}
	}
	out.CurrentStreak = max(out.CurrentStreak, 0)
	out.LongestStreak = max(out.LongestStreak, out.CurrentStreak)
	out.TotalItemsConsumed = max(out.TotalItemsConsumed, 0)
	out.WeeklyProgress = min(max(out.WeeklyProgress, 0), out.WeeklyGoal)
	return out
}

// Badge returns the emoji tier for a streak length.
func Badge(currentStreak int) string {
	switch {
	case currentStreak >= 30:
		return "👑"
	case currentStreak >= 14:
		return "⚡"
	case currentStreak >= 7:
		return "🔥"
	case currentStreak >= 3:
		return "💪"
	default:
		return "🌱"
	}
}
