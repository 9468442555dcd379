// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

import "time"

// Rarity grades an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is an unlocked badge. UnlockedAt never changes once set.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Rarity      Rarity    `json:"rarity"`
}

// StreakState is the persisted gamification aggregate.
//
// LastActivityDate is a calendar day ("2006-01-02") in the tracker's
// timezone, or nil before the first consumption.
type StreakState struct {
	CurrentStreak      int           `json:"currentStreak"`
	LongestStreak      int           `json:"longestStreak"`
	TotalItemsConsumed int           `json:"totalItemsConsumed"`
	WeeklyGoal         int           `json:"weeklyGoal"`
	WeeklyProgress     int           `json:"weeklyProgress"`
	LastActivityDate   *string       `json:"lastActivityDate"`
	Achievements       []Achievement `json:"achievements"`
}

// DefaultWeeklyGoal is the goal assigned to a fresh streak record.
const DefaultWeeklyGoal = 7

// DefaultStreakState returns a fresh streak record.
func DefaultStreakState() StreakState {
	return StreakState{
		WeeklyGoal:   DefaultWeeklyGoal,
		Achievements: []Achievement{},
	}
}

// HasAchievement reports whether id is already unlocked.
func (s *StreakState) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a copy with its own achievements slice.
func (s StreakState) Clone() StreakState {
	out := s
	out.Achievements = make([]Achievement, len(s.Achievements))
	copy(out.Achievements, s.Achievements)
	if s.LastActivityDate != nil {
		d := *s.LastActivityDate
		out.LastActivityDate = &d
	}
	return out
}
