// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package streak

import (
	"time"

	"github.com/tomtom215/learnqueue/internal/models"
)

// Definition is one row of the achievement table.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Rarity      models.Rarity
	Unlocked    func(s *models.StreakState, bookmarkCount int) bool
}

func (d Definition) achievement(at time.Time) models.Achievement {
	return models.Achievement{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		UnlockedAt:  at,
		Rarity:      d.Rarity,
	}
}

// Definitions is evaluated in order on every update.
var Definitions = []Definition{
	{
		ID: "first_read", Title: "First Steps", Description: "Consumed your first learning item",
		Icon: "🎯", Rarity: models.RarityCommon,
		Unlocked: func(s *models.StreakState, _ int) bool { return s.TotalItemsConsumed >= 1 },
	},
	{
		ID: "streak_3", Title: "Getting Consistent", Description: "3-day learning streak",
		Icon: "🔥", Rarity: models.RarityCommon,
		Unlocked: func(s *models.StreakState, _ int) bool { return s.CurrentStreak >= 3 },
	},
	{
		ID: "streak_7", Title: "Week Warrior", Description: "7-day learning streak",
		Icon: "⚡", Rarity: models.RarityRare,
		Unlocked: func(s *models.StreakState, _ int) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID: "streak_30", Title: "Learning Legend", Description: "30-day learning streak",
		Icon: "👑", Rarity: models.RarityLegendary,
		Unlocked: func(s *models.StreakState, _ int) bool { return s.CurrentStreak >= 30 },
	},
	{
		ID: "bookworm", Title: "Bookworm", Description: "Consumed 50 learning items",
		Icon: "📚", Rarity: models.RarityRare,
		Unlocked: func(s *models.StreakState, _ int) bool { return s.TotalItemsConsumed >= 50 },
	},
	{
		ID: "curator", Title: "Content Curator", Description: "Bookmarked 20 items",
		Icon: "⭐", Rarity: models.RarityRare,
		Unlocked: func(_ *models.StreakState, bookmarks int) bool { return bookmarks >= 20 },
	},
	{
		ID: "weekly_goal", Title: "Goal Crusher", Description: "Completed weekly learning goal",
		Icon: "🎯", Rarity: models.RarityCommon,
		Unlocked: func(s *models.StreakState, _ int) bool { return s.WeeklyProgress >= s.WeeklyGoal },
	},
}
