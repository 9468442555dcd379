// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package main

import (
	"context"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the reading streak and achievements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, runStreak)
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(ctx context.Context, a *app) error {
	st, err := a.svc.Streak(ctx)
	if err != nil {
		return err
	}
	return a.render(st, func(w *tabwriter.Writer) {
		last := "never"
		if st.LastActivityDate != nil {
			last = *st.LastActivityDate
		}
		row(w, "Current streak:\t%d %s", st.CurrentStreak, st.Badge)
		row(w, "Longest streak:\t%d", st.LongestStreak)
		row(w, "Items consumed:\t%d", st.TotalItemsConsumed)
		row(w, "Weekly goal:\t%d/%d", st.WeeklyProgress, st.WeeklyGoal)
		row(w, "Last activity:\t%s", last)
		if len(st.Achievements) == 0 {
			return
		}
		row(w, "")
		row(w, "ACHIEVEMENT\tRARITY\tUNLOCKED")
		for _, ach := range st.Achievements {
			row(w, "%s %s\t%s\t%s", ach.Icon, ach.Title, ach.Rarity, ach.UnlockedAt.Format("2006-01-02"))
		}
	})
}
