// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package main

import (
	"context"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/learnqueue/internal/filter"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Inspect saved views",
}

var viewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views, most recently used first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, runViewsList)
	},
}

func init() {
	viewsCmd.AddCommand(viewsListCmd)
	rootCmd.AddCommand(viewsCmd)
}

func runViewsList(ctx context.Context, a *app) error {
	list, err := a.svc.ListViews(ctx)
	if err != nil {
		return err
	}
	return a.render(list, func(w *tabwriter.Writer) {
		if len(list) == 0 {
			row(w, "No saved views")
			return
		}
		row(w, "ID\tNAME\tLAST USED\tFILTERS")
		for i := range list {
			v := &list[i]
			row(w, "%s\t%s\t%s\t%s", v.ID, v.Name, v.LastUsed.Format("2006-01-02 15:04"), filter.Summary(v.Filters))
		}
	})
}
