// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/learnqueue/internal/export"
)

var (
	exportScope  string
	exportFormat string
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export items as CSV or HTML",
	Long: `Fetch the item list, apply local consumed and bookmark state, and write the
items in scope.

Examples:
  lqctl export --scope all > queue.csv
  lqctl export --scope bookmarked --format html --file reading-list.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		scope, err := export.ParseScope(exportScope)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if exportFile == "" {
				return runExport(ctx, a, a.out, scope, exportFormat, time.Now())
			}
			f, err := os.Create(exportFile)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportFile, err)
			}
			if err := runExport(ctx, a, f, scope, exportFormat, time.Now()); err != nil {
				_ = f.Close() //nolint:errcheck // already failing
				return err
			}
			return f.Close()
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportScope, "scope", string(export.ScopeBookmarked), "all, bookmarked or consumed")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv or html")
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context, a *app, w io.Writer, scope export.Scope, format string, now time.Time) error {
	items, err := a.svc.ExportItems(ctx, scope)
	if err != nil {
		return err
	}
	switch format {
	case "csv":
		return export.WriteCSV(w, items)
	case "html":
		return export.WriteHTML(w, scope, items, now)
	default:
		return fmt.Errorf("unknown export format %q (want csv or html)", format)
	}
}
