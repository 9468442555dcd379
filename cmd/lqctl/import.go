// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import-local <file>",
	Short: "Import a browser localStorage dump",
	Long: `Import bookmarks, consumed items, streaks, preferences, saved views, dark mode
and notes exported from the browser dashboard.

The file is a JSON object of localStorage keys. Values may be the raw strings
the browser stored or already-decoded JSON. Export one from the browser
console with:

  copy(JSON.stringify(Object.fromEntries(Object.entries(localStorage))))`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readLocalDump(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runImport(ctx, a, raw)
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// readLocalDump reads the dump file. String values are taken verbatim; any
// other JSON value is kept as its encoded text.
func readLocalDump(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an explicit CLI argument
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseLocalDump(data)
}

func parseLocalDump(data []byte) (map[string]string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("dump must be a JSON object: %w", err)
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		out[k] = string(v)
	}
	return out, nil
}

func runImport(ctx context.Context, a *app, raw map[string]string) error {
	res, err := a.svc.ImportLocal(ctx, raw)
	if err != nil {
		return err
	}
	return a.render(res, func(w *tabwriter.Writer) {
		row(w, "KEY\tRESULT")
		for _, k := range res.Imported {
			row(w, "%s\timported", k)
		}
		skipped := make([]string, 0, len(res.Skipped))
		for k := range res.Skipped {
			skipped = append(skipped, k)
		}
		sort.Strings(skipped)
		for _, k := range skipped {
			row(w, "%s\tskipped: %s", k, res.Skipped[k])
		}
	})
}
