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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/learnqueue/internal/config"
	"github.com/tomtom215/learnqueue/internal/dashboard"
	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/prefstore"
	"github.com/tomtom215/learnqueue/internal/recommend"
	"github.com/tomtom215/learnqueue/internal/streak"
	"github.com/tomtom215/learnqueue/internal/upstream"
)

var (
	output  string
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lqctl",
	Short: "Learnqueue command line tool",
	Long: `lqctl works on the same preference store as the Learnqueue server.

Commands:
  export        Write bookmarked, consumed or all items as CSV or HTML
  streak        Show the reading streak and achievements
  views list    List saved views
  import-local  Import a browser localStorage dump

The badger backend holds an exclusive lock; stop the server first or point
lqctl at a copy of the data directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if path := strings.TrimSpace(cfgFile); path != "" {
			_ = os.Setenv(config.ConfigPathEnvVar, path) //nolint:errcheck // only fails on invalid names
		}
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Init(logging.Config{Level: level, Format: "console", Timestamp: true, Output: os.Stderr})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (json, table, yaml)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./config.yaml or /etc/learnqueue/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is what every subcommand runs against.
type app struct {
	svc    *dashboard.Service
	out    io.Writer
	format string
	close  func() error
}

// openApp loads configuration and opens the store and item source the same
// way the server does.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.Logger()

	store, err := prefstore.Open(cfg.Store.Backend, cfg.Store.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	src, err := upstream.New(cfg.Upstream, logger)
	if err != nil {
		_ = store.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("create item source: %w", err)
	}

	a, err := newApp(store, src, cfg, logger)
	if err != nil {
		_ = store.Close() //nolint:errcheck // already failing
		return nil, err
	}
	a.out = cmd.OutOrStdout()
	return a, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newApp(store prefstore.Store, src upstream.Source, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	rc := recommend.DefaultConfig()
	rc.Learning.Policy = recommend.Policy(cfg.Recommend.PreferencePolicy)
	engine, err := recommend.NewEngine(rc, logger)
	if err != nil {
		return nil, err
	}
	tracker, err := streak.NewTracker(streak.Config{
		Location: cfg.Streak.Location(),
		Window:   streak.Window(cfg.Streak.WeeklyWindow),
	})
	if err != nil {
		return nil, err
	}
	svc, err := dashboard.New(dashboard.Options{
		Store:       store,
		Source:      src,
		Recommender: engine,
		Tracker:     tracker,
		WeeklyGoal:  cfg.Streak.WeeklyGoal,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	return &app{svc: svc, out: os.Stdout, format: output, close: store.Close}, nil
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("closing preference store")
		}
	}()
	return fn(cmd.Context(), a)
}
