// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/learnqueue/docs" // Import generated swagger docs
	"github.com/tomtom215/learnqueue/internal/api"
	"github.com/tomtom215/learnqueue/internal/config"
	"github.com/tomtom215/learnqueue/internal/dashboard"
	"github.com/tomtom215/learnqueue/internal/events"
	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/prefstore"
	"github.com/tomtom215/learnqueue/internal/recommend"
	"github.com/tomtom215/learnqueue/internal/streak"
	"github.com/tomtom215/learnqueue/internal/supervisor"
	"github.com/tomtom215/learnqueue/internal/supervisor/services"
	"github.com/tomtom215/learnqueue/internal/upstream"
	"github.com/tomtom215/learnqueue/internal/views"
	ws "github.com/tomtom215/learnqueue/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("upstream", cfg.Upstream.Kind).
		Str("store", cfg.Store.Backend).
		Str("events", cfg.Events.Transport).
		Msg("Starting Learnqueue with supervisor tree")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential setup steps
func run(cfg *config.Config) error {
	logger := logging.Logger()

	store, err := prefstore.Open(cfg.Store.Backend, cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing preference store")
		}
	}()
	logging.Info().Str("backend", store.Backend()).Str("path", cfg.Store.Path).Msg("Preference store opened")

	src, err := upstream.New(cfg.Upstream, logger)
	if err != nil {
		return fmt.Errorf("create item source: %w", err)
	}
	cached := upstream.NewCachedSource(src, cfg.Upstream.CacheTTL, logger)

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}
	tracker, err := streak.NewTracker(buildTrackerConfig(cfg, time.Now))
	if err != nil {
		return fmt.Errorf("create streak tracker: %w", err)
	}

	bus, err := events.NewBus(cfg.Events, logger)
	if err != nil {
		return fmt.Errorf("create event bus: %w", err)
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	hub := ws.NewHub()
	processor := events.NewProcessor(bus, hub, logger)

	svc, err := dashboard.New(dashboard.Options{
		Store:       store,
		Source:      cached,
		Recommender: engine,
		Tracker:     tracker,
		Views:       views.NewManager(),
		Publisher:   bus,
		WeeklyGoal:  cfg.Streak.WeeklyGoal,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("create dashboard service: %w", err)
	}

	handler, err := api.NewHandler(api.HandlerOptions{
		Service:      svc,
		Hub:          hub,
		Upgrader:     ws.Upgrader(cfg.Security.CORSOrigins),
		Status:       cached,
		StoreBackend: store.Backend(),
		SourceName:   cached.Name(),
		PublicURL:    cfg.Server.PublicURL,
		Version:      version,
	})
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(buildMiddlewareConfig(cfg)))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if cfg.Upstream.RefreshInterval > 0 {
		tree.AddSourceService(services.NewRefreshService(cached, hub, services.RefreshServiceConfig{
			Interval:      cfg.Upstream.RefreshInterval,
			WarmOnStartup: true,
		}, logger))
	}
	tree.AddMessagingService(processor)
	tree.AddMessagingService(hub)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", srv.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		treeErr = <-errCh
	case treeErr = <-errCh:
		cancel()
	}
	if errors.Is(treeErr, context.Canceled) {
		treeErr = nil
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 { //nolint:errcheck // report is best effort
		for _, u := range unstopped {
			logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
		}
	}
	return treeErr
}
