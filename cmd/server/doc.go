// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package main is the entry point for the Learnqueue server.

Learnqueue reads a personal learning queue from a Notion database (or a JSON
feed) and serves it with local engagement state: bookmarks, consumed flags,
notes, saved views, streaks, learned preferences and recommendations.

# Application Architecture

	learnqueue
	├── source-layer
	│   └── item refresh (when UPSTREAM_REFRESH_INTERVAL > 0)
	├── messaging-layer
	│   ├── event processor (memory or NATS JetStream, -tags nats)
	│   └── WebSocket hub
	└── api-layer
	    └── HTTP server

Component initialization order:

 1. Configuration: koanf v2 with defaults, YAML file and environment
 2. Logging: zerolog with JSON or console output
 3. Preference store: BadgerDB, SQLite or memory
 4. Item source: Notion or JSON feed, behind a circuit breaker and a TTL cache
 5. Recommendation engine and streak tracker
 6. Event bus, processor and WebSocket hub
 7. Dashboard service and chi router
 8. Supervisor tree

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=3000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	UPSTREAM_KIND=notion         # notion or json
	NOTION_API_KEY=secret_...
	NOTION_DATABASE_ID=...
	UPSTREAM_CACHE_TTL=5m
	UPSTREAM_REFRESH_INTERVAL=0  # background refresh; 0 disables

	STORE_BACKEND=badger         # badger, sqlite or memory
	STORE_PATH=/data/learnqueue

	RECOMMEND_PREFERENCE_POLICY=once   # once or continuous
	STREAK_TIMEZONE=Europe/Berlin

A YAML file is read from CONFIG_PATH, ./config.yaml or /etc/learnqueue/config.yaml.

# Endpoints

The REST API lives under /api/v1; /metrics serves Prometheus and /swagger/
serves the OpenAPI UI. See the api package for the route table.

# Shutdown

SIGINT and SIGTERM cancel the root context. The HTTP server drains within
SHUTDOWN_TIMEOUT, the event bus and preference store are closed last.
*/
package main
