// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package supervisor runs the long-lived parts of the server under suture v4.

# Overview

	learnqueue
	├── source-layer
	│   └── RefreshService (if upstream.refresh_interval > 0)
	├── messaging-layer
	│   ├── events.Processor
	│   └── websocket.Hub
	└── api-layer
	    └── HTTPServerService

A service that returns an error is restarted with suture's backoff. A layer
that keeps failing backs off on its own without stopping the HTTP server, so
the API keeps answering from the preference store and the item cache while
the event pipeline recovers.

# Usage

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(hub)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err := tree.Serve(ctx)

Supervisor events (restarts, backoff, panics) are logged through sutureslog.
*/
package supervisor
