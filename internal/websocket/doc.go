// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package websocket pushes live updates to open dashboard tabs.

The hub implements events.Broadcaster, so the event processor forwards every
engagement event (bookmark, consumed, note, achievement, view) to each
connected client. A second tab therefore sees changes made in the first
without polling.

Key Components:

  - Hub: owns the client set and fans messages out; a suture service
  - Client: one connection with a read pump and a write pump
  - Message: {type, data} envelope

Message Types:

  - engagement: an events.Event
  - items_refreshed: the background refresh re-warmed the item cache
  - ping / pong: application-level keepalive initiated by the client

Slow clients whose 256-message buffer fills are disconnected rather than
blocking the hub.
*/
package websocket
