// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package events carries engagement events (bookmark and consumed toggles, saved
notes, unlocked achievements, applied views) from the dashboard service to
interested consumers.

# Transports

The Bus is a thin wrapper over Watermill:

  - memory (default): an in-process gochannel pub/sub
  - nats: NATS JetStream via watermill-nats, compiled in with -tags=nats

# Processing

Processor is a suture service that subscribes to the topic, records the
learnqueue_engagement_events_total metric and forwards each event to a
Broadcaster (the websocket hub). Undecodable messages are acknowledged and
dropped.

Publishing is best effort from the caller's point of view: the dashboard logs
a failed publish and carries on.
*/
package events
