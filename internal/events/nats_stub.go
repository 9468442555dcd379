// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

//go:build !nats

package events

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/learnqueue/internal/config"
)

// ErrNATSUnavailable is returned when the nats transport is selected in a
// build without the nats tag.
var ErrNATSUnavailable = errors.New("NATS event transport not available: build with -tags=nats")

func newNATSPubSub(config.EventsConfig, watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	return nil, nil, ErrNATSUnavailable
}
