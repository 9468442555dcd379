// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

//go:build !nats

package events

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/config"
)

func TestNewBus_NATSRequiresBuildTag(t *testing.T) {
	t.Parallel()

	_, err := NewBus(config.EventsConfig{Transport: TransportNATS, Topic: "t", NATSURL: "nats://localhost:4222"}, zerolog.Nop())
	if !errors.Is(err, ErrNATSUnavailable) {
		t.Errorf("err = %v, want ErrNATSUnavailable", err)
	}
}
