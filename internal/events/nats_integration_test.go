// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

//go:build integration && nats

package events

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/config"
	"github.com/tomtom215/learnqueue/internal/testinfra"
)

func TestBus_NATSRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	url := testinfra.StartNATS(t, ctx)

	bus, err := NewBus(config.EventsConfig{
		Transport: TransportNATS,
		Topic:     "learnqueue-engagement",
		NATSURL:   url,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	defer bus.Close()

	sink := newSink()
	startProcessor(t, bus, sink)

	if err := bus.Publish(ctx, New(TypeAchievementUnlocked, "", map[string]any{"id": "first_read"})); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	got := sink.wait(t, 1)
	if got[0].Type != TypeAchievementUnlocked || got[0].Payload["id"] != "first_read" {
		t.Errorf("event = %+v", got[0])
	}
}
