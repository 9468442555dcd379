// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package websocket

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/tomtom215/learnqueue/internal/events"
	"github.com/tomtom215/learnqueue/internal/logging"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

func testClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestHub_BroadcastEvent(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	a, b := testClient(hub, 4), testClient(hub, 4)
	hub.Register <- a
	hub.Register <- b
	waitForClients(t, hub, 2)

	ev := events.New(events.TypeBookmarkToggled, "item-1", map[string]any{"bookmarked": true})
	hub.BroadcastEvent(ev)

	for _, c := range []*Client{a, b} {
		msg := receive(t, c)
		if msg.Type != MessageTypeEngagement {
			t.Errorf("type = %q", msg.Type)
		}
		got, ok := msg.Data.(events.Event)
		if !ok || got.ID != ev.ID {
			t.Errorf("data = %#v", msg.Data)
		}
	}
}

func TestHub_Unregister(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	c := testClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.Unregister <- c
	waitForClients(t, hub, 0)
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	slow := testClient(hub, 1)
	hub.Register <- slow
	waitForClients(t, hub, 1)

	hub.BroadcastJSON("first", nil)
	hub.BroadcastJSON("second", nil)
	waitForClients(t, hub, 0)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx) }()

	c := testClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve = %v, want context.Canceled", err)
	}
	if hub.GetClientCount() != 0 {
		t.Error("clients not closed on shutdown")
	}
}

func TestHub_BroadcastItemsRefreshed(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	c := testClient(hub, 2)
	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.BroadcastItemsRefreshed(0, errors.New("upstream down"))
	msg := receive(t, c)
	data, ok := msg.Data.(ItemsRefreshedData)
	if msg.Type != MessageTypeItemsSync || !ok || data.Error != "upstream down" {
		t.Errorf("message = %+v", msg)
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	if getShutdownReason(ctx) != ShutdownReasonContextDeadline {
		t.Error("deadline not detected")
	}
}
