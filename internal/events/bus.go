// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/config"
	"github.com/tomtom215/learnqueue/internal/logging"
	"github.com/tomtom215/learnqueue/internal/metrics"
)

// Transport names accepted by NewBus.
const (
	TransportMemory = "memory"
	TransportNATS   = "nats"
)

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus is closed")

// Publisher is the publishing half of the bus, as seen by the dashboard.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Bus publishes and subscribes engagement events on a single topic.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	topic      string
	transport  string
	logger     zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus for the configured transport.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBus(cfg config.EventsConfig, logger zerolog.Logger) (*Bus, error) {
	log := logger.With().Str("component", "events").Str("transport", cfg.Transport).Logger()
	adapter := logging.NewWatermillAdapter(log)

	var (
		pub message.Publisher
		sub message.Subscriber
	)
	switch cfg.Transport {
	case TransportMemory, "":
		ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, adapter)
		pub, sub = ch, ch
	case TransportNATS:
		var err error
		pub, sub, err = newNATSPubSub(cfg, adapter)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown event transport %q", cfg.Transport)
	}

	return &Bus{
		publisher:  pub,
		subscriber: sub,
		topic:      cfg.Topic,
		transport:  cfg.Transport,
		logger:     log,
	}, nil
}

// Topic returns the topic events are published on.
func (b *Bus) Topic() string { return b.topic }

// Publish sends ev to the topic.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	msg, err := toMessage(ev)
	if err != nil {
		metrics.EventPublishErrors.WithLabelValues(string(ev.Type)).Inc()
		return err
	}
	msg.SetContext(ctx)

	if err := b.publisher.Publish(b.topic, msg); err != nil {
		metrics.EventPublishErrors.WithLabelValues(string(ev.Type)).Inc()
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	b.logger.Debug().Str("event_id", ev.ID).Str("type", string(ev.Type)).Msg("event published")
	return nil
}

// Subscribe returns the message stream for the topic. Each message must be
// acked or nacked before the next one is delivered.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrBusClosed
	}
	return b.subscriber.Subscribe(ctx, b.topic)
}

// Close shuts down the publisher and subscriber. Safe to call twice.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	if err := b.publisher.Close(); err != nil {
		errs = append(errs, err)
	}
	// gochannel is both halves.
	if any(b.subscriber) != any(b.publisher) {
		if err := b.subscriber.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
