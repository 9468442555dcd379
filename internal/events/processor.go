// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/metrics"
)

// Broadcaster receives every processed event.
type Broadcaster interface {
	BroadcastEvent(ev Event)
}

// Processor consumes the bus and fans events out to a Broadcaster.
// It implements suture.Service.
type Processor struct {
	bus    *Bus
	sink   Broadcaster
	logger zerolog.Logger

	processed atomic.Int64
	dropped   atomic.Int64

	readyOnce sync.Once
	ready     chan struct{}
}

// NewProcessor creates a processor. sink may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProcessor(bus *Bus, sink Broadcaster, logger zerolog.Logger) *Processor {
	return &Processor{
		bus:    bus,
		sink:   sink,
		logger: logger.With().Str("component", "event-processor").Logger(),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the first subscription is established.
func (p *Processor) Ready() <-chan struct{} {
	return p.ready
}

// Serve subscribes and processes messages until ctx is canceled.
func (p *Processor) Serve(ctx context.Context) error {
	msgs, err := p.bus.Subscribe(ctx)
	if err != nil {
		return err
	}
	p.readyOnce.Do(func() { close(p.ready) })
	p.logger.Info().Str("topic", p.bus.Topic()).Msg("event processor started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errors.New("event subscription closed")
			}
			ev, err := Decode(msg)
			if err != nil {
				p.dropped.Add(1)
				p.logger.Warn().Err(err).Msg("dropping undecodable event")
				msg.Ack()
				continue
			}
			p.handle(ev)
			msg.Ack()
		}
	}
}

func (p *Processor) handle(ev Event) {
	metrics.RecordEngagementEvent(string(ev.Type))
	p.processed.Add(1)
	if p.sink != nil {
		p.sink.BroadcastEvent(ev)
	}
}

// Processed returns how many events were handled.
func (p *Processor) Processed() int64 { return p.processed.Load() }

// Dropped returns how many messages failed to decode.
func (p *Processor) Dropped() int64 { return p.dropped.Load() }

// String implements fmt.Stringer for suture logging.
func (p *Processor) String() string { return "event-processor" }
