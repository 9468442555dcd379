// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package events

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Type names an engagement event.
type Type string

// Engagement event types.
const (
	TypeBookmarkToggled     Type = "bookmark.toggled"
	TypeConsumedToggled     Type = "consumed.toggled"
	TypeNoteSaved           Type = "note.saved"
	TypeAchievementUnlocked Type = "achievement.unlocked"
	TypeViewApplied         Type = "view.applied"
)

// metadataType is the message metadata key holding the event type.
const metadataType = "type"

// Event is a single engagement change.
type Event struct {
	ID      string         `json:"id"`
	Type    Type           `json:"type"`
	ItemID  string         `json:"itemId,omitempty"`
	At      time.Time      `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

// New creates an event with a time-ordered id.
func New(typ Type, itemID string, payload map[string]any) Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Event{
		ID:      id.String(),
		Type:    typ,
		ItemID:  itemID,
		At:      time.Now().UTC(),
		Payload: payload,
	}
}

// toMessage serializes ev into a watermill message keyed by the event id.
func toMessage(ev Event) (*message.Message, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(ev.ID, data)
	msg.Metadata.Set(metadataType, string(ev.Type))
	return msg, nil
}

// Decode parses a message payload back into an Event.
func Decode(msg *message.Message) (Event, error) {
	var ev Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event %s: %w", msg.UUID, err)
	}
	if ev.Type == "" {
		return Event{}, fmt.Errorf("decode event %s: missing type", msg.UUID)
	}
	return ev, nil
}
