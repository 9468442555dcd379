// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package models

import "time"

// ConsumedEntry records one locally marked consumption.
type ConsumedEntry struct {
	ItemID     string    `json:"itemId"`
	ConsumedAt time.Time `json:"consumedAt"`
}

// ConsumedLog is the local consumption overlay.
//
// Entries holds items the user marked consumed, in marking order. Cleared
// holds items the user un-marked although the item source reports them
// consumed; the overlay shows those as not consumed.
type ConsumedLog struct {
	Entries []ConsumedEntry `json:"entries"`
	Cleared []string        `json:"cleared,omitempty"`
}

// IDs returns the consumed item ids in marking order.
func (l *ConsumedLog) IDs() []string {
	ids := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		ids = append(ids, e.ItemID)
	}
	return ids
}

// Contains reports whether id is in the log.
func (l *ConsumedLog) Contains(id string) bool {
	for _, e := range l.Entries {
		if e.ItemID == id {
			return true
		}
	}
	return false
}

// IsCleared reports whether id was explicitly un-marked.
func (l *ConsumedLog) IsCleared(id string) bool {
	for _, c := range l.Cleared {
		if c == id {
			return true
		}
	}
	return false
}

// Mark records id as consumed at at, or removes it when consumed is false.
// Marking an already-consumed id keeps its original timestamp.
func (l *ConsumedLog) Mark(id string, consumed bool, at time.Time) {
	l.Cleared = removeString(l.Cleared, id)
	if consumed {
		if !l.Contains(id) {
			l.Entries = append(l.Entries, ConsumedEntry{ItemID: id, ConsumedAt: at})
		}
		return
	}
	kept := l.Entries[:0]
	for _, e := range l.Entries {
		if e.ItemID != id {
			kept = append(kept, e)
		}
	}
	l.Entries = kept
	l.Cleared = append(l.Cleared, id)
}

// CountSince returns how many entries were consumed at or after since.
func (l *ConsumedLog) CountSince(since time.Time) int {
	n := 0
	for _, e := range l.Entries {
		if !e.ConsumedAt.Before(since) {
			n++
		}
	}
	return n
}

// Overlay returns a copy of items with Consumed adjusted by the log.
// The source slice is not modified.
func (l *ConsumedLog) Overlay(items []Item) []Item {
	out := make([]Item, len(items))
	for i := range items {
		out[i] = items[i]
		switch {
		case l.IsCleared(items[i].ID):
			out[i].Consumed = false
		case l.Contains(items[i].ID):
			out[i].Consumed = true
		}
	}
	return out
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
