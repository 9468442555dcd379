// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package export

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/learnqueue/internal/models"
)

// MaxSharePayload bounds the encoded payload accepted by DecodeShare.
const MaxSharePayload = 256 * 1024

// ErrInvalidShare is returned for payloads that are not a share document.
var ErrInvalidShare = errors.New("invalid share payload")

// SharedItem is the subset of an item embedded in a share link.
type SharedItem struct {
	Title      string   `json:"title"`
	SourceType string   `json:"sourceType"`
	Summary    string   `json:"summary"`
	Tags       []string `json:"tags"`
	Score      *float64 `json:"score"`
	Link       *string  `json:"link"`
}

// Share is the document carried by a share link.
type Share struct {
	Type        Scope        `json:"type"`
	Items       []SharedItem `json:"items"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// NewShare builds a share document for items.
func NewShare(scope Scope, items []models.Item, at time.Time) Share {
	s := Share{Type: scope, Items: make([]SharedItem, 0, len(items)), GeneratedAt: at.UTC()}
	for i := range items {
		tags := items[i].Tags
		if tags == nil {
			tags = []string{}
		}
		s.Items = append(s.Items, SharedItem{
			Title:      items[i].Title,
			SourceType: items[i].SourceType,
			Summary:    items[i].Summary,
			Tags:       tags,
			Score:      items[i].Score,
			Link:       items[i].Link,
		})
	}
	return s
}

// EncodeShare returns the URL-safe base64 JSON payload.
func EncodeShare(s Share) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal share: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShare parses a payload produced by EncodeShare. Standard base64 with
// padding, as produced by the browser's btoa, is accepted too.
func DecodeShare(payload string) (Share, error) {
	if payload == "" || len(payload) > MaxSharePayload {
		return Share{}, ErrInvalidShare
	}

	var data []byte
	var err error
	if strings.ContainsAny(payload, "+/=") {
		data, err = base64.StdEncoding.DecodeString(payload)
	} else {
		data, err = base64.RawURLEncoding.DecodeString(payload)
	}
	if err != nil {
		return Share{}, fmt.Errorf("%w: %v", ErrInvalidShare, err)
	}

	var s Share
	if err := json.Unmarshal(data, &s); err != nil {
		return Share{}, fmt.Errorf("%w: %v", ErrInvalidShare, err)
	}
	if s.Items == nil {
		return Share{}, fmt.Errorf("%w: missing items", ErrInvalidShare)
	}
	return s, nil
}

// ShareURL joins base and the payload. An empty base yields a relative link.
func ShareURL(base, payload string) string {
	return strings.TrimRight(base, "/") + "/shared/" + payload
}

// SocialLinks returns prefilled share intents for the usual networks.
func SocialLinks(shareURL string, scope Scope, count int) map[string]string {
	text := "Check out my curated AI learning collection from AI Daily Learning Queue! " +
		strconv.Itoa(count) + " " + string(scope) + " items."
	return map[string]string{
		"twitter":  "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) + "&url=" + url.QueryEscape(shareURL),
		"linkedin": "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(shareURL),
		"email": "mailto:?subject=" + url.PathEscape("AI Learning Collection") +
			"&body=" + url.PathEscape(text+"\n\n"+shareURL),
	}
}
