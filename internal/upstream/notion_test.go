// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const notionPageFixture = `{
  "id": "page-1",
  "properties": {
    "Title": {"type": "title", "title": [{"plain_text": "Attention "}, {"plain_text": "Is All You Need"}]},
    "Source Type": {"type": "select", "select": {"name": "Paper"}},
    "Summary": {"type": "rich_text", "rich_text": [{"plain_text": "Transformers."}]},
    "Why It Matters": {"type": "rich_text", "rich_text": []},
    "Score": {"type": "number", "number": 9.5},
    "Estimated Time": {"type": "number", "number": null},
    "Tags": {"type": "multi_select", "multi_select": [{"name": "ai"}, {"name": "nlp"}]},
    "Consumed": {"type": "checkbox", "checkbox": true},
    "Date Added": {"type": "date", "date": {"start": "2024-03-01"}},
    "Publication Date": {"type": "date", "date": null},
    "Link": {"type": "url", "url": "https://arxiv.org/abs/1706.03762"}
  }
}`

func newNotion(url string, opts NotionOptions) *NotionSource {
	opts.BaseURL = url
	if opts.APIKey == "" {
		opts.APIKey = "secret"
	}
	if opts.DatabaseID == "" {
		opts.DatabaseID = "db-1"
	}
	return NewNotionSource(opts, http.DefaultClient, nil, zerolog.Nop())
}

func TestNotionSource_FetchMapsProperties(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/databases/db-1/query" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != "2022-06-28" {
			t.Errorf("Notion-Version = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"page_size":10}` {
			t.Errorf("body = %s", body)
		}
		_, _ = io.WriteString(w, `{"results": [`+notionPageFixture+`, {"id": "page-2", "properties": {}}], "has_more": false, "next_cursor": null}`)
	}))
	defer srv.Close()

	items, err := newNotion(srv.URL, NotionOptions{}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	it := items[0]
	if it.ID != "page-1" || it.Title != "Attention Is All You Need" || it.SourceType != "Paper" {
		t.Errorf("item = %+v", it)
	}
	if it.Summary != "Transformers." || it.WhyItMatters != "" {
		t.Errorf("text fields = %q / %q", it.Summary, it.WhyItMatters)
	}
	if it.Score == nil || *it.Score != 9.5 || it.EstimatedTime != nil {
		t.Errorf("numbers = %v / %v", it.Score, it.EstimatedTime)
	}
	if len(it.Tags) != 2 || it.Tags[1] != "nlp" || !it.Consumed {
		t.Errorf("tags/consumed = %v / %v", it.Tags, it.Consumed)
	}
	if it.DateAdded == nil || *it.DateAdded != "2024-03-01" || it.PublicationDate != nil {
		t.Errorf("dates = %v / %v", it.DateAdded, it.PublicationDate)
	}
	if it.Link == nil || *it.Link != "https://arxiv.org/abs/1706.03762" {
		t.Errorf("link = %v", it.Link)
	}

	empty := items[1]
	if empty.Title != "Untitled" || empty.SourceType != "Unknown" || empty.Tags == nil || len(empty.Tags) != 0 {
		t.Errorf("defaults = %+v", empty)
	}
	if empty.Score != nil || empty.Link != nil || empty.DateAdded != nil || empty.Consumed {
		t.Errorf("absent fields = %+v", empty)
	}
}

func TestNotionSource_Pagination(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q notionQuery
		_ = json.NewDecoder(r.Body).Decode(&q)
		n := calls.Add(1)
		switch q.StartCursor {
		case "":
			_, _ = io.WriteString(w, `{"results":[{"id":"a","properties":{}}],"has_more":true,"next_cursor":"c2"}`)
		case "c2":
			_, _ = io.WriteString(w, `{"results":[{"id":"b","properties":{}}],"has_more":true,"next_cursor":"c3"}`)
		default:
			t.Errorf("call %d: unexpected cursor %q", n, q.StartCursor)
			_, _ = io.WriteString(w, `{"results":[],"has_more":false}`)
		}
	}))
	defer srv.Close()

	items, err := newNotion(srv.URL, NotionOptions{MaxPages: 2, PageSize: 1}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("items = %+v", items)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (bounded by MaxPages)", calls.Load())
	}
}

func TestNotionSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind string
		wantMsg  string
	}{
		{"api error", http.StatusUnauthorized, `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`, ErrKindStatus, "Notion API error: API token is invalid."},
		{"opaque status", http.StatusBadGateway, `<html>bad gateway</html>`, ErrKindStatus, "Item source returned HTTP 502"},
		{"malformed body", http.StatusOK, `{"results": 12}`, ErrKindDecode, "Malformed response from Notion"},
		{"missing results", http.StatusOK, `{"object":"list"}`, ErrKindDecode, "Malformed response from Notion: missing results"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newNotion(srv.URL, NotionOptions{}).Fetch(context.Background())
			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FetchError", err)
			}
			if fe.Kind != tt.wantKind || fe.Message != tt.wantMsg {
				t.Errorf("FetchError = {%s %q}, want {%s %q}", fe.Kind, fe.Message, tt.wantKind, tt.wantMsg)
			}
		})
	}
}

func TestNotionSource_MissingCredentials(t *testing.T) {
	t.Parallel()

	src := NewNotionSource(NotionOptions{BaseURL: "http://unused"}, http.DefaultClient, nil, zerolog.Nop())
	_, err := src.Fetch(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != ErrKindConfig {
		t.Fatalf("err = %v, want config FetchError", err)
	}
	if !strings.Contains(fe.Message, "not configured") {
		t.Errorf("message = %q", fe.Message)
	}
}
