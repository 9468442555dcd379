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
	"testing"

	"github.com/rs/zerolog"
)

func TestJSONSource_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantCount int
		wantErr   bool
	}{
		{"bare array", `[{"id":"a","title":"A","tags":["x"]},{"id":"b","title":"B"}]`, 2, false},
		{"wrapped", `{"items":[{"id":"a","title":"A"}]}`, 1, false},
		{"object without items", `{"data":[{"id":"a"}]}`, 0, false},
		{"scalar", `42`, 0, false},
		{"empty", ``, 0, false},
		{"broken", `[{"id":`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			items, err := NewJSONSource(srv.URL, "", http.DefaultClient, nil, zerolog.Nop()).Fetch(context.Background())
			if tt.wantErr {
				var fe *FetchError
				if !errors.As(err, &fe) || fe.Kind != ErrKindDecode {
					t.Fatalf("err = %v, want decode FetchError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if len(items) != tt.wantCount {
				t.Errorf("len(items) = %d, want %d", len(items), tt.wantCount)
			}
			for _, it := range items {
				if it.Tags == nil {
					t.Errorf("item %s has nil tags", it.ID)
				}
			}
		})
	}
}

func TestJSONSource_SendsToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	if _, err := NewJSONSource(srv.URL, "tok", http.DefaultClient, nil, zerolog.Nop()).Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}

func TestJSONSource_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewJSONSource(srv.URL, "", http.DefaultClient, nil, zerolog.Nop()).Fetch(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusInternalServerError {
		t.Fatalf("err = %v, want HTTP 500 FetchError", err)
	}
}
