// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package api

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/learnqueue/internal/dashboard"
	"github.com/tomtom215/learnqueue/internal/export"
	"github.com/tomtom215/learnqueue/internal/models"
	"github.com/tomtom215/learnqueue/internal/prefstore"
	"github.com/tomtom215/learnqueue/internal/recommend"
	"github.com/tomtom215/learnqueue/internal/streak"
	"github.com/tomtom215/learnqueue/internal/upstream"
)

type stubSource struct {
	mu    sync.Mutex
	items []models.Item
	err   error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(context.Context) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Item(nil), s.items...), nil
}

func (s *stubSource) LastFetch() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Time{}, s.err
}

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func sampleItems() []models.Item {
	return []models.Item{
		{ID: "a", Title: "Attention", SourceType: "Paper", Summary: "transformers", Tags: []string{"ai"}, Score: models.Float(9), EstimatedTime: models.Float(5), DateAdded: models.String("2026-03-01"), Link: models.String("https://example.com/a")},
		{ID: "b", Title: "Borrow checker", SourceType: "Article", Tags: []string{"rust"}, Score: models.Float(6), EstimatedTime: models.Float(40)},
		{ID: "c", Title: "Chips", SourceType: "Video", Tags: []string{"ai", "hardware"}, Score: models.Float(8)},
	}
}

type testServer struct {
	src    *stubSource
	server http.Handler
}

func newTestServer(t *testing.T, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	src := &stubSource{items: sampleItems()}
	now := func() time.Time { return fixedNow }

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	tracker, err := streak.NewTracker(streak.Config{Location: time.UTC, Now: now})
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	svc, err := dashboard.New(dashboard.Options{
		Store:       prefstore.NewMemory(),
		Source:      src,
		Recommender: engine,
		Tracker:     tracker,
		Now:         now,
		Logger:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("dashboard.New: %v", err)
	}
	h, err := NewHandler(HandlerOptions{
		Service:      svc,
		Status:       src,
		StoreBackend: prefstore.BackendMemory,
		SourceName:   src.Name(),
		PublicURL:    "https://queue.example.com",
		Version:      "test",
		Now:          now,
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return &testServer{src: src, server: NewRouter(h, NewChiMiddleware(mw)).SetupChi()}
}

type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata models.Metadata `json:"metadata"`
	Error    *models.APIError
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, data interface{}) envelope {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, wantStatus, rec.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body %s", err, rec.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	var health models.HealthStatus
	env := decode(t, ts.do(t, http.MethodGet, "/api/v1/health", ""), http.StatusOK, &health)
	if env.Status != "success" || health.Status != "healthy" || health.Store != "memory" {
		t.Errorf("health = %+v", health)
	}

	ts.src.mu.Lock()
	ts.src.err = &upstream.FetchError{Kind: upstream.ErrKindStatus, Message: "Failed to fetch items (HTTP 500)"}
	ts.src.mu.Unlock()
	decode(t, ts.do(t, http.MethodGet, "/api/v1/health", ""), http.StatusOK, &health)
	if health.Status != "degraded" || health.LastFetchErr != "Failed to fetch items (HTTP 500)" {
		t.Errorf("degraded health = %+v", health)
	}
}

func TestItems_FilterAndSort(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"default score order", "", []string{"a", "c", "b"}},
		{"tag filter", "?tags=hardware,rust", []string{"c", "b"}},
		{"source type", "?sourceType=Paper", []string{"a"}},
		{"search", "?q=TRANSFORM", []string{"a"}},
		{"time order puts missing last", "?sortBy=estimatedTime", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []models.Item
			env := decode(t, ts.do(t, http.MethodGet, "/api/v1/items"+tt.query, ""), http.StatusOK, &items)
			got := make([]string, 0, len(items))
			for _, it := range items {
				got = append(got, it.ID)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
			if env.Metadata.Count != len(tt.want) {
				t.Errorf("count = %d", env.Metadata.Count)
			}
		})
	}
}

func TestItems_InvalidSort(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	env := decode(t, ts.do(t, http.MethodGet, "/api/v1/items?sortBy=random", ""), http.StatusBadRequest, nil)
	if env.Error == nil || env.Error.Code != CodeValidation {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestUpstreamFailure(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)
	ts.src.err = &upstream.FetchError{Source: "stub", Kind: upstream.ErrKindStatus, StatusCode: 503, Message: "Failed to fetch items (HTTP 503)"}

	env := decode(t, ts.do(t, http.MethodGet, "/api/v1/items", ""), http.StatusBadGateway, nil)
	if env.Error == nil || env.Error.Code != CodeUpstreamFetch || env.Error.Message != "Failed to fetch items (HTTP 503)" {
		t.Errorf("error = %+v", env.Error)
	}

	var snap dashboard.Snapshot
	decode(t, ts.do(t, http.MethodGet, "/api/v1/dashboard", ""), http.StatusOK, &snap)
	if snap.FetchError == "" || len(snap.Items) != 0 {
		t.Errorf("snapshot = %+v", snap)
	}

	// engagement endpoints keep working during the outage
	decode(t, ts.do(t, http.MethodPost, "/api/v1/bookmarks/a/toggle", ""), http.StatusOK, nil)
}

func TestBookmarksAndConsumed(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	var res dashboard.BookmarkResult
	decode(t, ts.do(t, http.MethodPost, "/api/v1/bookmarks/c/toggle", ""), http.StatusOK, &res)
	if !res.Bookmarked {
		t.Errorf("toggle = %+v", res)
	}

	decode(t, ts.do(t, http.MethodPut, "/api/v1/bookmarks", `{"bookmarks":["a","a","b"]}`), http.StatusOK, &res)
	var ids []string
	decode(t, ts.do(t, http.MethodGet, "/api/v1/bookmarks", ""), http.StatusOK, &ids)
	if strings.Join(ids, ",") != "a,b" {
		t.Errorf("bookmarks = %v", ids)
	}

	env := decode(t, ts.do(t, http.MethodPost, "/api/v1/items/a/consumed", `{}`), http.StatusBadRequest, nil)
	if env.Error.Code != CodeValidation {
		t.Errorf("missing consumed flag: %+v", env.Error)
	}

	var cons dashboard.ConsumedResult
	decode(t, ts.do(t, http.MethodPost, "/api/v1/items/a/consumed", `{"consumed":true}`), http.StatusOK, &cons)
	if cons.Streak.CurrentStreak != 1 || len(cons.Unlocked) == 0 {
		t.Errorf("consumed = %+v", cons)
	}

	var items []models.Item
	decode(t, ts.do(t, http.MethodGet, "/api/v1/items?hideConsumed=true&showBookmarked=true", ""), http.StatusOK, &items)
	if len(items) != 1 || items[0].ID != "b" {
		t.Errorf("items = %v, want [b]", items)
	}

	var st dashboard.StreakView
	decode(t, ts.do(t, http.MethodGet, "/api/v1/streak", ""), http.StatusOK, &st)
	if st.TotalItemsConsumed != 1 || st.Badge == "" {
		t.Errorf("streak = %+v", st)
	}
}

func TestNotes(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	var saved dashboard.NoteResult
	decode(t, ts.do(t, http.MethodPut, "/api/v1/items/b/note", `{"note":"ch. 4"}`), http.StatusOK, &saved)
	if !saved.AutoBookmarked {
		t.Error("note should bookmark the item")
	}

	var note noteResponse
	decode(t, ts.do(t, http.MethodGet, "/api/v1/items/b/note", ""), http.StatusOK, &note)
	if note.Note != "ch. 4" {
		t.Errorf("note = %+v", note)
	}

	if rec := ts.do(t, http.MethodDelete, "/api/v1/items/b/note", ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
	decode(t, ts.do(t, http.MethodGet, "/api/v1/items/b/note", ""), http.StatusOK, &note)
	if note.Note != "" {
		t.Errorf("note after delete = %q", note.Note)
	}

	decode(t, ts.do(t, http.MethodPut, "/api/v1/items/b/note", `not json`), http.StatusBadRequest, nil)
}

func TestPreferencesAndRecommendations(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	var prefs preferencesResponse
	decode(t, ts.do(t, http.MethodGet, "/api/v1/preferences", ""), http.StatusOK, &prefs)
	if prefs.Policy != recommend.PolicyOnce || prefs.PreferredTimeRange != models.TimeRangeMedium {
		t.Errorf("prefs = %+v", prefs)
	}

	decode(t, ts.do(t, http.MethodPost, "/api/v1/bookmarks/b/toggle", ""), http.StatusOK, nil)
	decode(t, ts.do(t, http.MethodPost, "/api/v1/preferences/recompute", ""), http.StatusOK, &prefs)
	if len(prefs.PreferredTags) != 1 || prefs.PreferredTags[0] != "rust" {
		t.Errorf("recomputed = %+v", prefs)
	}

	var recs []models.Recommendation
	decode(t, ts.do(t, http.MethodGet, "/api/v1/recommendations", ""), http.StatusOK, &recs)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	for _, r := range recs {
		if r.Item.ID == "b" {
			t.Error("bookmarked item recommended")
		}
	}

	var dm darkModeResponse
	decode(t, ts.do(t, http.MethodPut, "/api/v1/preferences/dark-mode", `{"darkMode":true}`), http.StatusOK, &dm)
	decode(t, ts.do(t, http.MethodGet, "/api/v1/preferences/dark-mode", ""), http.StatusOK, &dm)
	if !dm.DarkMode {
		t.Error("dark mode not persisted")
	}
}

func TestSavedViews(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	env := decode(t, ts.do(t, http.MethodPost, "/api/v1/views", `{"name":"  "}`), http.StatusBadRequest, nil)
	if env.Error.Code != CodeValidation {
		t.Errorf("blank name: %+v", env.Error)
	}
	decode(t, ts.do(t, http.MethodPost, "/api/v1/views", `{"name":"x","filters":{"sortBy":"bogus"}}`), http.StatusBadRequest, nil)

	var view models.SavedView
	decode(t, ts.do(t, http.MethodPost, "/api/v1/views", `{"name":"AI","filters":{"tags":["ai"],"sortBy":"dateAdded"}}`), http.StatusCreated, &view)
	if view.ID == "" || view.Filters.SortBy != models.SortByDateAdded {
		t.Errorf("view = %+v", view)
	}

	decode(t, ts.do(t, http.MethodPatch, "/api/v1/views/"+view.ID, `{"name":"AI papers"}`), http.StatusOK, &view)
	if view.Name != "AI papers" {
		t.Errorf("renamed = %+v", view)
	}

	var applied appliedView
	decode(t, ts.do(t, http.MethodPost, "/api/v1/views/"+view.ID+"/apply", ""), http.StatusOK, &applied)
	if !applied.Summary.Active || applied.Filters.Tags[0] != "ai" {
		t.Errorf("applied = %+v", applied)
	}

	var list []models.SavedView
	decode(t, ts.do(t, http.MethodGet, "/api/v1/views", ""), http.StatusOK, &list)
	if len(list) != 1 {
		t.Errorf("list = %v", list)
	}

	if rec := ts.do(t, http.MethodDelete, "/api/v1/views/"+view.ID, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
	env = decode(t, ts.do(t, http.MethodPost, "/api/v1/views/"+view.ID+"/apply", ""), http.StatusNotFound, nil)
	if env.Error.Code != CodeNotFound {
		t.Errorf("apply deleted: %+v", env.Error)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/export?scope=all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "ai-learning-queue-all-2026-03-10.csv") {
		t.Errorf("disposition = %q", cd)
	}
	lines := strings.Split(rec.Body.String(), "\n")
	if len(lines) != 4 || lines[0] != strings.Join(export.CSVHeader, ",") {
		t.Errorf("csv = %q", rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/api/v1/export?scope=all&format=html", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "AI Daily Learning Queue - All Items") {
		t.Errorf("html export: %d %s", rec.Code, rec.Body.String())
	}

	// default scope is bookmarked, which is empty
	rec = ts.do(t, http.MethodGet, "/api/v1/export", "")
	if rec.Code != http.StatusOK || strings.Count(rec.Body.String(), "\n") != 0 {
		t.Errorf("bookmarked export should be header only: %q", rec.Body.String())
	}

	decode(t, ts.do(t, http.MethodGet, "/api/v1/export?scope=everything", ""), http.StatusBadRequest, nil)
	decode(t, ts.do(t, http.MethodGet, "/api/v1/export?format=pdf", ""), http.StatusBadRequest, nil)
}

func TestShareRoundTrip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	var share shareResponse
	decode(t, ts.do(t, http.MethodPost, "/api/v1/export/share?scope=all", ""), http.StatusOK, &share)
	prefix := "https://queue.example.com/api/v1/shared/"
	if !strings.HasPrefix(share.URL, prefix) || share.Count != 3 {
		t.Fatalf("share = %+v", share)
	}
	if share.Links["twitter"] == "" {
		t.Error("social links missing")
	}

	var doc export.Share
	decode(t, ts.do(t, http.MethodGet, "/api/v1/shared/"+strings.TrimPrefix(share.URL, prefix), ""), http.StatusOK, &doc)
	if doc.Type != export.ScopeAll || len(doc.Items) != 3 || doc.Items[0].Title != "Attention" {
		t.Errorf("decoded = %+v", doc)
	}

	decode(t, ts.do(t, http.MethodGet, "/api/v1/shared/not-a-payload", ""), http.StatusBadRequest, nil)
}

// stdSharePayload returns a padded standard-alphabet payload containing '/',
// the form browser btoa links take.
func stdSharePayload(t *testing.T) string {
	t.Helper()
	for n := 0; n < 8; n++ {
		doc := export.Share{
			Type:  export.ScopeBookmarked,
			Items: []export.SharedItem{{Title: strings.Repeat("x", n) + "???", Tags: []string{}}},
		}
		data, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if enc := base64.StdEncoding.EncodeToString(data); strings.Contains(enc, "/") {
			return enc
		}
	}
	t.Fatal("no payload with '/' found")
	return ""
}

func TestShared_StandardBase64WithSlash(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)
	payload := stdSharePayload(t)

	tests := []struct {
		name string
		path string
	}{
		{"raw slash", "/api/v1/shared/" + payload},
		{"escaped slash", "/api/v1/shared/" + strings.ReplaceAll(payload, "/", "%2F")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var doc export.Share
			decode(t, ts.do(t, http.MethodGet, tt.path, ""), http.StatusOK, &doc)
			if doc.Type != export.ScopeBookmarked || len(doc.Items) != 1 || !strings.HasSuffix(doc.Items[0].Title, "???") {
				t.Errorf("decoded = %+v", doc)
			}
		})
	}
}

func TestEnvelope_CarriesRequestID(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"success", http.MethodGet, "/api/v1/health", http.StatusOK},
		{"validation error", http.MethodGet, "/api/v1/items?sortBy=bogus", http.StatusBadRequest},
		{"not found", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := ts.do(t, tt.method, tt.path, "")
			env := decode(t, rec, tt.status, nil)
			header := rec.Header().Get("X-Request-ID")
			if header == "" {
				t.Fatal("X-Request-ID header missing")
			}
			if env.Metadata.RequestID != header {
				t.Errorf("metadata.request_id = %q, want %q", env.Metadata.RequestID, header)
			}
		})
	}
}

func TestFilterSummaryAndFacets(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	var sum dashboard.FilterSummary
	decode(t, ts.do(t, http.MethodGet, "/api/v1/filters/summary", ""), http.StatusOK, &sum)
	if sum.Active || sum.Summary != "Sort: score" {
		t.Errorf("default summary = %+v", sum)
	}
	decode(t, ts.do(t, http.MethodGet, "/api/v1/filters/summary?sourceType=Paper&hideConsumed=1", ""), http.StatusOK, &sum)
	if !sum.Active || sum.Summary != "Source: Paper • Hide consumed • Sort: score" {
		t.Errorf("summary = %+v", sum)
	}

	var facets dashboard.Facets
	decode(t, ts.do(t, http.MethodGet, "/api/v1/facets", ""), http.StatusOK, &facets)
	if strings.Join(facets.SourceTypes, ",") != "Article,Paper,Video" {
		t.Errorf("facets = %+v", facets)
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t, nil)

	env := decode(t, ts.do(t, http.MethodGet, "/api/v1/nope", ""), http.StatusNotFound, nil)
	if env.Error == nil || env.Error.Code != CodeNotFound {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	ts := newTestServer(t, cfg)

	decode(t, ts.do(t, http.MethodGet, "/api/v1/streak", ""), http.StatusOK, nil)
	env := decode(t, ts.do(t, http.MethodGet, "/api/v1/streak", ""), http.StatusTooManyRequests, nil)
	if env.Error == nil || env.Error.Code != CodeRateLimited {
		t.Errorf("error = %+v", env.Error)
	}
}
