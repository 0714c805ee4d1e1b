package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/logger"
)

func newTestDeps(t *testing.T) (deps.Deps, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("failed to close client: %v", err)
		}
	})

	d := deps.Deps{
		Logger:      logger.NewNop(),
		StartTime:   time.Now(),
		Version:     "test",
		TimeNow:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		RedisClient: client,
	}
	return d, mr
}

// newTestRouter wires the handlers under the same paths the route registrars
// use, so URL parameters resolve the same way as in production.
func newTestRouter(d deps.Deps) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/auth/login", Login(d))
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", ListBookmarks(d))
		r.Post("/", CreateBookmark(d))
		r.Delete("/{id}", DeleteBookmark(d))
	})
	r.Get("/api/history", ListHistory(d))
	r.Post("/api/history", AddHistory(d))
	r.Delete("/api/history", ClearHistory(d))
	r.Get("/api/preferences", GetPreferences(d))
	r.Put("/api/preferences", UpdatePreferences(d))
	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", ListSessions(d))
		r.Post("/", CreateSession(d))
		r.Delete("/{id}", DeleteSession(d))
	})
	r.Get("/healthz", Healthz(d))
	r.Get("/readyz", Readyz(d))
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func wantDetail(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, status, rec.Body.String())
	}
	var resp detailResponse
	decodeBody(t, rec, &resp)
	if resp.Detail != detail {
		t.Errorf("detail = %q, want %q", resp.Detail, detail)
	}
}
