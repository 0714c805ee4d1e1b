package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/satchelapp/satchel/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("failed to close client: %v", err)
		}
	})
	return NewStore(client)
}

func TestSaveAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := s.SaveUser(ctx, &domain.User{Username: "alice", CreatedAt: created}); err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}

	user, err := s.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("GetUser() username = %q, want %q", user.Username, "alice")
	}
	if !user.CreatedAt.Equal(created) {
		t.Errorf("GetUser() created_at = %v, want %v", user.CreatedAt, created)
	}

	names, err := s.Usernames(ctx)
	if err != nil {
		t.Fatalf("Usernames() error = %v", err)
	}
	if len(names) != 1 || names[0] != "alice" {
		t.Errorf("Usernames() = %v, want [alice]", names)
	}
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetUser() error = %v, want ErrNotFound", err)
	}
}

func TestBookmarkLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	aliceFirst := &domain.Bookmark{ID: domain.NewID(), User: "alice", URL: "https://x.com", Title: "X", CreatedAt: now}
	aliceSecond := &domain.Bookmark{ID: domain.NewID(), User: "alice", URL: "https://go.dev", Title: "Go", CreatedAt: now}
	bobOnly := &domain.Bookmark{ID: domain.NewID(), User: "bob", URL: "https://y.com", Title: "Y", CreatedAt: now}

	for _, b := range []*domain.Bookmark{aliceFirst, aliceSecond, bobOnly} {
		if err := s.SaveBookmark(ctx, b); err != nil {
			t.Fatalf("SaveBookmark() error = %v", err)
		}
	}

	bookmarks, err := s.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(bookmarks) != 2 {
		t.Fatalf("ListBookmarks() returned %d bookmarks, want 2", len(bookmarks))
	}
	for _, b := range bookmarks {
		if b.User != "alice" {
			t.Errorf("ListBookmarks() returned bookmark owned by %q", b.User)
		}
	}

	// Deleting alice's bookmark as bob must report not-found.
	if err := s.DeleteBookmark(ctx, "bob", aliceFirst.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteBookmark(bob) error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteBookmark(ctx, "alice", aliceFirst.ID); err != nil {
		t.Fatalf("DeleteBookmark(alice) error = %v", err)
	}

	bookmarks, err = s.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].ID != aliceSecond.ID {
		t.Errorf("ListBookmarks() after delete = %v bookmarks, want only %s", len(bookmarks), aliceSecond.ID)
	}

	if err := s.DeleteBookmark(ctx, "alice", "missing-id"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteBookmark(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSaveBookmarksMany(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	batch := []*domain.Bookmark{
		{ID: "seed-1", User: "alice", URL: "https://a.example", Title: "A", CreatedAt: now},
		{ID: "seed-2", User: "alice", URL: "https://b.example", Title: "B", CreatedAt: now},
	}
	if err := s.SaveBookmarksMany(ctx, batch); err != nil {
		t.Fatalf("SaveBookmarksMany() error = %v", err)
	}

	bookmarks, err := s.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(bookmarks) != 2 {
		t.Errorf("ListBookmarks() returned %d bookmarks, want 2", len(bookmarks))
	}
}

func TestHistoryOrderingAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	urls := []string{"https://one.example", "https://two.example", "https://three.example"}
	for i, url := range urls {
		entry := &domain.HistoryEntry{
			ID:        domain.NewID(),
			User:      "alice",
			URL:       url,
			Title:     url,
			VisitTime: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.AddHistory(ctx, entry); err != nil {
			t.Fatalf("AddHistory() error = %v", err)
		}
	}

	entries, err := s.ListHistory(ctx, "alice", 100)
	if err != nil {
		t.Fatalf("ListHistory() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListHistory() returned %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].VisitTime.After(entries[i-1].VisitTime) {
			t.Errorf("ListHistory() not sorted descending at index %d", i)
		}
	}
	if entries[0].URL != "https://three.example" {
		t.Errorf("ListHistory() newest = %q, want three.example", entries[0].URL)
	}

	limited, err := s.ListHistory(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("ListHistory(limit=2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListHistory(limit=2) returned %d entries, want 2", len(limited))
	}

	if err := s.ClearHistory(ctx, "alice"); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	entries, err = s.ListHistory(ctx, "alice", 100)
	if err != nil {
		t.Fatalf("ListHistory() after clear error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ListHistory() after clear returned %d entries, want 0", len(entries))
	}

	// Clearing an empty log succeeds.
	if err := s.ClearHistory(ctx, "alice"); err != nil {
		t.Errorf("ClearHistory() on empty log error = %v", err)
	}
}

func TestUpdatePreferencesPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	theme := "midnight"
	prefs, err := s.UpdatePreferences(ctx, "alice", &theme, nil, now)
	if err != nil {
		t.Fatalf("UpdatePreferences(theme) error = %v", err)
	}
	if prefs.Theme != "midnight" {
		t.Errorf("theme = %q, want %q", prefs.Theme, "midnight")
	}
	if prefs.Settings == nil || len(prefs.Settings) != 0 {
		t.Errorf("settings = %v, want empty map backfilled from defaults", prefs.Settings)
	}

	later := now.Add(time.Hour)
	settings := map[string]any{"font": "mono"}
	prefs, err = s.UpdatePreferences(ctx, "alice", nil, settings, later)
	if err != nil {
		t.Fatalf("UpdatePreferences(settings) error = %v", err)
	}
	if prefs.Theme != "midnight" {
		t.Errorf("theme after settings-only update = %q, want %q unchanged", prefs.Theme, "midnight")
	}
	if prefs.Settings["font"] != "mono" {
		t.Errorf("settings = %v, want font=mono", prefs.Settings)
	}
	if !prefs.UpdatedAt.Equal(later) {
		t.Errorf("updated_at = %v, want refreshed to %v", prefs.UpdatedAt, later)
	}

	stored, err := s.GetPreferences(ctx, "alice")
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if stored.Theme != "midnight" || stored.Settings["font"] != "mono" {
		t.Errorf("GetPreferences() = %+v, want merged record", stored)
	}
}

func TestUpdatePreferencesMissingRecordBackfillsDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	settings := map[string]any{"font": "mono"}
	prefs, err := s.UpdatePreferences(ctx, "fresh", nil, settings, now)
	if err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}
	if prefs.Theme != domain.DefaultTheme {
		t.Errorf("theme = %q, want default %q", prefs.Theme, domain.DefaultTheme)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	tabs := []domain.Tab{
		{URL: "https://go.dev", Title: "Go"},
		{URL: "https://pkg.go.dev", Title: "Packages"},
	}
	session := &domain.Session{ID: domain.NewID(), User: "alice", Name: "work", Tabs: tabs, CreatedAt: now}
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	sessions, err := s.ListSessions(ctx, "alice")
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("ListSessions() returned %d sessions, want 1", len(sessions))
	}
	if len(sessions[0].Tabs) != 2 || sessions[0].Tabs[0].URL != "https://go.dev" {
		t.Errorf("ListSessions() tabs = %v, want order preserved", sessions[0].Tabs)
	}

	if err := s.DeleteSession(ctx, "bob", session.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteSession(bob) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteSession(ctx, "alice", session.ID); err != nil {
		t.Fatalf("DeleteSession(alice) error = %v", err)
	}
	sessions, err = s.ListSessions(ctx, "alice")
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("ListSessions() after delete returned %d sessions, want 0", len(sessions))
	}
}

func TestSweepUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	keep := &domain.Bookmark{ID: "keep", User: "alice", URL: "https://keep.example", Title: "keep", CreatedAt: now}
	dangling := &domain.Bookmark{ID: "gone", User: "alice", URL: "https://gone.example", Title: "gone", CreatedAt: now}
	for _, b := range []*domain.Bookmark{keep, dangling} {
		if err := s.SaveBookmark(ctx, b); err != nil {
			t.Fatalf("SaveBookmark() error = %v", err)
		}
	}

	entry := &domain.HistoryEntry{ID: "visit", User: "alice", URL: "https://gone.example", Title: "gone", VisitTime: now}
	if err := s.AddHistory(ctx, entry); err != nil {
		t.Fatalf("AddHistory() error = %v", err)
	}

	// Delete documents out from under their indexes.
	if err := s.client.Del(ctx, BookmarkKey("gone"), HistoryKey("visit")).Err(); err != nil {
		t.Fatalf("failed to delete documents: %v", err)
	}

	removed, err := s.SweepUser(ctx, "alice")
	if err != nil {
		t.Fatalf("SweepUser() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("SweepUser() removed %d members, want 2", removed)
	}

	bookmarks, err := s.ListBookmarks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBookmarks() error = %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].ID != "keep" {
		t.Errorf("ListBookmarks() after sweep = %v, want only keep", bookmarks)
	}

	// Sweeping again is a no-op.
	removed, err = s.SweepUser(ctx, "alice")
	if err != nil {
		t.Fatalf("SweepUser() second run error = %v", err)
	}
	if removed != 0 {
		t.Errorf("SweepUser() second run removed %d members, want 0", removed)
	}
}
