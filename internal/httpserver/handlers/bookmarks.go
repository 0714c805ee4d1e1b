package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satchelapp/satchel/internal/domain"
	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/logger"
	redisstore "github.com/satchelapp/satchel/internal/store/redis"
)

type createBookmarkRequest struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Favicon string `json:"favicon,omitempty"`
}

type createBookmarkResponse struct {
	Success  bool             `json:"success"`
	Bookmark *domain.Bookmark `json:"bookmark"`
}

// ListBookmarks returns all bookmarks of a user, unordered, capped.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		bookmarks, err := store.ListBookmarks(r.Context(), user)
		if err != nil {
			d.Logger.Error("failed to list bookmarks", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, bookmarks)
	}
}

// CreateBookmark stores a new bookmark with a generated id and the current
// time.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req createBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.URL == "" || req.Title == "" {
			writeDetail(w, http.StatusBadRequest, "url and title are required")
			return
		}

		bookmark := &domain.Bookmark{
			ID:        domain.NewID(),
			User:      user,
			URL:       req.URL,
			Title:     req.Title,
			Favicon:   req.Favicon,
			CreatedAt: d.TimeNow(),
		}

		if err := store.SaveBookmark(r.Context(), bookmark); err != nil {
			d.Logger.Error("failed to save bookmark", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, createBookmarkResponse{Success: true, Bookmark: bookmark})
	}
}

// DeleteBookmark removes the bookmark matching both id and user. An id that
// exists for a different user reports not-found, never unauthorized.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		id := chi.URLParam(r, "id")
		if err := store.DeleteBookmark(r.Context(), user, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeDetail(w, http.StatusNotFound, "Bookmark not found")
				return
			}
			d.Logger.Error("failed to delete bookmark", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
