package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/satchelapp/satchel/internal/domain"
	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/logger"
	redisstore "github.com/satchelapp/satchel/internal/store/redis"
)

type addHistoryRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ListHistory returns a user's entries most-recent-first, capped at the
// limit query parameter (default 100).
func ListHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		limit := redisstore.DefaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		entries, err := store.ListHistory(r.Context(), user, limit)
		if err != nil {
			d.Logger.Error("failed to list history", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// AddHistory appends a visit. No dedup, no merge: every call stores a new
// entry.
func AddHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req addHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.URL == "" || req.Title == "" {
			writeDetail(w, http.StatusBadRequest, "url and title are required")
			return
		}

		entry := &domain.HistoryEntry{
			ID:        domain.NewID(),
			User:      user,
			URL:       req.URL,
			Title:     req.Title,
			VisitTime: d.TimeNow(),
		}

		if err := store.AddHistory(r.Context(), entry); err != nil {
			d.Logger.Error("failed to add history entry", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// ClearHistory deletes all entries for a user. Clearing an empty log
// succeeds.
func ClearHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		if err := store.ClearHistory(r.Context(), user); err != nil {
			d.Logger.Error("failed to clear history", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
