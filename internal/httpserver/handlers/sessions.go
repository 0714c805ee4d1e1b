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

type createSessionRequest struct {
	Name string       `json:"name"`
	Tabs []domain.Tab `json:"tabs"`
}

type createSessionResponse struct {
	Success bool            `json:"success"`
	Session *domain.Session `json:"session"`
}

// ListSessions returns all saved tab snapshots of a user, capped.
func ListSessions(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		sessions, err := store.ListSessions(r.Context(), user)
		if err != nil {
			d.Logger.Error("failed to list sessions", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, sessions)
	}
}

// CreateSession saves a named tab snapshot. Tabs are stored in submission
// order, without dedup or URL validation.
func CreateSession(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req createSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Name == "" {
			writeDetail(w, http.StatusBadRequest, "name is required")
			return
		}
		if req.Tabs == nil {
			req.Tabs = []domain.Tab{}
		}

		session := &domain.Session{
			ID:        domain.NewID(),
			User:      user,
			Name:      req.Name,
			Tabs:      req.Tabs,
			CreatedAt: d.TimeNow(),
		}

		if err := store.SaveSession(r.Context(), session); err != nil {
			d.Logger.Error("failed to save session", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, createSessionResponse{Success: true, Session: session})
	}
}

// DeleteSession removes the session matching both id and user, with the
// same not-found semantics as bookmark delete.
func DeleteSession(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		id := chi.URLParam(r, "id")
		if err := store.DeleteSession(r.Context(), user, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeDetail(w, http.StatusNotFound, "Session not found")
				return
			}
			d.Logger.Error("failed to delete session", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
