package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/satchelapp/satchel/internal/domain"
	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/logger"
	redisstore "github.com/satchelapp/satchel/internal/store/redis"
)

type loginRequest struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// Login is idempotent user registration/lookup: no password, no token. The
// first login creates the user record and seeds default preferences; any
// later login with the same username is a pure lookup.
func Login(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		username, err := domain.ValidateUsername(req.Username)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "Username cannot be empty")
			return
		}

		ctx := r.Context()
		if _, err := store.GetUser(ctx, username); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				d.Logger.Error("failed to look up user", logger.Error(err))
				writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			now := d.TimeNow()
			if err := store.SaveUser(ctx, &domain.User{Username: username, CreatedAt: now}); err != nil {
				d.Logger.Error("failed to create user", logger.Error(err))
				writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}
			// Defaults are idempotent, so the two writes need no transaction.
			if err := store.SavePreferences(ctx, domain.DefaultPreferences(username, now)); err != nil {
				d.Logger.Error("failed to seed default preferences", logger.Error(err))
				writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			d.Logger.Info("registered new user", logger.String("user", username))
		}

		writeJSON(w, http.StatusOK, loginResponse{Success: true, Username: username})
	}
}
