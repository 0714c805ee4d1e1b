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

// updatePreferencesRequest models field presence explicitly: nil means "not
// supplied" and leaves the stored value untouched. There is no way to clear
// a field, matching the contract.
type updatePreferencesRequest struct {
	Theme    *string        `json:"theme"`
	Settings map[string]any `json:"settings"`
}

// GetPreferences returns the stored record, creating and persisting the
// default one on first read.
func GetPreferences(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		ctx := r.Context()
		prefs, err := store.GetPreferences(ctx, user)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				d.Logger.Error("failed to get preferences", logger.Error(err))
				writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			prefs = domain.DefaultPreferences(user, d.TimeNow())
			if err := store.SavePreferences(ctx, prefs); err != nil {
				d.Logger.Error("failed to persist default preferences", logger.Error(err))
				writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}
		}

		writeJSON(w, http.StatusOK, prefs)
	}
}

// UpdatePreferences merges only the provided fields via upsert-by-user;
// updated_at is always refreshed.
func UpdatePreferences(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req updatePreferencesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if _, err := store.UpdatePreferences(r.Context(), user, req.Theme, req.Settings, d.TimeNow()); err != nil {
			d.Logger.Error("failed to update preferences", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
