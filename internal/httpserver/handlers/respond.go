package handlers

import (
	"encoding/json"
	"net/http"
)

// detailResponse is the error envelope: an HTTP status plus a JSON detail
// string, matching what the companion extension already parses.
type detailResponse struct {
	Detail string `json:"detail"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// requireUser extracts the trusted, unauthenticated user query parameter.
// Reports 400 and returns false when it is missing.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	user := r.URL.Query().Get("user")
	if user == "" {
		writeDetail(w, http.StatusBadRequest, "user query parameter is required")
		return "", false
	}
	return user, true
}
