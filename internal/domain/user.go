package domain

import (
	"strings"
	"time"
)

// User is a known username. There is no password or token: "login" is
// idempotent registration, and the username is trusted as-is afterwards.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateUsername trims surrounding whitespace and rejects empty names.
// Any non-empty trimmed string is a valid username.
func ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", ErrEmptyUsername
	}
	return username, nil
}
