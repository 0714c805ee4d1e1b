package domain

import "time"

// DefaultTheme is the theme assigned to every new preferences record.
const DefaultTheme = "white-gold"

// Preferences holds the single settings record of a user: a theme plus an
// open string-keyed map. Exactly one record exists per user; it is created
// with defaults on first login (or first read) and updated via upsert,
// never deleted.
type Preferences struct {
	User      string         `json:"user"`
	Theme     string         `json:"theme"`
	Settings  map[string]any `json:"settings"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DefaultPreferences returns the record seeded on first login.
func DefaultPreferences(user string, now time.Time) *Preferences {
	return &Preferences{
		User:      user,
		Theme:     DefaultTheme,
		Settings:  map[string]any{},
		UpdatedAt: now,
	}
}
