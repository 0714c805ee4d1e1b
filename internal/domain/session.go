package domain

import "time"

// Tab is a single open tab inside a saved session.
type Tab struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Session is a named snapshot of browser tabs saved for later restoration.
// Tab order is preserved exactly as submitted; URLs are not validated and
// duplicates are kept.
type Session struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Name      string    `json:"name"`
	Tabs      []Tab     `json:"tabs"`
	CreatedAt time.Time `json:"created_at"`
}
