package domain

import "time"

// HistoryEntry is one visited page in a user's append-only browsing log.
// Duplicates are allowed; entries are never deleted individually, only
// cleared per user in bulk.
type HistoryEntry struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	VisitTime time.Time `json:"visit_time"`
}
