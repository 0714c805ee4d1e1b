package redis

const (
	keyPrefixUser     = "satchel:user:"
	keyPrefixBookmark = "satchel:bookmark:"
	keyPrefixHistory  = "satchel:history:"
	keyPrefixPrefs    = "satchel:prefs:"
	keyPrefixSession  = "satchel:session:"
	keyAllUsers       = "satchel:users"
)

// UserKey returns the document key for a user record.
func UserKey(username string) string {
	return keyPrefixUser + username
}

// BookmarkKey returns the document key for a bookmark.
func BookmarkKey(id string) string {
	return keyPrefixBookmark + id
}

// HistoryKey returns the document key for a history entry.
func HistoryKey(id string) string {
	return keyPrefixHistory + id
}

// PreferencesKey returns the document key for a user's preferences record.
func PreferencesKey(username string) string {
	return keyPrefixPrefs + username
}

// SessionKey returns the document key for a saved session.
func SessionKey(id string) string {
	return keyPrefixSession + id
}

// AllUsersKey returns the key of the set of all known usernames.
func AllUsersKey() string {
	return keyAllUsers
}

// UserBookmarksKey returns the key of the set of a user's bookmark ids.
func UserBookmarksKey(username string) string {
	return keyPrefixUser + username + ":bookmarks"
}

// UserHistoryKey returns the key of the sorted set of a user's history ids,
// scored by visit time.
func UserHistoryKey(username string) string {
	return keyPrefixUser + username + ":history"
}

// UserSessionsKey returns the key of the set of a user's session ids.
func UserSessionsKey(username string) string {
	return keyPrefixUser + username + ":sessions"
}
