package seedfile

// BookmarkSeed is one bookmark entry in the seed file.
type BookmarkSeed struct {
	URL     string `yaml:"url"`
	Title   string `yaml:"title,omitempty"`
	Favicon string `yaml:"favicon,omitempty"`
}

// UserSeed groups the bookmarks preloaded for one username.
type UserSeed struct {
	User      string         `yaml:"user"`
	Bookmarks []BookmarkSeed `yaml:"bookmarks"`
}

// SeedConfig is the root structure of the seed YAML: a list of per-user
// bookmark groups.
type SeedConfig []UserSeed
