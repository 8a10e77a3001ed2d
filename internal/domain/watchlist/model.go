package watchlist

import "time"

// Content types
const (
	TypeMovie = "movie"
	TypeShow  = "show"
)

// Watch statuses
const (
	StatusWantToWatch = "want_to_watch"
	StatusWatching    = "watching"
	StatusWatched     = "watched"
)

// Item represents one watchlist entry. PlatformName is free text
// matched case-insensitively against the user's platforms.
type Item struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	PlatformName *string   `json:"platform_name"`
	PosterURL    *string   `json:"poster_url"`
	Notes        *string   `json:"notes"`
	AddedAt      time.Time `json:"added_at"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title        *string
	Type         *string
	Status       *string
	PlatformName *string
	PosterURL    *string
	Notes        *string
}

// Apply merges the patch onto the item field by field.
func (i *Item) Apply(patch Patch) {
	if patch.Title != nil {
		i.Title = *patch.Title
	}
	if patch.Type != nil {
		i.Type = *patch.Type
	}
	if patch.Status != nil {
		i.Status = *patch.Status
	}
	if patch.PlatformName != nil {
		i.PlatformName = patch.PlatformName
	}
	if patch.PosterURL != nil {
		i.PosterURL = patch.PosterURL
	}
	if patch.Notes != nil {
		i.Notes = patch.Notes
	}
}

// Aggregate holds per-platform watchlist counts, keyed by lowercase
// platform name when returned from the repository. It is the raw input
// of the insights feature extractor; the zero value stands in for a
// platform with no watchlist data.
type Aggregate struct {
	TotalItems      int        `json:"total_items"`
	WatchedCount    int        `json:"watched_count"`
	WatchingCount   int        `json:"watching_count"`
	WantCount       int        `json:"want_count"`
	MovieCount      int        `json:"movie_count"`
	ShowCount       int        `json:"show_count"`
	MostRecentAdded *time.Time `json:"most_recent_added"`
}

// StatusTypeCount is one row of the status/type breakdown used by the
// discovery stats.
type StatusTypeCount struct {
	Status string
	Type   string
	Count  int
}

// PlatformCounts is one row of the per-platform status breakdown, keyed
// by lowercase platform name.
type PlatformCounts struct {
	PlatformName string
	Watched      int
	Watching     int
	WantToWatch  int
}
