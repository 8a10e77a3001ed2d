package discovery

import (
	"context"
	"time"
)

// ItemSummary is a lightweight watchlist item for the discovery
// sections (no notes).
type ItemSummary struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	PlatformName *string   `json:"platform_name"`
	PosterURL    *string   `json:"poster_url"`
	AddedAt      time.Time `json:"added_at"`
}

// Stats are the aggregate watchlist numbers on the dashboard.
type Stats struct {
	TotalItems              int     `json:"total_items"`
	Watched                 int     `json:"watched"`
	Watching                int     `json:"watching"`
	WantToWatch             int     `json:"want_to_watch"`
	TotalPlatforms          int     `json:"total_platforms"`
	SubscribedPlatforms     int     `json:"subscribed_platforms"`
	EstimatedHoursRemaining float64 `json:"estimated_hours_remaining"`
}

// PlatformBreakdown is one per-platform row, sorted by total descending.
type PlatformBreakdown struct {
	PlatformName string `json:"platform_name"`
	Color        string `json:"color"`
	IsSubscribed bool   `json:"is_subscribed"`
	Total        int    `json:"total"`
	Watched      int    `json:"watched"`
	Watching     int    `json:"watching"`
	WantToWatch  int    `json:"want_to_watch"`
}

// Overview is the discovery dashboard response.
type Overview struct {
	ContinueWatching  []ItemSummary       `json:"continue_watching"`
	UpNext            []ItemSummary       `json:"up_next"`
	RecentlyCompleted []ItemSummary       `json:"recently_completed"`
	Stats             Stats               `json:"stats"`
	PlatformBreakdown []PlatformBreakdown `json:"platform_breakdown"`
}

// Service defines the interface for the discovery dashboard
type Service interface {
	Overview(ctx context.Context, userID int64) (*Overview, error)
}
