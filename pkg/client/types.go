package client

import "time"

// User represents an account
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Platform represents a streaming platform
type Platform struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	MonthlyCost  float64   `json:"monthly_cost"`
	IsSubscribed bool      `json:"is_subscribed"`
	CreatedAt    time.Time `json:"created_at"`
}

// WatchlistItem represents one watchlist entry
type WatchlistItem struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	PlatformName *string   `json:"platform_name"`
	PosterURL    *string   `json:"poster_url"`
	Notes        *string   `json:"notes"`
	AddedAt      time.Time `json:"added_at"`
}

// Recommendation is the scored verdict for one subscribed platform
type Recommendation struct {
	PlatformID           int64              `json:"platform_id"`
	PlatformName         string             `json:"platform_name"`
	PlatformColor        string             `json:"platform_color"`
	MonthlyCost          float64            `json:"monthly_cost"`
	ValueScore           float64            `json:"value_score"`
	ChurnRisk            float64            `json:"churn_risk"`
	Action               string             `json:"action"`
	Confidence           string             `json:"confidence"`
	FeatureContributions map[string]float64 `json:"feature_contributions"`
	Reason               string             `json:"reason"`
}

// PlatformFeatures holds the raw features behind a recommendation
type PlatformFeatures struct {
	PlatformID            int64   `json:"platform_id"`
	PlatformName          string  `json:"platform_name"`
	PlatformColor         string  `json:"platform_color"`
	MonthlyCost           float64 `json:"monthly_cost"`
	TotalItems            int     `json:"total_items"`
	WatchedCount          int     `json:"watched_count"`
	WatchingCount         int     `json:"watching_count"`
	WantCount             int     `json:"want_count"`
	MovieCount            int     `json:"movie_count"`
	ShowCount             int     `json:"show_count"`
	DaysSinceLastActivity int     `json:"days_since_last_activity"`
	CompletionRate        float64 `json:"completion_rate"`
	EngagementRate        float64 `json:"engagement_rate"`
	RecencyScore          float64 `json:"recency_score"`
	ContentVolumeRaw      int     `json:"content_volume_raw"`
	CostEfficiencyRaw     float64 `json:"cost_efficiency_raw"`
}

// InsightsReport is the full insights response
type InsightsReport struct {
	GeneratedAt             time.Time          `json:"generated_at"`
	TotalMonthlySpend       float64            `json:"total_monthly_spend"`
	SubscribedPlatformCount int                `json:"subscribed_platform_count"`
	DataCoverageNote        string             `json:"data_coverage_note,omitempty"`
	Recommendations         []Recommendation   `json:"recommendations"`
	PlatformFeatures        []PlatformFeatures `json:"platform_features"`
}

// WatchlistStats are the aggregate dashboard numbers
type WatchlistStats struct {
	TotalItems              int     `json:"total_items"`
	Watched                 int     `json:"watched"`
	Watching                int     `json:"watching"`
	WantToWatch             int     `json:"want_to_watch"`
	TotalPlatforms          int     `json:"total_platforms"`
	SubscribedPlatforms     int     `json:"subscribed_platforms"`
	EstimatedHoursRemaining float64 `json:"estimated_hours_remaining"`
}

// PlatformBreakdown is one per-platform dashboard row
type PlatformBreakdown struct {
	PlatformName string `json:"platform_name"`
	Color        string `json:"color"`
	IsSubscribed bool   `json:"is_subscribed"`
	Total        int    `json:"total"`
	Watched      int    `json:"watched"`
	Watching     int    `json:"watching"`
	WantToWatch  int    `json:"want_to_watch"`
}

// DiscoveryOverview is the discovery dashboard response
type DiscoveryOverview struct {
	ContinueWatching  []WatchlistItem     `json:"continue_watching"`
	UpNext            []WatchlistItem     `json:"up_next"`
	RecentlyCompleted []WatchlistItem     `json:"recently_completed"`
	Stats             WatchlistStats      `json:"stats"`
	PlatformBreakdown []PlatformBreakdown `json:"platform_breakdown"`
}

// HealthResponse is the health endpoint payload
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
