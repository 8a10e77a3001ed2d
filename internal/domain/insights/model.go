package insights

import (
	"context"
	"time"
)

// Recommended actions, ordered from best to worst standing.
const (
	ActionKeep   = "keep"
	ActionReview = "review"
	ActionCancel = "cancel"
)

// Confidence levels attached to a recommendation.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// FeatureNames lists the five scored features in matrix column order.
var FeatureNames = []string{
	"completion_rate",
	"engagement_rate",
	"recency_score",
	"content_volume",
	"cost_efficiency",
}

// PlatformFeatures holds the raw (pre-normalization) features for one
// platform. It is returned alongside recommendations for transparency.
// Rate fields are rounded to 4 decimals for display; the engine scores
// from unrounded values.
type PlatformFeatures struct {
	PlatformID    int64   `json:"platform_id"`
	PlatformName  string  `json:"platform_name"`
	PlatformColor string  `json:"platform_color"`
	MonthlyCost   float64 `json:"monthly_cost"`

	TotalItems            int `json:"total_items"`
	WatchedCount          int `json:"watched_count"`
	WatchingCount         int `json:"watching_count"`
	WantCount             int `json:"want_count"`
	MovieCount            int `json:"movie_count"`
	ShowCount             int `json:"show_count"`
	DaysSinceLastActivity int `json:"days_since_last_activity"`

	CompletionRate    float64 `json:"completion_rate"`
	EngagementRate    float64 `json:"engagement_rate"`
	RecencyScore      float64 `json:"recency_score"`
	ContentVolumeRaw  int     `json:"content_volume_raw"`
	CostEfficiencyRaw float64 `json:"cost_efficiency_raw"`
}

// Recommendation is the scored verdict for one subscribed platform.
// Constructed once per report and never mutated afterwards.
type Recommendation struct {
	PlatformID    int64   `json:"platform_id"`
	PlatformName  string  `json:"platform_name"`
	PlatformColor string  `json:"platform_color"`
	MonthlyCost   float64 `json:"monthly_cost"`

	ValueScore float64 `json:"value_score"`
	ChurnRisk  float64 `json:"churn_risk"`
	Action     string  `json:"action"`
	Confidence string  `json:"confidence"`

	// Weighted per-feature contribution to the 0-1 score
	FeatureContributions map[string]float64 `json:"feature_contributions"`

	Reason string `json:"reason"`
}

// Report is the full insights response. Recommendations are sorted by
// churn risk descending; PlatformFeatures keeps the subscribed-cohort
// input order.
type Report struct {
	GeneratedAt             time.Time `json:"generated_at"`
	TotalMonthlySpend       float64   `json:"total_monthly_spend"`
	SubscribedPlatformCount int       `json:"subscribed_platform_count"`
	DataCoverageNote        string    `json:"data_coverage_note,omitempty"`

	Recommendations  []Recommendation   `json:"recommendations"`
	PlatformFeatures []PlatformFeatures `json:"platform_features"`
}

// Service defines the interface for computing an insights report
type Service interface {
	// Compute builds a fresh report from the user's current platforms
	// and watchlist. Nothing is persisted between calls.
	Compute(ctx context.Context, userID int64) (*Report, error)
}
