package services

import (
	"strings"
	"testing"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/insights"
	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) *time.Time {
	t := testNow.Add(-time.Duration(days) * 24 * time.Hour)
	return &t
}

func subscribedPlatform(id int64, name string, cost float64) *platform.Platform {
	return &platform.Platform{
		ID:           id,
		UserID:       1,
		Name:         name,
		Color:        platform.DefaultColor,
		MonthlyCost:  cost,
		IsSubscribed: true,
	}
}

func TestComputeInsights_NoSubscribedPlatforms(t *testing.T) {
	platforms := []*platform.Platform{
		{ID: 1, Name: "Netflix", MonthlyCost: 15.49, IsSubscribed: false},
	}

	report := ComputeInsights(platforms, nil, testNow)

	if report.SubscribedPlatformCount != 0 {
		t.Errorf("SubscribedPlatformCount = %d, want 0", report.SubscribedPlatformCount)
	}
	if report.TotalMonthlySpend != 0 {
		t.Errorf("TotalMonthlySpend = %v, want 0", report.TotalMonthlySpend)
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("got %d recommendations, want 0", len(report.Recommendations))
	}
	want := "No subscribed platforms. Mark platforms as subscribed to see insights."
	if report.DataCoverageNote != want {
		t.Errorf("DataCoverageNote = %q, want %q", report.DataCoverageNote, want)
	}
}

func TestComputeInsights_SinglePlatform(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Netflix", 15.49),
	}
	aggregates := map[string]watchlist.Aggregate{
		"netflix": {
			TotalItems:      10,
			WatchedCount:    6,
			WatchingCount:   2,
			WantCount:       2,
			MovieCount:      4,
			ShowCount:       6,
			MostRecentAdded: daysAgo(10),
		},
	}

	report := ComputeInsights(platforms, aggregates, testNow)

	if len(report.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(report.Recommendations))
	}
	rec := report.Recommendations[0]

	// completion 0.75, engagement 0.8, recency 355/365; volume and
	// cost efficiency are forced to zero in a one-platform cohort.
	// weighted = 0.3*0.75 + 0.25*0.8 + 0.2*(355/365) = 0.61952
	if rec.ValueScore != 62.0 {
		t.Errorf("ValueScore = %v, want 62.0", rec.ValueScore)
	}
	if rec.ChurnRisk != 0.38 {
		t.Errorf("ChurnRisk = %v, want 0.38", rec.ChurnRisk)
	}
	if rec.Action != insights.ActionKeep {
		t.Errorf("Action = %q, want keep", rec.Action)
	}
	if rec.Confidence != insights.ConfidenceMedium {
		t.Errorf("Confidence = %q, want medium", rec.Confidence)
	}
	wantReason := "Excellent — 75% of Netflix content completed at $15.49/mo."
	if rec.Reason != wantReason {
		t.Errorf("Reason = %q, want %q", rec.Reason, wantReason)
	}
	if rec.FeatureContributions["content_volume"] != 0 {
		t.Errorf("content_volume contribution = %v, want 0", rec.FeatureContributions["content_volume"])
	}
	if rec.FeatureContributions["cost_efficiency"] != 0 {
		t.Errorf("cost_efficiency contribution = %v, want 0", rec.FeatureContributions["cost_efficiency"])
	}

	wantNote := "Only 1 subscribed platform — scores are absolute (no relative comparison)."
	if report.DataCoverageNote != wantNote {
		t.Errorf("DataCoverageNote = %q, want %q", report.DataCoverageNote, wantNote)
	}
}

func TestComputeInsights_DeadPlatformCancelled(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Hulu", 7.99),
		subscribedPlatform(2, "Netflix", 15.49),
	}
	aggregates := map[string]watchlist.Aggregate{
		"hulu": {
			TotalItems:      5,
			WantCount:       5,
			MovieCount:      5,
			MostRecentAdded: daysAgo(200),
		},
		"netflix": {
			TotalItems:      10,
			WatchedCount:    6,
			WatchingCount:   2,
			WantCount:       2,
			ShowCount:       10,
			MostRecentAdded: daysAgo(10),
		},
	}

	report := ComputeInsights(platforms, aggregates, testNow)

	if len(report.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(report.Recommendations))
	}

	// Highest churn risk sorts first
	worst, best := report.Recommendations[0], report.Recommendations[1]
	if worst.PlatformName != "Hulu" {
		t.Fatalf("first recommendation = %q, want Hulu", worst.PlatformName)
	}

	// Hulu scores 0 on every normalized column; base risk 1.0 plus
	// the low-engagement cost penalty, clamped to 1.0
	if worst.ValueScore != 0 {
		t.Errorf("Hulu ValueScore = %v, want 0", worst.ValueScore)
	}
	if worst.ChurnRisk != 1.0 {
		t.Errorf("Hulu ChurnRisk = %v, want 1.0", worst.ChurnRisk)
	}
	if worst.Action != insights.ActionCancel {
		t.Errorf("Hulu Action = %q, want cancel", worst.Action)
	}
	if worst.Confidence != insights.ConfidenceHigh {
		t.Errorf("Hulu Confidence = %q, want high", worst.Confidence)
	}
	wantReason := "No activity in 200 days and 0% engagement at $7.99/mo — strong cancel signal."
	if worst.Reason != wantReason {
		t.Errorf("Hulu Reason = %q, want %q", worst.Reason, wantReason)
	}

	// Netflix dominates every column
	if best.ValueScore != 100.0 {
		t.Errorf("Netflix ValueScore = %v, want 100.0", best.ValueScore)
	}
	if best.ChurnRisk != 0 {
		t.Errorf("Netflix ChurnRisk = %v, want 0", best.ChurnRisk)
	}
	if best.Action != insights.ActionKeep {
		t.Errorf("Netflix Action = %q, want keep", best.Action)
	}
	if best.Confidence != insights.ConfidenceHigh {
		t.Errorf("Netflix Confidence = %q, want high", best.Confidence)
	}

	if report.TotalMonthlySpend != 23.48 {
		t.Errorf("TotalMonthlySpend = %v, want 23.48", report.TotalMonthlySpend)
	}
	if report.DataCoverageNote != "" {
		t.Errorf("DataCoverageNote = %q, want empty", report.DataCoverageNote)
	}
}

func TestComputeInsights_MiddlingPlatformReviewed(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Hulu", 7.99),
		subscribedPlatform(2, "Max", 16.99),
		subscribedPlatform(3, "Netflix", 15.49),
	}
	aggregates := map[string]watchlist.Aggregate{
		"hulu": {
			TotalItems:      5,
			WantCount:       5,
			MovieCount:      5,
			MostRecentAdded: daysAgo(200),
		},
		"max": {
			TotalItems:      8,
			WatchedCount:    1,
			WatchingCount:   1,
			WantCount:       6,
			ShowCount:       8,
			MostRecentAdded: daysAgo(120),
		},
		"netflix": {
			TotalItems:      10,
			WatchedCount:    6,
			WatchingCount:   2,
			WantCount:       2,
			ShowCount:       10,
			MostRecentAdded: daysAgo(10),
		},
	}

	report := ComputeInsights(platforms, aggregates, testNow)

	var max *insights.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].PlatformName == "Max" {
			max = &report.Recommendations[i]
		}
	}
	if max == nil {
		t.Fatal("no recommendation for Max")
	}

	if max.Action != insights.ActionReview {
		t.Errorf("Max Action = %q (risk %v, score %v), want review", max.Action, max.ChurnRisk, max.ValueScore)
	}
	if max.Confidence != insights.ConfidenceMedium {
		t.Errorf("Max Confidence = %q, want medium", max.Confidence)
	}
	wantReason := "Mixed signals: 25% engaged, 50% completed on Max ($16.99/mo) — monitor usage before renewing."
	if max.Reason != wantReason {
		t.Errorf("Max Reason = %q, want %q", max.Reason, wantReason)
	}
}

func TestComputeInsights_PlatformWithoutData(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Apple TV+", 9.99),
		subscribedPlatform(2, "Netflix", 15.49),
	}
	aggregates := map[string]watchlist.Aggregate{
		"netflix": {
			TotalItems:      10,
			WatchedCount:    6,
			WatchingCount:   2,
			WantCount:       2,
			ShowCount:       10,
			MostRecentAdded: daysAgo(10),
		},
	}

	report := ComputeInsights(platforms, aggregates, testNow)

	var apple *insights.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].PlatformName == "Apple TV+" {
			apple = &report.Recommendations[i]
		}
	}
	if apple == nil {
		t.Fatal("no recommendation for Apple TV+")
	}

	wantReason := "No watchlist items recorded for Apple TV+ — add content to improve this score."
	if apple.Reason != wantReason {
		t.Errorf("Reason = %q, want %q", apple.Reason, wantReason)
	}
	if apple.Action != insights.ActionCancel && apple.Action != insights.ActionReview {
		t.Errorf("Action = %q, want cancel or review for a platform with no data", apple.Action)
	}

	var features *insights.PlatformFeatures
	for i := range report.PlatformFeatures {
		if report.PlatformFeatures[i].PlatformName == "Apple TV+" {
			features = &report.PlatformFeatures[i]
		}
	}
	if features == nil {
		t.Fatal("no features for Apple TV+")
	}
	if features.TotalItems != 0 || features.CompletionRate != 0 || features.EngagementRate != 0 {
		t.Errorf("zero-item platform features not zeroed: %+v", features)
	}
	if features.DaysSinceLastActivity != 365 {
		t.Errorf("DaysSinceLastActivity = %d, want 365", features.DaysSinceLastActivity)
	}
	if features.RecencyScore != 0 {
		t.Errorf("RecencyScore = %v, want 0", features.RecencyScore)
	}

	wantNote := "1 of 2 subscribed platforms have watchlist data. Add content for the other 1 to improve accuracy."
	if report.DataCoverageNote != wantNote {
		t.Errorf("DataCoverageNote = %q, want %q", report.DataCoverageNote, wantNote)
	}
}

func TestComputeInsights_IdenticalPlatformsZeroVariance(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Hulu", 9.99),
		subscribedPlatform(2, "Netflix", 9.99),
	}
	agg := watchlist.Aggregate{
		TotalItems:      4,
		WatchedCount:    2,
		WatchingCount:   1,
		WantCount:       1,
		MovieCount:      4,
		MostRecentAdded: daysAgo(30),
	}
	aggregates := map[string]watchlist.Aggregate{"hulu": agg, "netflix": agg}

	report := ComputeInsights(platforms, aggregates, testNow)

	// Every column is zero-variance, so both platforms score zero
	for _, rec := range report.Recommendations {
		if rec.ValueScore != 0 {
			t.Errorf("%s ValueScore = %v, want 0", rec.PlatformName, rec.ValueScore)
		}
		for name, contribution := range rec.FeatureContributions {
			if contribution != 0 {
				t.Errorf("%s contribution %s = %v, want 0", rec.PlatformName, name, contribution)
			}
		}
	}
}

func TestComputeInsights_BoundsHold(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Hulu", 7.99),
		subscribedPlatform(2, "Max", 16.99),
		subscribedPlatform(3, "Netflix", 15.49),
		subscribedPlatform(4, "Tubi", 0),
	}
	aggregates := map[string]watchlist.Aggregate{
		"hulu":    {TotalItems: 5, WantCount: 5, MovieCount: 5, MostRecentAdded: daysAgo(400)},
		"max":     {TotalItems: 8, WatchedCount: 1, WatchingCount: 1, WantCount: 6, ShowCount: 8, MostRecentAdded: daysAgo(120)},
		"netflix": {TotalItems: 50, WatchedCount: 40, WatchingCount: 5, WantCount: 5, ShowCount: 50, MostRecentAdded: daysAgo(1)},
		"tubi":    {TotalItems: 3, WatchedCount: 3, MovieCount: 3, MostRecentAdded: daysAgo(5)},
	}

	report := ComputeInsights(platforms, aggregates, testNow)

	for _, rec := range report.Recommendations {
		if rec.ValueScore < 0 || rec.ValueScore > 100 {
			t.Errorf("%s ValueScore %v out of [0,100]", rec.PlatformName, rec.ValueScore)
		}
		if rec.ChurnRisk < 0 || rec.ChurnRisk > 1 {
			t.Errorf("%s ChurnRisk %v out of [0,1]", rec.PlatformName, rec.ChurnRisk)
		}
		if rec.Action != insights.ActionKeep && rec.Action != insights.ActionReview && rec.Action != insights.ActionCancel {
			t.Errorf("%s has unknown action %q", rec.PlatformName, rec.Action)
		}
		if rec.Reason == "" {
			t.Errorf("%s has empty reason", rec.PlatformName)
		}
	}

	for i := 1; i < len(report.Recommendations); i++ {
		if report.Recommendations[i-1].ChurnRisk < report.Recommendations[i].ChurnRisk {
			t.Errorf("recommendations not sorted by churn risk descending")
		}
	}
}

func TestComputeInsights_Deterministic(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "Hulu", 7.99),
		subscribedPlatform(2, "Netflix", 15.49),
	}
	aggregates := map[string]watchlist.Aggregate{
		"hulu":    {TotalItems: 5, WantCount: 5, MovieCount: 5, MostRecentAdded: daysAgo(200)},
		"netflix": {TotalItems: 10, WatchedCount: 6, WatchingCount: 2, WantCount: 2, ShowCount: 10, MostRecentAdded: daysAgo(10)},
	}

	a := ComputeInsights(platforms, aggregates, testNow)
	b := ComputeInsights(platforms, aggregates, testNow)

	if len(a.Recommendations) != len(b.Recommendations) {
		t.Fatal("recommendation counts differ between runs")
	}
	for i := range a.Recommendations {
		ra, rb := a.Recommendations[i], b.Recommendations[i]
		if ra.ValueScore != rb.ValueScore || ra.ChurnRisk != rb.ChurnRisk ||
			ra.Action != rb.Action || ra.Reason != rb.Reason {
			t.Errorf("recommendation %d differs between runs: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestComputeInsights_CaseInsensitiveAggregateMatch(t *testing.T) {
	platforms := []*platform.Platform{
		subscribedPlatform(1, "NetFlix", 15.49),
	}
	aggregates := map[string]watchlist.Aggregate{
		"netflix": {
			TotalItems:      10,
			WatchedCount:    6,
			WatchingCount:   2,
			WantCount:       2,
			ShowCount:       10,
			MostRecentAdded: daysAgo(10),
		},
	}

	report := ComputeInsights(platforms, aggregates, testNow)

	if report.PlatformFeatures[0].TotalItems != 10 {
		t.Errorf("aggregate not matched case-insensitively: TotalItems = %d, want 10",
			report.PlatformFeatures[0].TotalItems)
	}
}

func TestBuildReason_FreePlatform(t *testing.T) {
	raw := insights.PlatformFeatures{
		PlatformName:          "Tubi",
		MonthlyCost:           0,
		TotalItems:            4,
		WatchedCount:          3,
		DaysSinceLastActivity: 5,
	}
	v := featureVector{completion: 0.75, engagement: 0.75}

	reason := buildReason(insights.ActionKeep, raw, v, 80.0)

	if !strings.HasSuffix(reason, "(free).") {
		t.Errorf("free platform reason = %q, want suffix %q", reason, "(free).")
	}
}
