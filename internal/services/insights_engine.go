package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/insights"
	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
)

// ComputeInsights scores the subscribed cohort and builds the full
// report. It is a pure function of its inputs: same platforms, same
// aggregates, same clock mean the same report. Aggregates are keyed by
// lowercase platform name; platforms with no entry are scored from the
// zero aggregate.
func ComputeInsights(platforms []*platform.Platform, aggregates map[string]watchlist.Aggregate, now time.Time) *insights.Report {
	subscribed := make([]*platform.Platform, 0, len(platforms))
	for _, p := range platforms {
		if p.IsSubscribed {
			subscribed = append(subscribed, p)
		}
	}

	if len(subscribed) == 0 {
		return &insights.Report{
			GeneratedAt:             now,
			TotalMonthlySpend:       0,
			SubscribedPlatformCount: 0,
			DataCoverageNote:        "No subscribed platforms. Mark platforms as subscribed to see insights.",
			Recommendations:         []insights.Recommendation{},
			PlatformFeatures:        []insights.PlatformFeatures{},
		}
	}

	rawFeatures := make([]insights.PlatformFeatures, 0, len(subscribed))
	vectors := make([]featureVector, 0, len(subscribed))
	for _, p := range subscribed {
		features, v := extractFeatures(p, aggregates[strings.ToLower(p.Name)], now)
		rawFeatures = append(rawFeatures, features)
		vectors = append(vectors, v)
	}

	scaled := normalizeMatrix(buildFeatureMatrix(vectors))

	maxCost := 0.0
	totalSpend := 0.0
	for _, p := range subscribed {
		if p.MonthlyCost > maxCost {
			maxCost = p.MonthlyCost
		}
		totalSpend += p.MonthlyCost
	}

	recommendations := make([]insights.Recommendation, 0, len(subscribed))
	for i, p := range subscribed {
		row := make([]float64, featureCount)
		for j := range row {
			row[j] = scaled.At(i, j)
		}

		valueScore, churnRisk, contributions := scorePlatform(row, vectors[i], p.MonthlyCost, maxCost)
		action := decideAction(valueScore, churnRisk)
		confidence := decideConfidence(action, valueScore, churnRisk)
		reason := buildReason(action, rawFeatures[i], vectors[i], valueScore)

		recommendations = append(recommendations, insights.Recommendation{
			PlatformID:           p.ID,
			PlatformName:         p.Name,
			PlatformColor:        p.Color,
			MonthlyCost:          p.MonthlyCost,
			ValueScore:           valueScore,
			ChurnRisk:            churnRisk,
			Action:               action,
			Confidence:           confidence,
			FeatureContributions: contributions,
			Reason:               reason,
		})
	}

	// Highest churn risk first; stable so equal risks keep name order
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].ChurnRisk > recommendations[j].ChurnRisk
	})

	return &insights.Report{
		GeneratedAt:             now,
		TotalMonthlySpend:       round2(totalSpend),
		SubscribedPlatformCount: len(subscribed),
		DataCoverageNote:        coverageNote(rawFeatures),
		Recommendations:         recommendations,
		PlatformFeatures:        rawFeatures,
	}
}

// coverageNote flags subscribed platforms without watchlist data and
// the single-platform case where scores have no relative meaning.
func coverageNote(features []insights.PlatformFeatures) string {
	withData := 0
	for _, f := range features {
		if f.TotalItems > 0 {
			withData++
		}
	}

	total := len(features)
	note := ""
	if withData < total {
		missing := total - withData
		note = fmt.Sprintf("%d of %d subscribed platforms have watchlist data. Add content for the other %d to improve accuracy.",
			withData, total, missing)
	}
	if total == 1 {
		single := "Only 1 subscribed platform — scores are absolute (no relative comparison)."
		if note != "" {
			note = note + " " + single
		} else {
			note = single
		}
	}
	return note
}
