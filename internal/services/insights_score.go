package services

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/nwatkins/streamtracker/internal/domain/insights"
)

// featureWeights are the per-column weights used for the value score.
// They sum to 1.0 and index into insights.FeatureNames order.
var featureWeights = []float64{0.30, 0.25, 0.20, 0.10, 0.15}

// Churn risk thresholds
const (
	cancelThreshold = 0.70
	reviewThreshold = 0.45

	// Even with lower churn risk, a value score under this means review
	reviewValueMax = 40.0
)

// Cost penalty applied to expensive platforms with little engagement
const (
	lowEngagementCutoff = 0.25
	costPenaltyWeight   = 0.15
)

// scorePlatform turns one normalized matrix row into a value score
// (0-100), a churn risk (0-1), and the per-feature contributions.
// Engagement and cost come from the unrounded vector, not the rounded
// display fields.
func scorePlatform(scaledRow []float64, v featureVector, monthlyCost, maxSubscribedCost float64) (float64, float64, map[string]float64) {
	contributions := make(map[string]float64, len(insights.FeatureNames))
	for i, name := range insights.FeatureNames {
		contributions[name] = round4(scaledRow[i] * featureWeights[i])
	}

	weighted := floats.Dot(scaledRow, featureWeights)
	valueScore := round1(math.Min(100, math.Max(0, weighted*100)))

	baseRisk := 1.0 - weighted

	costPenalty := 0.0
	if monthlyCost > 0 && v.engagement < lowEngagementCutoff && maxSubscribedCost > 0 {
		costPenalty = (monthlyCost / maxSubscribedCost) * costPenaltyWeight
	}

	churnRisk := round3(math.Min(1.0, baseRisk+costPenalty))

	return valueScore, churnRisk, contributions
}

// decideAction applies the thresholds to the rounded score and risk
func decideAction(valueScore, churnRisk float64) string {
	if churnRisk >= cancelThreshold {
		return insights.ActionCancel
	}
	if churnRisk >= reviewThreshold || valueScore < reviewValueMax {
		return insights.ActionReview
	}
	return insights.ActionKeep
}

func decideConfidence(action string, valueScore, churnRisk float64) string {
	if action == insights.ActionCancel && churnRisk >= 0.85 {
		return insights.ConfidenceHigh
	}
	if action == insights.ActionKeep && valueScore >= 70.0 {
		return insights.ConfidenceHigh
	}
	return insights.ConfidenceMedium
}

// buildReason writes the one-sentence narrative for a recommendation.
// Percentages are truncated, not rounded, so a 29.9% completion rate
// reads as 29%.
func buildReason(action string, raw insights.PlatformFeatures, v featureVector, valueScore float64) string {
	name := raw.PlatformName
	costStr := "free"
	if raw.MonthlyCost > 0 {
		costStr = fmt.Sprintf("$%.2f/mo", raw.MonthlyCost)
	}

	if raw.TotalItems == 0 {
		return fmt.Sprintf("No watchlist items recorded for %s — add content to improve this score.", name)
	}

	pctWatched := int(v.completion * 100)
	pctEngaged := int(v.engagement * 100)
	days := raw.DaysSinceLastActivity

	switch action {
	case insights.ActionCancel:
		if days >= 180 {
			return fmt.Sprintf("No activity in %d days and %d%% engagement at %s — strong cancel signal.",
				days, pctEngaged, costStr)
		}
		if v.engagement < 0.15 {
			return fmt.Sprintf("Only %d%% of your %s content has been watched or is in progress (%s) — not worth the cost.",
				pctEngaged, name, costStr)
		}
		return fmt.Sprintf("Low value score (%.0f/100) relative to %s cost — consider cancelling.",
			valueScore, costStr)

	case insights.ActionReview:
		if raw.WatchedCount == 0 && raw.TotalItems > 0 {
			return fmt.Sprintf("You have %d items queued on %s but haven't watched any yet — worth keeping if you plan to watch soon.",
				raw.TotalItems, name)
		}
		if v.completion < 0.30 && raw.MonthlyCost > 0 {
			return fmt.Sprintf("%d%% completion rate on %s (%s) — decent queue but low follow-through.",
				pctWatched, name, costStr)
		}
		return fmt.Sprintf("Mixed signals: %d%% engaged, %d%% completed on %s (%s) — monitor usage before renewing.",
			pctEngaged, pctWatched, name, costStr)
	}

	// keep
	if v.completion >= 0.7 {
		suffix := " (free)"
		if raw.MonthlyCost > 0 {
			suffix = " at " + costStr
		}
		return fmt.Sprintf("Excellent — %d%% of %s content completed%s.", pctWatched, name, suffix)
	}

	recentStr := fmt.Sprintf("within %d days", days)
	if days < 14 {
		recentStr = "recently"
	}
	return fmt.Sprintf("Solid engagement (%d%% active, %d%% completed) with content added %s — good value.",
		pctEngaged, pctWatched, recentStr)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
