package services

import (
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/insights"
	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
)

// staleDays is the recency fallback for platforms with no activity, and
// the horizon over which recency decays to zero.
const staleDays = 365

// freeCostEfficiencyBonus rewards zero-cost platforms: a free platform
// with the same watch count as a paid one should score better on cost
// efficiency, not divide by zero.
const freeCostEfficiencyBonus = 2.0

// featureVector carries the unrounded feature values in matrix column
// order. Scoring and narrative generation read from here, never from
// the rounded display fields on insights.PlatformFeatures.
type featureVector struct {
	completion float64
	engagement float64
	recency    float64
	volume     float64
	costEff    float64
}

func (v featureVector) row() []float64 {
	return []float64{v.completion, v.engagement, v.recency, v.volume, v.costEff}
}

// extractFeatures derives the five raw features for one platform from
// its watchlist aggregate. The zero-value aggregate stands in for a
// platform with no watchlist data and yields a maximally stale record.
func extractFeatures(p *platform.Platform, agg watchlist.Aggregate, now time.Time) (insights.PlatformFeatures, featureVector) {
	consumed := agg.WatchedCount + agg.WatchingCount

	var v featureVector
	if consumed > 0 {
		v.completion = float64(agg.WatchedCount) / float64(consumed)
	}
	if agg.TotalItems > 0 {
		v.engagement = float64(consumed) / float64(agg.TotalItems)
	}

	daysSince := staleDays
	if agg.MostRecentAdded != nil {
		daysSince = int(now.Sub(*agg.MostRecentAdded).Hours() / 24)
		if daysSince < 0 {
			daysSince = 0
		}
	}
	v.recency = 1.0 - float64(daysSince)/float64(staleDays)
	if v.recency < 0 {
		v.recency = 0
	}

	v.volume = float64(agg.TotalItems)

	if p.MonthlyCost > 0 {
		v.costEff = float64(agg.WatchedCount) / p.MonthlyCost
	} else {
		v.costEff = float64(agg.WatchedCount) * freeCostEfficiencyBonus
	}

	features := insights.PlatformFeatures{
		PlatformID:            p.ID,
		PlatformName:          p.Name,
		PlatformColor:         p.Color,
		MonthlyCost:           p.MonthlyCost,
		TotalItems:            agg.TotalItems,
		WatchedCount:          agg.WatchedCount,
		WatchingCount:         agg.WatchingCount,
		WantCount:             agg.WantCount,
		MovieCount:            agg.MovieCount,
		ShowCount:             agg.ShowCount,
		DaysSinceLastActivity: daysSince,
		CompletionRate:        round4(v.completion),
		EngagementRate:        round4(v.engagement),
		RecencyScore:          round4(v.recency),
		ContentVolumeRaw:      agg.TotalItems,
		CostEfficiencyRaw:     round4(v.costEff),
	}

	return features, v
}
