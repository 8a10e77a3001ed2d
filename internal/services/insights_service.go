package services

import (
	"context"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/insights"
	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/pkg/metrics"
)

// InsightsService implements insights.Service. It fetches the user's
// platforms and watchlist aggregates and hands them to the pure engine;
// nothing is persisted between computations.
type InsightsService struct {
	platforms platform.Repository
	items     watchlist.Repository
	log       *logger.Logger
	now       func() time.Time
}

// NewInsightsService creates a new insights service
func NewInsightsService(platforms platform.Repository, items watchlist.Repository, log *logger.Logger) insights.Service {
	return &InsightsService{
		platforms: platforms,
		items:     items,
		log:       log,
		now:       time.Now,
	}
}

// Compute builds a fresh report from the user's current data
func (s *InsightsService) Compute(ctx context.Context, userID int64) (*insights.Report, error) {
	start := time.Now()

	platforms, err := s.platforms.ListByUser(ctx, userID)
	if err != nil {
		metrics.ObserveInsightsComputation("error", 0, time.Since(start))
		return nil, err
	}

	aggregates, err := s.items.AggregatesByPlatform(ctx, userID)
	if err != nil {
		metrics.ObserveInsightsComputation("error", 0, time.Since(start))
		return nil, err
	}

	report := ComputeInsights(platforms, aggregates, s.now().UTC())

	metrics.ObserveInsightsComputation("ok", report.SubscribedPlatformCount, time.Since(start))
	s.log.WithFields(map[string]interface{}{
		"user_id":         userID,
		"cohort_size":     report.SubscribedPlatformCount,
		"recommendations": len(report.Recommendations),
	}).Debug("insights computed")

	return report, nil
}
