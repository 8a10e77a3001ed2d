package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/testutil"
)

func TestInsightsService_Compute(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	service := NewInsightsService(platformRepo, itemRepo, log).(*InsightsService)
	service.now = func() time.Time { return testNow }

	ctx := context.Background()
	platformRepo.Create(ctx, &platform.Platform{
		UserID: 1, Name: "Netflix", MonthlyCost: 15.49, IsSubscribed: true,
	})
	platformRepo.Create(ctx, &platform.Platform{
		UserID: 1, Name: "Cancelled One", MonthlyCost: 9.99, IsSubscribed: false,
	})
	seedItem(itemRepo, 1, "Dune", watchlist.TypeMovie, watchlist.StatusWatched, strPtr("netflix"), testNow.Add(-24*time.Hour))
	seedItem(itemRepo, 1, "Severance", watchlist.TypeShow, watchlist.StatusWatching, strPtr("Netflix"), testNow.Add(-48*time.Hour))

	report, err := service.Compute(ctx, 1)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !report.GeneratedAt.Equal(testNow) {
		t.Errorf("GeneratedAt = %v, want injected clock %v", report.GeneratedAt, testNow)
	}
	if report.SubscribedPlatformCount != 1 {
		t.Errorf("SubscribedPlatformCount = %d, want 1", report.SubscribedPlatformCount)
	}
	if report.TotalMonthlySpend != 15.49 {
		t.Errorf("TotalMonthlySpend = %v, want 15.49", report.TotalMonthlySpend)
	}
	if len(report.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(report.Recommendations))
	}
	// Items tagged "netflix" and "Netflix" land in the same aggregate
	if report.PlatformFeatures[0].TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", report.PlatformFeatures[0].TotalItems)
	}
}

func TestInsightsService_Compute_RepositoryError(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	itemRepo.ListError = errors.New("db gone")
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	service := NewInsightsService(platformRepo, itemRepo, log)

	if _, err := service.Compute(context.Background(), 1); err == nil {
		t.Error("Compute() should surface repository errors")
	}
}
