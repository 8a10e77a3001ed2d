package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/testutil"
)

func strPtr(s string) *string { return &s }

func seedItem(repo *testutil.MockWatchlistRepository, userID int64, title, itemType, status string, platformName *string, addedAt time.Time) {
	repo.Create(context.Background(), &watchlist.Item{
		UserID:       userID,
		Title:        title,
		Type:         itemType,
		Status:       status,
		PlatformName: platformName,
		AddedAt:      addedAt,
	})
}

func TestDiscoveryService_Overview(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewDiscoveryService(platformRepo, itemRepo, log)

	ctx := context.Background()
	netflix := strPtr("Netflix")

	platformRepo.Create(ctx, &platform.Platform{
		UserID: 1, Name: "Netflix", Color: "#E50914", MonthlyCost: 15.49, IsSubscribed: true,
	})
	platformRepo.Create(ctx, &platform.Platform{
		UserID: 1, Name: "Hulu", Color: "#1CE783", MonthlyCost: 7.99, IsSubscribed: false,
	})

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedItem(itemRepo, 1, "Severance", watchlist.TypeShow, watchlist.StatusWatching, netflix, base.Add(2*time.Hour))
	seedItem(itemRepo, 1, "Dune", watchlist.TypeMovie, watchlist.StatusWatching, netflix, base.Add(time.Hour))
	seedItem(itemRepo, 1, "Oppenheimer", watchlist.TypeMovie, watchlist.StatusWatched, netflix, base)
	for i := 0; i < 12; i++ {
		seedItem(itemRepo, 1, fmt.Sprintf("Queued %d", i), watchlist.TypeMovie, watchlist.StatusWantToWatch,
			netflix, base.Add(time.Duration(i)*time.Minute))
	}
	// Another user's items never leak in
	seedItem(itemRepo, 2, "Someone Else's Show", watchlist.TypeShow, watchlist.StatusWatching, netflix, base)

	overview, err := service.Overview(ctx, 1)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if len(overview.ContinueWatching) != 2 {
		t.Errorf("ContinueWatching has %d items, want 2", len(overview.ContinueWatching))
	}
	if overview.ContinueWatching[0].Title != "Severance" {
		t.Errorf("ContinueWatching[0] = %q, want newest first", overview.ContinueWatching[0].Title)
	}
	if len(overview.UpNext) != 10 {
		t.Errorf("UpNext has %d items, want capped at 10", len(overview.UpNext))
	}
	if len(overview.RecentlyCompleted) != 1 {
		t.Errorf("RecentlyCompleted has %d items, want 1", len(overview.RecentlyCompleted))
	}

	stats := overview.Stats
	if stats.TotalItems != 15 {
		t.Errorf("TotalItems = %d, want 15", stats.TotalItems)
	}
	if stats.Watched != 1 || stats.Watching != 2 || stats.WantToWatch != 12 {
		t.Errorf("status counts = %d/%d/%d, want 1/2/12", stats.Watched, stats.Watching, stats.WantToWatch)
	}
	if stats.TotalPlatforms != 2 || stats.SubscribedPlatforms != 1 {
		t.Errorf("platform counts = %d/%d, want 2/1", stats.TotalPlatforms, stats.SubscribedPlatforms)
	}
	// 1 show watching (0.75h) + 13 movies watching/queued (2h each)
	if stats.EstimatedHoursRemaining != 26.8 {
		t.Errorf("EstimatedHoursRemaining = %v, want 26.8", stats.EstimatedHoursRemaining)
	}

	if len(overview.PlatformBreakdown) != 1 {
		t.Fatalf("PlatformBreakdown has %d rows, want 1", len(overview.PlatformBreakdown))
	}
	row := overview.PlatformBreakdown[0]
	if row.PlatformName != "Netflix" || row.Color != "#E50914" || !row.IsSubscribed {
		t.Errorf("breakdown row = %+v, want joined Netflix platform", row)
	}
	if row.Total != 15 || row.Watched != 1 || row.Watching != 2 || row.WantToWatch != 12 {
		t.Errorf("breakdown counts = %+v, want 15/1/2/12", row)
	}
}

func TestDiscoveryService_UnknownPlatformBreakdown(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewDiscoveryService(platformRepo, itemRepo, log)

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedItem(itemRepo, 1, "Taskmaster", watchlist.TypeShow, watchlist.StatusWatching, strPtr("channel 4"), base)

	overview, err := service.Overview(ctx, 1)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if len(overview.PlatformBreakdown) != 1 {
		t.Fatalf("PlatformBreakdown has %d rows, want 1", len(overview.PlatformBreakdown))
	}
	row := overview.PlatformBreakdown[0]
	if row.PlatformName != "Channel 4" {
		t.Errorf("PlatformName = %q, want title-cased %q", row.PlatformName, "Channel 4")
	}
	if row.Color != platform.DefaultColor {
		t.Errorf("Color = %q, want default %q", row.Color, platform.DefaultColor)
	}
	if row.IsSubscribed {
		t.Error("unknown platform should not show as subscribed")
	}
}

func TestDiscoveryService_BreakdownSortedByTotal(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewDiscoveryService(platformRepo, itemRepo, log)

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedItem(itemRepo, 1, fmt.Sprintf("Hulu %d", i), watchlist.TypeMovie, watchlist.StatusWatched, strPtr("Hulu"), base)
	}
	seedItem(itemRepo, 1, "Netflix 0", watchlist.TypeMovie, watchlist.StatusWatched, strPtr("Netflix"), base)

	overview, err := service.Overview(ctx, 1)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if len(overview.PlatformBreakdown) != 2 {
		t.Fatalf("PlatformBreakdown has %d rows, want 2", len(overview.PlatformBreakdown))
	}
	if overview.PlatformBreakdown[0].Total < overview.PlatformBreakdown[1].Total {
		t.Error("breakdown not sorted by total descending")
	}
}

func TestDiscoveryService_EmptyWatchlist(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewDiscoveryService(platformRepo, itemRepo, log)

	overview, err := service.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if len(overview.ContinueWatching) != 0 || len(overview.UpNext) != 0 || len(overview.RecentlyCompleted) != 0 {
		t.Error("sections should be empty for a fresh user")
	}
	if overview.Stats.TotalItems != 0 || overview.Stats.EstimatedHoursRemaining != 0 {
		t.Errorf("stats = %+v, want zeros", overview.Stats)
	}
	if len(overview.PlatformBreakdown) != 0 {
		t.Errorf("PlatformBreakdown has %d rows, want 0", len(overview.PlatformBreakdown))
	}
}
