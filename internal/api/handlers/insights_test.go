package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/services"
	"github.com/nwatkins/streamtracker/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestInsightsHandler_Get(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	handler := NewInsightsHandler(services.NewInsightsService(platformRepo, itemRepo, log))

	ctx := context.Background()
	platformRepo.Create(ctx, &platform.Platform{
		UserID: 1, Name: "Netflix", MonthlyCost: 15.49, IsSubscribed: true,
	})
	itemRepo.Create(ctx, &watchlist.Item{
		UserID: 1, Title: "Dune", Type: watchlist.TypeMovie,
		Status: watchlist.StatusWatched, PlatformName: strPtr("Netflix"),
		AddedAt: time.Now().Add(-24 * time.Hour),
	})

	rr := httptest.NewRecorder()
	handler.Get(rr, authedRequest(http.MethodGet, "/api/v1/insights", 1, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			SubscribedPlatformCount int     `json:"subscribed_platform_count"`
			TotalMonthlySpend       float64 `json:"total_monthly_spend"`
			Recommendations         []struct {
				PlatformName string  `json:"platform_name"`
				ValueScore   float64 `json:"value_score"`
				ChurnRisk    float64 `json:"churn_risk"`
				Action       string  `json:"action"`
				Reason       string  `json:"reason"`
			} `json:"recommendations"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !env.Success {
		t.Error("success = false, want true")
	}
	if env.Data.SubscribedPlatformCount != 1 {
		t.Errorf("SubscribedPlatformCount = %d, want 1", env.Data.SubscribedPlatformCount)
	}
	if env.Data.TotalMonthlySpend != 15.49 {
		t.Errorf("TotalMonthlySpend = %v, want 15.49", env.Data.TotalMonthlySpend)
	}
	if len(env.Data.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(env.Data.Recommendations))
	}
	rec := env.Data.Recommendations[0]
	if rec.PlatformName != "Netflix" || rec.Action == "" || rec.Reason == "" {
		t.Errorf("recommendation = %+v, want populated Netflix verdict", rec)
	}
}

func TestInsightsHandler_Get_NoSubscriptions(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	handler := NewInsightsHandler(services.NewInsightsService(platformRepo, itemRepo, log))

	rr := httptest.NewRecorder()
	handler.Get(rr, authedRequest(http.MethodGet, "/api/v1/insights", 1, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var env struct {
		Data struct {
			DataCoverageNote string `json:"data_coverage_note"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.DataCoverageNote == "" {
		t.Error("expected a coverage note for an empty cohort")
	}
}

func TestDiscoveryHandler_Get(t *testing.T) {
	platformRepo := testutil.NewMockPlatformRepository()
	itemRepo := testutil.NewMockWatchlistRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	handler := NewDiscoveryHandler(services.NewDiscoveryService(platformRepo, itemRepo, log))

	ctx := context.Background()
	itemRepo.Create(ctx, &watchlist.Item{
		UserID: 1, Title: "Severance", Type: watchlist.TypeShow,
		Status: watchlist.StatusWatching, PlatformName: strPtr("Apple TV+"),
	})

	rr := httptest.NewRecorder()
	handler.Get(rr, authedRequest(http.MethodGet, "/api/v1/discovery", 1, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var env struct {
		Data struct {
			ContinueWatching []struct {
				Title string `json:"title"`
			} `json:"continue_watching"`
			Stats struct {
				TotalItems int `json:"total_items"`
			} `json:"stats"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(env.Data.ContinueWatching) != 1 || env.Data.ContinueWatching[0].Title != "Severance" {
		t.Errorf("ContinueWatching = %+v, want Severance", env.Data.ContinueWatching)
	}
	if env.Data.Stats.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", env.Data.Stats.TotalItems)
	}
}
