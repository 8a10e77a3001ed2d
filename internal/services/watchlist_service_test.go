package services

import (
	"context"
	"testing"

	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/testutil"
)

func newWatchlistService(repo *testutil.MockWatchlistRepository) watchlist.Service {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewWatchlistService(repo, log)
}

func TestWatchlistService_Create(t *testing.T) {
	tests := []struct {
		name         string
		input        *watchlist.Item
		wantErr      bool
		wantStatus   string
		wantPlatform *string
	}{
		{
			name:       "valid item",
			input:      &watchlist.Item{Title: "Dune", Type: watchlist.TypeMovie, Status: watchlist.StatusWatching},
			wantStatus: watchlist.StatusWatching,
		},
		{
			name:       "status defaults to want_to_watch",
			input:      &watchlist.Item{Title: "Severance", Type: watchlist.TypeShow},
			wantStatus: watchlist.StatusWantToWatch,
		},
		{
			name:         "platform name trimmed",
			input:        &watchlist.Item{Title: "Dune", Type: watchlist.TypeMovie, PlatformName: strPtr("  Netflix  ")},
			wantStatus:   watchlist.StatusWantToWatch,
			wantPlatform: strPtr("Netflix"),
		},
		{
			name:         "blank platform name dropped",
			input:        &watchlist.Item{Title: "Dune", Type: watchlist.TypeMovie, PlatformName: strPtr("   ")},
			wantStatus:   watchlist.StatusWantToWatch,
			wantPlatform: nil,
		},
		{
			name:    "blank title rejected",
			input:   &watchlist.Item{Title: "  ", Type: watchlist.TypeMovie},
			wantErr: true,
		},
		{
			name:    "unknown type rejected",
			input:   &watchlist.Item{Title: "Dune", Type: "documentary"},
			wantErr: true,
		},
		{
			name:    "unknown status rejected",
			input:   &watchlist.Item{Title: "Dune", Type: watchlist.TypeMovie, Status: "paused"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockWatchlistRepository()
			service := newWatchlistService(repo)

			item, err := service.Create(context.Background(), 1, tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				appErr, ok := err.(*errors.AppError)
				if !ok || appErr.Code != errors.ErrCodeBadRequest {
					t.Errorf("error = %v, want bad request", err)
				}
				return
			}

			if item.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", item.Status, tt.wantStatus)
			}
			if (item.PlatformName == nil) != (tt.wantPlatform == nil) {
				t.Fatalf("PlatformName = %v, want %v", item.PlatformName, tt.wantPlatform)
			}
			if tt.wantPlatform != nil && *item.PlatformName != *tt.wantPlatform {
				t.Errorf("PlatformName = %q, want %q", *item.PlatformName, *tt.wantPlatform)
			}
			if item.UserID != 1 {
				t.Errorf("UserID = %d, want 1", item.UserID)
			}
		})
	}
}

func TestWatchlistService_List(t *testing.T) {
	repo := testutil.NewMockWatchlistRepository()
	service := newWatchlistService(repo)
	ctx := context.Background()

	for _, status := range []string{watchlist.StatusWatched, watchlist.StatusWatching, watchlist.StatusWatching} {
		if _, err := service.Create(ctx, 1, &watchlist.Item{Title: "x", Type: watchlist.TypeMovie, Status: status}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := service.List(ctx, 1, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered list has %d items, want 3", len(all))
	}

	watching, err := service.List(ctx, 1, watchlist.StatusWatching)
	if err != nil {
		t.Fatalf("List(watching) error = %v", err)
	}
	if len(watching) != 2 {
		t.Errorf("filtered list has %d items, want 2", len(watching))
	}

	if _, err := service.List(ctx, 1, "bogus"); err == nil {
		t.Error("List() with bogus status filter should fail")
	}
}

func TestWatchlistService_Update(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (watchlist.Service, *watchlist.Item) {
		repo := testutil.NewMockWatchlistRepository()
		service := newWatchlistService(repo)
		item, err := service.Create(ctx, 1, &watchlist.Item{
			Title: "Dune", Type: watchlist.TypeMovie, PlatformName: strPtr("Netflix"),
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return service, item
	}

	t.Run("status transition", func(t *testing.T) {
		service, item := setup(t)
		status := watchlist.StatusWatched

		updated, err := service.Update(ctx, 1, item.ID, watchlist.Patch{Status: &status})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Status != watchlist.StatusWatched {
			t.Errorf("Status = %q, want watched", updated.Status)
		}
		if updated.Title != "Dune" {
			t.Errorf("Title = %q, want unchanged", updated.Title)
		}
	})

	t.Run("invalid patch status", func(t *testing.T) {
		service, item := setup(t)
		status := "paused"

		if _, err := service.Update(ctx, 1, item.ID, watchlist.Patch{Status: &status}); err == nil {
			t.Error("Update() with invalid status should fail")
		}
	})

	t.Run("clearing platform name", func(t *testing.T) {
		service, item := setup(t)
		blank := "  "

		updated, err := service.Update(ctx, 1, item.ID, watchlist.Patch{PlatformName: &blank})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.PlatformName != nil {
			t.Errorf("PlatformName = %q, want nil", *updated.PlatformName)
		}
	})

	t.Run("other user's item is invisible", func(t *testing.T) {
		service, item := setup(t)
		status := watchlist.StatusWatched

		_, err := service.Update(ctx, 2, item.ID, watchlist.Patch{Status: &status})
		appErr, ok := err.(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeNotFound {
			t.Errorf("error = %v, want not found", err)
		}
	})
}

func TestWatchlistService_Delete(t *testing.T) {
	repo := testutil.NewMockWatchlistRepository()
	service := newWatchlistService(repo)
	ctx := context.Background()

	item, err := service.Create(ctx, 1, &watchlist.Item{Title: "Dune", Type: watchlist.TypeMovie})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := service.Delete(ctx, 1, item.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := service.Delete(ctx, 1, item.ID); err == nil {
		t.Error("second delete should fail")
	}
}
