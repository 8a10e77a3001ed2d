package services

import (
	"context"
	"strings"

	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
)

// WatchlistService implements watchlist.Service
type WatchlistService struct {
	repo watchlist.Repository
	log  *logger.Logger
}

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(repo watchlist.Repository, log *logger.Logger) watchlist.Service {
	return &WatchlistService{repo: repo, log: log}
}

// List retrieves the user's items, optionally filtered by status
func (s *WatchlistService) List(ctx context.Context, userID int64, status string) ([]*watchlist.Item, error) {
	if status != "" && !validStatus(status) {
		return nil, errors.BadRequest("Invalid status filter")
	}
	return s.repo.ListByUser(ctx, userID, status)
}

// Create adds a new item for the user
func (s *WatchlistService) Create(ctx context.Context, userID int64, item *watchlist.Item) (*watchlist.Item, error) {
	item.UserID = userID
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return nil, errors.BadRequest("Title is required")
	}
	if !validType(item.Type) {
		return nil, errors.BadRequest("Type must be movie or show")
	}
	if item.Status == "" {
		item.Status = watchlist.StatusWantToWatch
	}
	if !validStatus(item.Status) {
		return nil, errors.BadRequest("Invalid status")
	}
	normalizePlatformName(item)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"user_id": userID,
		"item_id": item.ID,
	}).Info("watchlist item created")

	return item, nil
}

// Update applies a partial update to an item owned by the user
func (s *WatchlistService) Update(ctx context.Context, userID, id int64, patch watchlist.Patch) (*watchlist.Item, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, errors.BadRequest("Title is required")
		}
		patch.Title = &title
	}
	if patch.Type != nil && !validType(*patch.Type) {
		return nil, errors.BadRequest("Type must be movie or show")
	}
	if patch.Status != nil && !validStatus(*patch.Status) {
		return nil, errors.BadRequest("Invalid status")
	}

	item.Apply(patch)
	normalizePlatformName(item)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes an item owned by the user
func (s *WatchlistService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"user_id": userID,
		"item_id": id,
	}).Info("watchlist item deleted")

	return nil
}

// normalizePlatformName trims the platform name and stores nil when it
// is blank so aggregates never see empty-string platforms.
func normalizePlatformName(item *watchlist.Item) {
	if item.PlatformName == nil {
		return
	}
	name := strings.TrimSpace(*item.PlatformName)
	if name == "" {
		item.PlatformName = nil
		return
	}
	item.PlatformName = &name
}

func validType(t string) bool {
	return t == watchlist.TypeMovie || t == watchlist.TypeShow
}

func validStatus(s string) bool {
	switch s {
	case watchlist.StatusWantToWatch, watchlist.StatusWatching, watchlist.StatusWatched:
		return true
	}
	return false
}
