package watchlist

import "context"

// Repository defines the interface for watchlist data access
type Repository interface {
	// Create inserts a new item
	Create(ctx context.Context, item *Item) error

	// GetByID retrieves an item owned by the user
	GetByID(ctx context.Context, userID, id int64) (*Item, error)

	// ListByUser retrieves the user's items newest first. status is an
	// optional filter; empty means all statuses.
	ListByUser(ctx context.Context, userID int64, status string) ([]*Item, error)

	// ListByStatus retrieves up to limit items with the given status,
	// newest first. limit <= 0 means no limit.
	ListByStatus(ctx context.Context, userID int64, status string, limit int) ([]*Item, error)

	// Update persists all fields of the item
	Update(ctx context.Context, item *Item) error

	// Delete removes an item owned by the user
	Delete(ctx context.Context, userID, id int64) error

	// StatusTypeCounts returns item counts grouped by status and type
	StatusTypeCounts(ctx context.Context, userID int64) ([]StatusTypeCount, error)

	// PlatformStatusCounts returns per-platform status counts for items
	// with a platform name, grouped by lowercase platform name
	PlatformStatusCounts(ctx context.Context, userID int64) ([]PlatformCounts, error)

	// AggregatesByPlatform returns the raw per-platform aggregates the
	// insights engine consumes, keyed by lowercase platform name
	AggregatesByPlatform(ctx context.Context, userID int64) (map[string]Aggregate, error)
}
