package watchlist

import "context"

// Service defines the interface for watchlist business logic
type Service interface {
	// List retrieves the user's items, optionally filtered by status
	List(ctx context.Context, userID int64, status string) ([]*Item, error)

	// Create adds a new item for the user
	Create(ctx context.Context, userID int64, item *Item) (*Item, error)

	// Update applies a partial update to an item owned by the user
	Update(ctx context.Context, userID, id int64, patch Patch) (*Item, error)

	// Delete removes an item owned by the user
	Delete(ctx context.Context, userID, id int64) error
}
