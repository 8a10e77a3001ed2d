package platform

import "context"

// Service defines the interface for platform business logic
type Service interface {
	// List retrieves the user's platforms ordered by name
	List(ctx context.Context, userID int64) ([]*Platform, error)

	// Create adds a new platform for the user
	Create(ctx context.Context, userID int64, p *Platform) (*Platform, error)

	// Update applies a partial update to a platform owned by the user
	Update(ctx context.Context, userID, id int64, patch Patch) (*Platform, error)

	// Delete removes a platform owned by the user
	Delete(ctx context.Context, userID, id int64) error
}
