package platform

import "context"

// Repository defines the interface for platform data access
type Repository interface {
	// Create inserts a new platform
	Create(ctx context.Context, p *Platform) error

	// GetByID retrieves a platform owned by the user
	GetByID(ctx context.Context, userID, id int64) (*Platform, error)

	// ListByUser retrieves all of a user's platforms ordered by name.
	// This ordering is the deterministic cohort order used by the
	// insights engine.
	ListByUser(ctx context.Context, userID int64) ([]*Platform, error)

	// Update persists all fields of the platform
	Update(ctx context.Context, p *Platform) error

	// Delete removes a platform owned by the user
	Delete(ctx context.Context, userID, id int64) error
}
