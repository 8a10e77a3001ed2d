package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
)

// PlatformRepository implements platform.Repository
type PlatformRepository struct {
	db *sql.DB
}

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *sql.DB) platform.Repository {
	return &PlatformRepository{db: db}
}

// Create inserts a new platform
func (r *PlatformRepository) Create(ctx context.Context, p *platform.Platform) error {
	now := time.Now()
	p.CreatedAt = now
	if p.Color == "" {
		p.Color = platform.DefaultColor
	}

	query := `
		INSERT INTO platforms (user_id, name, color, monthly_cost, is_subscribed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Color, p.MonthlyCost, boolToInt(p.IsSubscribed), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create platform", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get platform ID", err)
	}

	p.ID = id
	return nil
}

// GetByID retrieves a platform owned by the user
func (r *PlatformRepository) GetByID(ctx context.Context, userID, id int64) (*platform.Platform, error) {
	query := `
		SELECT id, user_id, name, color, monthly_cost, is_subscribed, created_at
		FROM platforms WHERE id = ? AND user_id = ?
	`

	var p platform.Platform
	var isSubscribed int
	var createdAt int64

	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Color, &p.MonthlyCost, &isSubscribed, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Platform")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get platform", err)
	}

	p.IsSubscribed = isSubscribed != 0
	p.CreatedAt = time.Unix(createdAt, 0)
	return &p, nil
}

// ListByUser retrieves all of a user's platforms ordered by name
func (r *PlatformRepository) ListByUser(ctx context.Context, userID int64) ([]*platform.Platform, error) {
	query := `
		SELECT id, user_id, name, color, monthly_cost, is_subscribed, created_at
		FROM platforms WHERE user_id = ?
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list platforms", err)
	}
	defer rows.Close()

	platforms := make([]*platform.Platform, 0)
	for rows.Next() {
		var p platform.Platform
		var isSubscribed int
		var createdAt int64

		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Color, &p.MonthlyCost, &isSubscribed, &createdAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan platform", err)
		}

		p.IsSubscribed = isSubscribed != 0
		p.CreatedAt = time.Unix(createdAt, 0)
		platforms = append(platforms, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate platforms", err)
	}

	return platforms, nil
}

// Update persists all fields of the platform
func (r *PlatformRepository) Update(ctx context.Context, p *platform.Platform) error {
	query := `
		UPDATE platforms
		SET name = ?, color = ?, monthly_cost = ?, is_subscribed = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Color, p.MonthlyCost, boolToInt(p.IsSubscribed), p.ID, p.UserID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update platform", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to check update result", err)
	}
	if affected == 0 {
		return errors.NotFound("Platform")
	}

	return nil
}

// Delete removes a platform owned by the user
func (r *PlatformRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM platforms WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to delete platform", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to check delete result", err)
	}
	if affected == 0 {
		return errors.NotFound("Platform")
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
