package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
)

// WatchlistRepository implements watchlist.Repository
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *sql.DB) watchlist.Repository {
	return &WatchlistRepository{db: db}
}

const itemColumns = "id, user_id, title, type, status, platform_name, poster_url, notes, added_at"

// Create inserts a new item
func (r *WatchlistRepository) Create(ctx context.Context, item *watchlist.Item) error {
	now := time.Now()
	item.AddedAt = now

	query := `
		INSERT INTO watchlist (user_id, title, type, status, platform_name, poster_url, notes, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.UserID, item.Title, item.Type, item.Status,
		item.PlatformName, item.PosterURL, item.Notes, now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create watchlist item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get watchlist item ID", err)
	}

	item.ID = id
	return nil
}

// GetByID retrieves an item owned by the user
func (r *WatchlistRepository) GetByID(ctx context.Context, userID, id int64) (*watchlist.Item, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM watchlist WHERE id = ? AND user_id = ?", id, userID,
	)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Watchlist item")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get watchlist item", err)
	}

	return item, nil
}

// ListByUser retrieves the user's items newest first, optionally
// filtered by status.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID int64, status string) ([]*watchlist.Item, error) {
	query := "SELECT " + itemColumns + " FROM watchlist WHERE user_id = ?"
	args := []interface{}{userID}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY added_at DESC, id DESC"

	return r.queryItems(ctx, query, args...)
}

// ListByStatus retrieves up to limit items with the given status, newest first
func (r *WatchlistRepository) ListByStatus(ctx context.Context, userID int64, status string, limit int) ([]*watchlist.Item, error) {
	query := "SELECT " + itemColumns + " FROM watchlist WHERE user_id = ? AND status = ? ORDER BY added_at DESC, id DESC"
	args := []interface{}{userID, status}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return r.queryItems(ctx, query, args...)
}

// Update persists all fields of the item
func (r *WatchlistRepository) Update(ctx context.Context, item *watchlist.Item) error {
	query := `
		UPDATE watchlist
		SET title = ?, type = ?, status = ?, platform_name = ?, poster_url = ?, notes = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Title, item.Type, item.Status, item.PlatformName,
		item.PosterURL, item.Notes, item.ID, item.UserID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update watchlist item", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to check update result", err)
	}
	if affected == 0 {
		return errors.NotFound("Watchlist item")
	}

	return nil
}

// Delete removes an item owned by the user
func (r *WatchlistRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM watchlist WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to delete watchlist item", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to check delete result", err)
	}
	if affected == 0 {
		return errors.NotFound("Watchlist item")
	}

	return nil
}

// StatusTypeCounts returns item counts grouped by status and type
func (r *WatchlistRepository) StatusTypeCounts(ctx context.Context, userID int64) ([]watchlist.StatusTypeCount, error) {
	query := `
		SELECT status, type, COUNT(*)
		FROM watchlist WHERE user_id = ?
		GROUP BY status, type
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count watchlist items", err)
	}
	defer rows.Close()

	counts := make([]watchlist.StatusTypeCount, 0)
	for rows.Next() {
		var c watchlist.StatusTypeCount
		if err := rows.Scan(&c.Status, &c.Type, &c.Count); err != nil {
			return nil, errors.DatabaseError("Failed to scan count row", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate count rows", err)
	}

	return counts, nil
}

// PlatformStatusCounts returns per-platform status counts grouped by
// lowercase platform name. Items without a platform name are skipped.
func (r *WatchlistRepository) PlatformStatusCounts(ctx context.Context, userID int64) ([]watchlist.PlatformCounts, error) {
	query := `
		SELECT lower(platform_name),
			SUM(CASE WHEN status = 'watched' THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'watching' THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'want_to_watch' THEN 1 ELSE 0 END)
		FROM watchlist
		WHERE user_id = ? AND platform_name IS NOT NULL AND platform_name != ''
		GROUP BY lower(platform_name)
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count platform items", err)
	}
	defer rows.Close()

	counts := make([]watchlist.PlatformCounts, 0)
	for rows.Next() {
		var c watchlist.PlatformCounts
		if err := rows.Scan(&c.PlatformName, &c.Watched, &c.Watching, &c.WantToWatch); err != nil {
			return nil, errors.DatabaseError("Failed to scan platform count row", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate platform count rows", err)
	}

	return counts, nil
}

// AggregatesByPlatform returns the raw per-platform aggregates keyed by
// lowercase platform name
func (r *WatchlistRepository) AggregatesByPlatform(ctx context.Context, userID int64) (map[string]watchlist.Aggregate, error) {
	query := `
		SELECT lower(platform_name),
			COUNT(*),
			SUM(CASE WHEN status = 'watched' THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'watching' THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'want_to_watch' THEN 1 ELSE 0 END),
			SUM(CASE WHEN type = 'movie' THEN 1 ELSE 0 END),
			SUM(CASE WHEN type = 'show' THEN 1 ELSE 0 END),
			MAX(added_at)
		FROM watchlist
		WHERE user_id = ? AND platform_name IS NOT NULL AND platform_name != ''
		GROUP BY lower(platform_name)
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to aggregate watchlist items", err)
	}
	defer rows.Close()

	aggregates := make(map[string]watchlist.Aggregate)
	for rows.Next() {
		var name string
		var agg watchlist.Aggregate
		var mostRecent sql.NullInt64

		err := rows.Scan(
			&name, &agg.TotalItems, &agg.WatchedCount, &agg.WatchingCount,
			&agg.WantCount, &agg.MovieCount, &agg.ShowCount, &mostRecent,
		)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan aggregate row", err)
		}

		if mostRecent.Valid {
			t := time.Unix(mostRecent.Int64, 0)
			agg.MostRecentAdded = &t
		}
		aggregates[strings.ToLower(name)] = agg
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate aggregate rows", err)
	}

	return aggregates, nil
}

func (r *WatchlistRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]*watchlist.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list watchlist items", err)
	}
	defer rows.Close()

	items := make([]*watchlist.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan watchlist item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate watchlist items", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*watchlist.Item, error) {
	var item watchlist.Item
	var addedAt int64

	err := row.Scan(
		&item.ID, &item.UserID, &item.Title, &item.Type, &item.Status,
		&item.PlatformName, &item.PosterURL, &item.Notes, &addedAt,
	)
	if err != nil {
		return nil, err
	}

	item.AddedAt = time.Unix(addedAt, 0)
	return &item, nil
}
