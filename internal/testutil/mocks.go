package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/user"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:  make(map[int64]*user.User),
		NextID: 1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	u.CreatedAt = time.Now()
	m.Users[u.ID] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, errors.NotFound("User")
}

// MockPlatformRepository is a mock implementation of platform.Repository
type MockPlatformRepository struct {
	Platforms   map[int64]*platform.Platform
	NextID      int64
	CreateError error
	ListError   error
}

func NewMockPlatformRepository() *MockPlatformRepository {
	return &MockPlatformRepository{
		Platforms: make(map[int64]*platform.Platform),
		NextID:    1,
	}
}

func (m *MockPlatformRepository) Create(ctx context.Context, p *platform.Platform) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	p.ID = m.NextID
	m.NextID++
	p.CreatedAt = time.Now()
	if p.Color == "" {
		p.Color = platform.DefaultColor
	}
	m.Platforms[p.ID] = p
	return nil
}

func (m *MockPlatformRepository) GetByID(ctx context.Context, userID, id int64) (*platform.Platform, error) {
	p, ok := m.Platforms[id]
	if !ok || p.UserID != userID {
		return nil, errors.NotFound("Platform")
	}
	return p, nil
}

func (m *MockPlatformRepository) ListByUser(ctx context.Context, userID int64) ([]*platform.Platform, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	result := make([]*platform.Platform, 0)
	for _, p := range m.Platforms {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *MockPlatformRepository) Update(ctx context.Context, p *platform.Platform) error {
	existing, ok := m.Platforms[p.ID]
	if !ok || existing.UserID != p.UserID {
		return errors.NotFound("Platform")
	}
	m.Platforms[p.ID] = p
	return nil
}

func (m *MockPlatformRepository) Delete(ctx context.Context, userID, id int64) error {
	p, ok := m.Platforms[id]
	if !ok || p.UserID != userID {
		return errors.NotFound("Platform")
	}
	delete(m.Platforms, id)
	return nil
}

// MockWatchlistRepository is a mock implementation of watchlist.Repository
type MockWatchlistRepository struct {
	Items       map[int64]*watchlist.Item
	NextID      int64
	CreateError error
	ListError   error
}

func NewMockWatchlistRepository() *MockWatchlistRepository {
	return &MockWatchlistRepository{
		Items:  make(map[int64]*watchlist.Item),
		NextID: 1,
	}
}

func (m *MockWatchlistRepository) Create(ctx context.Context, item *watchlist.Item) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	item.ID = m.NextID
	m.NextID++
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	m.Items[item.ID] = item
	return nil
}

func (m *MockWatchlistRepository) GetByID(ctx context.Context, userID, id int64) (*watchlist.Item, error) {
	item, ok := m.Items[id]
	if !ok || item.UserID != userID {
		return nil, errors.NotFound("Watchlist item")
	}
	return item, nil
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID int64, status string) ([]*watchlist.Item, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	result := make([]*watchlist.Item, 0)
	for _, item := range m.Items {
		if item.UserID != userID {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		result = append(result, item)
	}
	sortNewestFirst(result)
	return result, nil
}

func (m *MockWatchlistRepository) ListByStatus(ctx context.Context, userID int64, status string, limit int) ([]*watchlist.Item, error) {
	result, err := m.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockWatchlistRepository) Update(ctx context.Context, item *watchlist.Item) error {
	existing, ok := m.Items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return errors.NotFound("Watchlist item")
	}
	m.Items[item.ID] = item
	return nil
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, userID, id int64) error {
	item, ok := m.Items[id]
	if !ok || item.UserID != userID {
		return errors.NotFound("Watchlist item")
	}
	delete(m.Items, id)
	return nil
}

func (m *MockWatchlistRepository) StatusTypeCounts(ctx context.Context, userID int64) ([]watchlist.StatusTypeCount, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	counts := make(map[[2]string]int)
	for _, item := range m.Items {
		if item.UserID == userID {
			counts[[2]string{item.Status, item.Type}]++
		}
	}
	result := make([]watchlist.StatusTypeCount, 0, len(counts))
	for key, n := range counts {
		result = append(result, watchlist.StatusTypeCount{Status: key[0], Type: key[1], Count: n})
	}
	return result, nil
}

func (m *MockWatchlistRepository) PlatformStatusCounts(ctx context.Context, userID int64) ([]watchlist.PlatformCounts, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	byName := make(map[string]*watchlist.PlatformCounts)
	for _, item := range m.Items {
		if item.UserID != userID || item.PlatformName == nil || *item.PlatformName == "" {
			continue
		}
		key := strings.ToLower(*item.PlatformName)
		c, ok := byName[key]
		if !ok {
			c = &watchlist.PlatformCounts{PlatformName: key}
			byName[key] = c
		}
		switch item.Status {
		case watchlist.StatusWatched:
			c.Watched++
		case watchlist.StatusWatching:
			c.Watching++
		case watchlist.StatusWantToWatch:
			c.WantToWatch++
		}
	}
	result := make([]watchlist.PlatformCounts, 0, len(byName))
	for _, c := range byName {
		result = append(result, *c)
	}
	return result, nil
}

func (m *MockWatchlistRepository) AggregatesByPlatform(ctx context.Context, userID int64) (map[string]watchlist.Aggregate, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	aggregates := make(map[string]watchlist.Aggregate)
	for _, item := range m.Items {
		if item.UserID != userID || item.PlatformName == nil || *item.PlatformName == "" {
			continue
		}
		key := strings.ToLower(*item.PlatformName)
		agg := aggregates[key]
		agg.TotalItems++
		switch item.Status {
		case watchlist.StatusWatched:
			agg.WatchedCount++
		case watchlist.StatusWatching:
			agg.WatchingCount++
		case watchlist.StatusWantToWatch:
			agg.WantCount++
		}
		switch item.Type {
		case watchlist.TypeMovie:
			agg.MovieCount++
		case watchlist.TypeShow:
			agg.ShowCount++
		}
		if agg.MostRecentAdded == nil || item.AddedAt.After(*agg.MostRecentAdded) {
			t := item.AddedAt
			agg.MostRecentAdded = &t
		}
		aggregates[key] = agg
	}
	return aggregates, nil
}

func sortNewestFirst(items []*watchlist.Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].AddedAt.After(items[j].AddedAt)
	})
}
