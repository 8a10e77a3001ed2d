package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/nwatkins/streamtracker/internal/domain/discovery"
	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/domain/watchlist"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
)

// Section limits for the discovery dashboard. Continue-watching is
// unbounded because an in-progress list past a handful of items is a
// signal in itself.
const (
	upNextLimit            = 10
	recentlyCompletedLimit = 5
)

// Rough viewing time estimates in hours per item
var hoursPerItem = map[string]float64{
	watchlist.TypeMovie: 2.0,
	watchlist.TypeShow:  0.75,
}

// DiscoveryService implements discovery.Service
type DiscoveryService struct {
	platforms platform.Repository
	items     watchlist.Repository
	log       *logger.Logger
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(platforms platform.Repository, items watchlist.Repository, log *logger.Logger) discovery.Service {
	return &DiscoveryService{
		platforms: platforms,
		items:     items,
		log:       log,
	}
}

// Overview builds the discovery dashboard for the user
func (s *DiscoveryService) Overview(ctx context.Context, userID int64) (*discovery.Overview, error) {
	continueWatching, err := s.items.ListByStatus(ctx, userID, watchlist.StatusWatching, 0)
	if err != nil {
		return nil, err
	}
	upNext, err := s.items.ListByStatus(ctx, userID, watchlist.StatusWantToWatch, upNextLimit)
	if err != nil {
		return nil, err
	}
	recentlyCompleted, err := s.items.ListByStatus(ctx, userID, watchlist.StatusWatched, recentlyCompletedLimit)
	if err != nil {
		return nil, err
	}

	counts, err := s.items.StatusTypeCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	allPlatforms, err := s.platforms.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	platformCounts, err := s.items.PlatformStatusCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &discovery.Overview{
		ContinueWatching:  summarize(continueWatching),
		UpNext:            summarize(upNext),
		RecentlyCompleted: summarize(recentlyCompleted),
		Stats:             buildStats(counts, allPlatforms),
		PlatformBreakdown: buildBreakdown(platformCounts, allPlatforms),
	}, nil
}

func buildStats(counts []watchlist.StatusTypeCount, platforms []*platform.Platform) discovery.Stats {
	byStatus := map[string]int{}
	hoursRemaining := 0.0

	for _, c := range counts {
		byStatus[c.Status] += c.Count
		if c.Status == watchlist.StatusWatching || c.Status == watchlist.StatusWantToWatch {
			hours, ok := hoursPerItem[c.Type]
			if !ok {
				hours = 1.0
			}
			hoursRemaining += float64(c.Count) * hours
		}
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	subscribed := 0
	for _, p := range platforms {
		if p.IsSubscribed {
			subscribed++
		}
	}

	return discovery.Stats{
		TotalItems:              total,
		Watched:                 byStatus[watchlist.StatusWatched],
		Watching:                byStatus[watchlist.StatusWatching],
		WantToWatch:             byStatus[watchlist.StatusWantToWatch],
		TotalPlatforms:          len(platforms),
		SubscribedPlatforms:     subscribed,
		EstimatedHoursRemaining: math.Round(hoursRemaining*10) / 10,
	}
}

// buildBreakdown joins per-platform item counts to the user's platforms
// case-insensitively. Items naming an unknown platform still get a row,
// with a title-cased name and the default color.
func buildBreakdown(counts []watchlist.PlatformCounts, platforms []*platform.Platform) []discovery.PlatformBreakdown {
	byName := make(map[string]*platform.Platform, len(platforms))
	for _, p := range platforms {
		byName[strings.ToLower(p.Name)] = p
	}

	breakdown := make([]discovery.PlatformBreakdown, 0, len(counts))
	for _, c := range counts {
		row := discovery.PlatformBreakdown{
			PlatformName: titleCase(c.PlatformName),
			Color:        platform.DefaultColor,
			Total:        c.Watched + c.Watching + c.WantToWatch,
			Watched:      c.Watched,
			Watching:     c.Watching,
			WantToWatch:  c.WantToWatch,
		}
		if p, ok := byName[c.PlatformName]; ok {
			row.PlatformName = p.Name
			row.Color = p.Color
			row.IsSubscribed = p.IsSubscribed
		}
		breakdown = append(breakdown, row)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}

func summarize(items []*watchlist.Item) []discovery.ItemSummary {
	out := make([]discovery.ItemSummary, 0, len(items))
	for _, item := range items {
		out = append(out, discovery.ItemSummary{
			ID:           item.ID,
			Title:        item.Title,
			Type:         item.Type,
			Status:       item.Status,
			PlatformName: item.PlatformName,
			PosterURL:    item.PosterURL,
			AddedAt:      item.AddedAt,
		})
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
