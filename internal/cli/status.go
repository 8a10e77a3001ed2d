package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			overview, err := apiClient.Discovery(ctx)
			if err != nil {
				return fmt.Errorf("failed to get dashboard: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(overview)
			}

			stats := overview.Stats
			fmt.Println("StreamTracker Dashboard")
			fmt.Println(strings.Repeat("=", 40))
			fmt.Printf("  Watchlist:   %d items (%d watched, %d watching, %d queued)\n",
				stats.TotalItems, stats.Watched, stats.Watching, stats.WantToWatch)
			fmt.Printf("  Platforms:   %d subscribed (%d total)\n",
				stats.SubscribedPlatforms, stats.TotalPlatforms)
			fmt.Printf("  Remaining:   ~%.1f hours of queued content\n",
				stats.EstimatedHoursRemaining)

			if len(overview.ContinueWatching) > 0 {
				fmt.Println("\nContinue watching:")
				for _, item := range overview.ContinueWatching {
					fmt.Printf("  - %s\n", truncate(item.Title, 60))
				}
			}

			if len(overview.PlatformBreakdown) > 0 {
				fmt.Println()
				table := NewTable("PLATFORM", "TOTAL", "WATCHED", "WATCHING", "QUEUED")
				for _, row := range overview.PlatformBreakdown {
					table.AddRow(
						row.PlatformName,
						fmt.Sprintf("%d", row.Total),
						fmt.Sprintf("%d", row.Watched),
						fmt.Sprintf("%d", row.Watching),
						fmt.Sprintf("%d", row.WantToWatch),
					)
				}
				table.Render()
			}

			return nil
		},
	}
}
