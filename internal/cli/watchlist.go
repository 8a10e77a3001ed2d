package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nwatkins/streamtracker/pkg/client"
)

func newWatchlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watchlist",
		Aliases: []string{"wl"},
		Short:   "Manage your watchlist",
	}

	cmd.AddCommand(newWatchlistListCmd())
	cmd.AddCommand(newWatchlistAddCmd())
	cmd.AddCommand(newWatchlistUpdateCmd())
	cmd.AddCommand(newWatchlistDeleteCmd())

	return cmd
}

func newWatchlistListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watchlist items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			items, err := apiClient.Watchlist().List(ctx, status)
			if err != nil {
				return fmt.Errorf("failed to list watchlist: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(items)
			}

			if len(items) == 0 {
				fmt.Println("Watchlist is empty. Add something with 'streamtracker watchlist add'.")
				return nil
			}

			table := NewTable("ID", "TITLE", "TYPE", "STATUS", "PLATFORM")
			for _, item := range items {
				platformName := "-"
				if item.PlatformName != nil {
					platformName = *item.PlatformName
				}
				table.AddRow(
					strconv.FormatInt(item.ID, 10),
					truncate(item.Title, 40),
					item.Type,
					formatStatus(item.Status),
					platformName,
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (want_to_watch, watching, watched)")

	return cmd
}

func newWatchlistAddCmd() *cobra.Command {
	var (
		itemType     string
		status       string
		platformName string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a movie or show to your watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.CreateWatchlistItemRequest{
				Title:  args[0],
				Type:   itemType,
				Status: status,
			}
			if platformName != "" {
				req.PlatformName = &platformName
			}
			if notes != "" {
				req.Notes = &notes
			}

			ctx := context.Background()
			item, err := apiClient.Watchlist().Create(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}

			fmt.Printf("Added %q (ID %d)\n", item.Title, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&itemType, "type", "movie", "item type (movie or show)")
	cmd.Flags().StringVar(&status, "status", "", "watch status (default want_to_watch)")
	cmd.Flags().StringVar(&platformName, "platform", "", "platform name")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")

	return cmd
}

func newWatchlistUpdateCmd() *cobra.Command {
	var (
		title        string
		itemType     string
		status       string
		platformName string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a watchlist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item ID: %s", args[0])
			}

			req := client.UpdateWatchlistItemRequest{}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("type") {
				req.Type = &itemType
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if cmd.Flags().Changed("platform") {
				req.PlatformName = &platformName
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}

			ctx := context.Background()
			item, err := apiClient.Watchlist().Update(ctx, id, req)
			if err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}

			fmt.Printf("Updated %q\n", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "item title")
	cmd.Flags().StringVar(&itemType, "type", "", "item type (movie or show)")
	cmd.Flags().StringVar(&status, "status", "", "watch status")
	cmd.Flags().StringVar(&platformName, "platform", "", "platform name")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")

	return cmd
}

func newWatchlistDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a watchlist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item ID: %s", args[0])
			}

			ctx := context.Background()
			if err := apiClient.Watchlist().Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}

			fmt.Println("Item deleted")
			return nil
		},
	}
}
