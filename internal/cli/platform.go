package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nwatkins/streamtracker/pkg/client"
)

func newPlatformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "platform",
		Aliases: []string{"platforms"},
		Short:   "Manage streaming platforms",
	}

	cmd.AddCommand(newPlatformListCmd())
	cmd.AddCommand(newPlatformAddCmd())
	cmd.AddCommand(newPlatformUpdateCmd())
	cmd.AddCommand(newPlatformDeleteCmd())

	return cmd
}

func newPlatformListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			platforms, err := apiClient.Platforms().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list platforms: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(platforms)
			}

			if len(platforms) == 0 {
				fmt.Println("No platforms yet. Add one with 'streamtracker platform add'.")
				return nil
			}

			table := NewTable("ID", "NAME", "COST", "SUBSCRIBED")
			for _, p := range platforms {
				subscribed := "no"
				if p.IsSubscribed {
					subscribed = "yes"
				}
				table.AddRow(
					strconv.FormatInt(p.ID, 10),
					p.Name,
					formatCost(p.MonthlyCost),
					subscribed,
				)
			}
			table.Render()
			return nil
		},
	}
}

func newPlatformAddCmd() *cobra.Command {
	var (
		color      string
		cost       float64
		subscribed bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := apiClient.Platforms().Create(ctx, client.CreatePlatformRequest{
				Name:         args[0],
				Color:        color,
				MonthlyCost:  cost,
				IsSubscribed: &subscribed,
			})
			if err != nil {
				return fmt.Errorf("failed to add platform: %w", err)
			}

			fmt.Printf("Added platform %s (ID %d)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "monthly cost")
	cmd.Flags().BoolVar(&subscribed, "subscribed", false, "mark as subscribed")

	return cmd
}

func newPlatformUpdateCmd() *cobra.Command {
	var (
		name       string
		color      string
		cost       float64
		subscribed bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid platform ID: %s", args[0])
			}

			req := client.UpdatePlatformRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("color") {
				req.Color = &color
			}
			if cmd.Flags().Changed("cost") {
				req.MonthlyCost = &cost
			}
			if cmd.Flags().Changed("subscribed") {
				req.IsSubscribed = &subscribed
			}

			ctx := context.Background()
			p, err := apiClient.Platforms().Update(ctx, id, req)
			if err != nil {
				return fmt.Errorf("failed to update platform: %w", err)
			}

			fmt.Printf("Updated platform %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "platform name")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "monthly cost")
	cmd.Flags().BoolVar(&subscribed, "subscribed", false, "subscription state")

	return cmd
}

func newPlatformDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid platform ID: %s", args[0])
			}

			ctx := context.Background()
			if err := apiClient.Platforms().Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete platform: %w", err)
			}

			fmt.Println("Platform deleted")
			return nil
		},
	}
}
