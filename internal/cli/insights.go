package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show keep/review/cancel recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			report, err := apiClient.Insights(ctx)
			if err != nil {
				return fmt.Errorf("failed to get insights: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(report)
			}

			fmt.Printf("Monthly spend: $%.2f across %d subscribed platform(s)\n",
				report.TotalMonthlySpend, report.SubscribedPlatformCount)
			if report.DataCoverageNote != "" {
				fmt.Println(report.DataCoverageNote)
			}
			fmt.Println()

			if len(report.Recommendations) == 0 {
				return nil
			}

			table := NewTable("PLATFORM", "COST", "SCORE", "RISK", "ACTION", "CONFIDENCE")
			for _, rec := range report.Recommendations {
				table.AddRow(
					rec.PlatformName,
					formatCost(rec.MonthlyCost),
					fmt.Sprintf("%.1f", rec.ValueScore),
					fmt.Sprintf("%.3f", rec.ChurnRisk),
					formatAction(rec.Action),
					rec.Confidence,
				)
			}
			table.Render()

			fmt.Println()
			for _, rec := range report.Recommendations {
				fmt.Printf("%s: %s\n", rec.PlatformName, rec.Reason)
			}
			return nil
		},
	}
}
