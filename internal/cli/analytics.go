package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"wash-admin/internal/role"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Business metrics over the current data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var analyticsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavAnalytics); err != nil {
			return err
		}

		summary, err := d.client.AnalyticsSummary(cmd.Context())
		if err != nil {
			return err
		}

		printTitle("Summary")
		fmt.Printf("Bookings:         %d total, %d completed, %d cancelled\n",
			summary.TotalBookings, summary.CompletedBookings, summary.CancelledBookings)
		fmt.Printf("Revenue:          %.2f\n", summary.Revenue)
		fmt.Printf("Average rating:   %.1f\n", summary.AverageRating)
		fmt.Printf("Active services:  %d\n", summary.ActiveServices)

		if len(summary.BookingsByStatus) > 0 {
			statuses := make([]string, 0, len(summary.BookingsByStatus))
			for s := range summary.BookingsByStatus {
				statuses = append(statuses, s)
			}
			sort.Strings(statuses)

			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				rows = append(rows, []string{s, fmt.Sprintf("%d", summary.BookingsByStatus[s])})
			}
			fmt.Println(renderTable([]string{"Status", "Count"}, rows))
		}
		return nil
	},
}

func init() {
	analyticsCmd.AddCommand(analyticsSummaryCmd)
	rootCmd.AddCommand(analyticsCmd)
}
