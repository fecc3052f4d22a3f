package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Moderate customer reviews",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavReviews); err != nil {
			return err
		}

		reviews, err := d.client.Reviews(cmd.Context())
		if err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		rows := make([][]string, 0, len(reviews))
		for _, r := range reviews {
			if status != "" && r.Status != status {
				continue
			}
			rows = append(rows, []string{
				shortID(r.ID),
				r.CustomerName,
				strings.Repeat("*", r.Rating),
				truncate(r.Comment, 48),
				r.Status,
			})
		}
		if len(rows) == 0 {
			fmt.Println("No reviews.")
			return nil
		}

		fmt.Println(renderTable(
			[]string{"ID", "Customer", "Rating", "Comment", "Status"},
			rows,
		))
		return nil
	},
}

var reviewsApproveCmd = &cobra.Command{
	Use:   "approve <review-id>",
	Short: "Approve a review",
	Args:  cobra.ExactArgs(1),
	RunE:  moderateReview(model.ReviewApproved),
}

var reviewsRejectCmd = &cobra.Command{
	Use:   "reject <review-id>",
	Short: "Reject a review",
	Args:  cobra.ExactArgs(1),
	RunE:  moderateReview(model.ReviewRejected),
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <review-id>",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavReviews); err != nil {
			return err
		}

		if err := d.client.DeleteReview(cmd.Context(), args[0]); err != nil {
			return err
		}

		printSuccess("Review deleted.")
		return nil
	},
}

func moderateReview(status string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavReviews); err != nil {
			return err
		}

		review, err := d.client.ModerateReview(cmd.Context(), args[0], status)
		if err != nil {
			return err
		}

		printSuccess(fmt.Sprintf("Review by %s is now %s.", review.CustomerName, review.Status))
		return nil
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	reviewsListCmd.Flags().String("status", "", "Only show reviews with this status")

	reviewsCmd.AddCommand(reviewsListCmd, reviewsApproveCmd, reviewsRejectCmd, reviewsDeleteCmd)
	rootCmd.AddCommand(reviewsCmd)
}
