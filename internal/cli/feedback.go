package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wash-admin/internal/role"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Handle contact-form feedback",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavFeedback); err != nil {
			return err
		}

		entries, err := d.client.Feedback(cmd.Context())
		if err != nil {
			return err
		}

		openOnly, _ := cmd.Flags().GetBool("open")
		rows := make([][]string, 0, len(entries))
		for _, f := range entries {
			if openOnly && f.Resolved {
				continue
			}
			state := "open"
			if f.Resolved {
				state = "resolved"
			}
			rows = append(rows, []string{
				shortID(f.ID),
				f.CustomerName,
				f.Email,
				truncate(f.Subject, 40),
				state,
			})
		}
		if len(rows) == 0 {
			fmt.Println("No feedback.")
			return nil
		}

		fmt.Println(renderTable(
			[]string{"ID", "Customer", "Email", "Subject", "State"},
			rows,
		))
		return nil
	},
}

var feedbackResolveCmd = &cobra.Command{
	Use:   "resolve <feedback-id>",
	Short: "Mark a feedback entry resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavFeedback); err != nil {
			return err
		}

		reopen, _ := cmd.Flags().GetBool("reopen")
		entry, err := d.client.ResolveFeedback(cmd.Context(), args[0], !reopen)
		if err != nil {
			return err
		}

		if entry.Resolved {
			printSuccess(fmt.Sprintf("Feedback from %s resolved.", entry.CustomerName))
		} else {
			printSuccess(fmt.Sprintf("Feedback from %s reopened.", entry.CustomerName))
		}
		return nil
	},
}

func init() {
	feedbackListCmd.Flags().Bool("open", false, "Only show unresolved entries")
	feedbackResolveCmd.Flags().Bool("reopen", false, "Reopen instead of resolving")

	feedbackCmd.AddCommand(feedbackListCmd, feedbackResolveCmd)
	rootCmd.AddCommand(feedbackCmd)
}
