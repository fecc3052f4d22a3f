package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wash-admin/internal/role"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage gallery media",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var mediaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gallery items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavMedia); err != nil {
			return err
		}

		items, err := d.client.Media(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Gallery is empty.")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, m := range items {
			rows = append(rows, []string{
				shortID(m.ID),
				m.Title,
				m.Kind,
				m.URL,
				m.UploadedAt.Format("2006-01-02"),
			})
		}

		fmt.Println(renderTable(
			[]string{"ID", "Title", "Kind", "URL", "Uploaded"},
			rows,
		))
		return nil
	},
}

var mediaRemoveCmd = &cobra.Command{
	Use:   "remove <media-id>",
	Short: "Remove a gallery item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavMedia); err != nil {
			return err
		}

		if err := d.client.DeleteMedia(cmd.Context(), args[0]); err != nil {
			return err
		}

		printSuccess("Media item removed.")
		return nil
	},
}

func init() {
	mediaCmd.AddCommand(mediaListCmd, mediaRemoveCmd)
	rootCmd.AddCommand(mediaCmd)
}
