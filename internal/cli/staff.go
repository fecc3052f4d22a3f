package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff accounts and roles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavStaff); err != nil {
			return err
		}

		users, err := d.client.Staff(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			lastLogin := "never"
			if u.LastLogin != nil {
				lastLogin = u.LastLogin.Format("2006-01-02 15:04")
			}
			rows = append(rows, []string{
				shortID(u.ID),
				u.Name,
				u.Email,
				u.Role,
				lastLogin,
			})
		}

		fmt.Println(renderTable(
			[]string{"ID", "Name", "Email", "Role", "Last login"},
			rows,
		))
		return nil
	},
}

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a staff account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavStaff); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		roleName, _ := cmd.Flags().GetString("role")

		user, err := d.client.CreateStaff(cmd.Context(), model.CreateStaffRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     roleName,
		})
		if err != nil {
			return err
		}

		printSuccess(fmt.Sprintf("Created %s (%s) with role %s.", user.Name, user.Email, user.Role))
		return nil
	},
}

var staffSetRoleCmd = &cobra.Command{
	Use:   "set-role <user-id> <role>",
	Short: "Change a staff account's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavStaff); err != nil {
			return err
		}

		user, err := d.client.SetStaffRole(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printSuccess(fmt.Sprintf("%s is now %s.", user.Name, user.Role))
		return nil
	},
}

var staffRemoveCmd = &cobra.Command{
	Use:   "remove <user-id>",
	Short: "Delete a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavStaff); err != nil {
			return err
		}

		if err := d.client.DeleteStaff(cmd.Context(), args[0]); err != nil {
			return err
		}

		printSuccess("Staff account removed.")
		return nil
	},
}

func init() {
	staffAddCmd.Flags().String("name", "", "Full name")
	staffAddCmd.Flags().String("email", "", "Email address")
	staffAddCmd.Flags().String("password", "", "Initial password")
	staffAddCmd.Flags().String("role", string(role.Booking), "Role (developer|admin|booking)")

	staffCmd.AddCommand(staffListCmd, staffAddCmd, staffSetRoleCmd, staffRemoveCmd)
	rootCmd.AddCommand(staffCmd)
}
