package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"wash-admin/internal/role"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin console",
	Long: `Sign in with your email and password. Omitted flags are asked for
interactively. The session is stored locally and reused by every other
command until you log out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		d := buildDeps()
		resp, err := d.auth.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		printSuccess("Signed in.")
		if resp.Message != "" {
			fmt.Println(dimStyle.Render(resp.Message))
		}
		if resp.User != nil {
			fmt.Printf("Name:  %s\n", resp.User.Name)
			fmt.Printf("Email: %s\n", resp.User.Email)
			fmt.Printf("Role:  %s\n", role.Resolve(resp.User.Role))
		}

		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if err := d.auth.Logout(cmd.Context()); err != nil {
			return err
		}

		printSuccess("Signed out.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register a new account with the backend. New self-service accounts
get the booking role; staff accounts with other roles are created via
'washadmin staff add'.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if name == "" || email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Full name").Value(&name),
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		d := buildDeps()
		resp, err := d.auth.Register(cmd.Context(), name, email, password)
		if err != nil {
			return err
		}

		printSuccess("Registration complete.")
		if resp.Message != "" {
			fmt.Println(resp.Message)
		}

		return nil
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset link",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		d := buildDeps()
		resp, err := d.auth.ForgotPassword(cmd.Context(), email)
		if err != nil {
			return err
		}

		fmt.Println(resp.Message)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset your password with a reset token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		token, _ := cmd.Flags().GetString("token")
		password, _ := cmd.Flags().GetString("password")

		if token == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Reset token").Value(&token),
				huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		d := buildDeps()
		resp, err := d.auth.ResetPassword(cmd.Context(), token, password)
		if err != nil {
			return err
		}

		fmt.Println(resp.Message)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and backend status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()

		if err := d.client.Ping(cmd.Context()); err != nil {
			printWarn("Backend: unreachable (auth operations will use the offline fallback)")
		} else {
			printSuccess("Backend: reachable at " + d.cfg.APIBaseURL)
		}

		current := d.sessions.Get()
		if !current.Active() {
			fmt.Println("Session: not signed in")
			return nil
		}

		fmt.Println("Session: signed in")
		if current.User != nil {
			fmt.Printf("Name:  %s\n", current.User.Name)
			fmt.Printf("Email: %s\n", current.User.Email)
			fmt.Printf("Role:  %s\n", role.Resolve(current.User.Role))
			if current.User.LastLogin != nil {
				fmt.Printf("Last login: %s\n", current.User.LastLogin.Format("2006-01-02 15:04:05"))
			}
		}

		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account as the backend sees it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.Require(); err != nil {
			return err
		}

		user, err := d.client.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Name:  %s\n", user.Name)
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Role:  %s\n", role.Resolve(user.Role))
		if user.LastLogin != nil {
			fmt.Printf("Last login: %s\n", user.LastLogin.Format("2006-01-02 15:04:05"))
		}

		return nil
	},
}

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Show the menu areas visible to your role",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()

		current, err := d.guard.Require()
		if err != nil {
			return err
		}

		var roleName string
		if current.User != nil {
			roleName = current.User.Role
		}
		resolved := role.Resolve(roleName)

		printTitle(fmt.Sprintf("Navigation for role %q", resolved))
		for _, item := range role.NavigationFor(resolved) {
			fmt.Printf("  - %s\n", item)
		}

		if assignable := role.Assignable(resolved); len(assignable) > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("May assign roles: %v", assignable)))
		}

		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password")

	registerCmd.Flags().String("name", "", "Full name")
	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("password", "", "Account password")

	forgotPasswordCmd.Flags().String("email", "", "Account email")

	resetPasswordCmd.Flags().String("token", "", "Reset token from the email")
	resetPasswordCmd.Flags().String("password", "", "New password")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, forgotPasswordCmd, resetPasswordCmd, statusCmd, whoamiCmd, navCmd)
}
