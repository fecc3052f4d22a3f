package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the wash and detailing catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List service offerings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavServices); err != nil {
			return err
		}

		offerings, err := d.client.Services(cmd.Context())
		if err != nil {
			return err
		}
		if len(offerings) == 0 {
			fmt.Println("Catalog is empty.")
			return nil
		}

		rows := make([][]string, 0, len(offerings))
		for _, s := range offerings {
			state := "active"
			if !s.Active {
				state = "inactive"
			}
			rows = append(rows, []string{
				shortID(s.ID),
				s.Name,
				s.Category,
				fmt.Sprintf("%.2f", s.Price),
				fmt.Sprintf("%d min", s.DurationMin),
				state,
			})
		}

		fmt.Println(renderTable(
			[]string{"ID", "Name", "Category", "Price", "Duration", "State"},
			rows,
		))
		return nil
	},
}

var servicesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a service offering",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavServices); err != nil {
			return err
		}

		req, err := serviceRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		offering, err := d.client.CreateService(cmd.Context(), req)
		if err != nil {
			return err
		}

		printSuccess(fmt.Sprintf("Added %q (%s).", offering.Name, offering.ID))
		return nil
	},
}

var servicesUpdateCmd = &cobra.Command{
	Use:   "update <service-id>",
	Short: "Update a service offering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavServices); err != nil {
			return err
		}

		req, err := serviceRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		offering, err := d.client.UpdateService(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printSuccess(fmt.Sprintf("Updated %q.", offering.Name))
		return nil
	},
}

var servicesRemoveCmd = &cobra.Command{
	Use:   "remove <service-id>",
	Short: "Remove a service offering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavServices); err != nil {
			return err
		}

		if err := d.client.DeleteService(cmd.Context(), args[0]); err != nil {
			return err
		}

		printSuccess("Service removed.")
		return nil
	},
}

func serviceRequestFromFlags(cmd *cobra.Command) (model.UpsertServiceRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")
	price, _ := cmd.Flags().GetFloat64("price")
	duration, _ := cmd.Flags().GetInt("duration")

	req := model.UpsertServiceRequest{
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		DurationMin: duration,
	}
	if cmd.Flags().Changed("active") {
		active, _ := cmd.Flags().GetBool("active")
		req.Active = &active
	}
	return req, nil
}

func registerServiceFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Offering name")
	cmd.Flags().String("description", "", "Offering description")
	cmd.Flags().String("category", "", "Category (basic|premium|detailing)")
	cmd.Flags().Float64("price", 0, "Price")
	cmd.Flags().Int("duration", 0, "Duration in minutes")
	cmd.Flags().Bool("active", true, "Whether the offering is bookable")
}

func init() {
	registerServiceFlags(servicesAddCmd)
	registerServiceFlags(servicesUpdateCmd)

	servicesCmd.AddCommand(servicesListCmd, servicesAddCmd, servicesUpdateCmd, servicesRemoveCmd)
	rootCmd.AddCommand(servicesCmd)
}
