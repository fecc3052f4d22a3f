package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Manage customer bookings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings, soonest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavBookings); err != nil {
			return err
		}

		bookings, err := d.client.Bookings(cmd.Context())
		if err != nil {
			return err
		}
		if len(bookings) == 0 {
			fmt.Println("No bookings.")
			return nil
		}

		rows := make([][]string, 0, len(bookings))
		for _, b := range bookings {
			rows = append(rows, []string{
				shortID(b.ID),
				b.CustomerName,
				b.Vehicle,
				b.ServiceName,
				b.ScheduledAt.Format("2006-01-02 15:04"),
				b.Status,
				fmt.Sprintf("%.2f", b.Price),
			})
		}

		fmt.Println(renderTable(
			[]string{"ID", "Customer", "Vehicle", "Service", "Scheduled", "Status", "Price"},
			rows,
		))
		return nil
	},
}

var bookingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a booking",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavBookings); err != nil {
			return err
		}

		customer, _ := cmd.Flags().GetString("customer")
		phone, _ := cmd.Flags().GetString("phone")
		vehicle, _ := cmd.Flags().GetString("vehicle")
		serviceID, _ := cmd.Flags().GetString("service-id")
		at, _ := cmd.Flags().GetString("at")
		notes, _ := cmd.Flags().GetString("notes")

		booking, err := d.client.CreateBooking(cmd.Context(), model.CreateBookingRequest{
			CustomerName:  customer,
			CustomerPhone: phone,
			Vehicle:       vehicle,
			ServiceID:     serviceID,
			ScheduledAt:   at,
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		printSuccess("Booking created.")
		fmt.Printf("ID:        %s\n", booking.ID)
		fmt.Printf("Service:   %s\n", booking.ServiceName)
		fmt.Printf("Scheduled: %s\n", booking.ScheduledAt.Format("2006-01-02 15:04"))
		return nil
	},
}

var bookingsUpdateCmd = &cobra.Command{
	Use:   "update <booking-id>",
	Short: "Update a booking's status, time or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavBookings); err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		at, _ := cmd.Flags().GetString("at")
		notes, _ := cmd.Flags().GetString("notes")

		booking, err := d.client.UpdateBooking(cmd.Context(), args[0], model.UpdateBookingRequest{
			Status:      status,
			ScheduledAt: at,
			Notes:       notes,
		})
		if err != nil {
			return err
		}

		printSuccess("Booking updated.")
		fmt.Printf("Status: %s\n", booking.Status)
		return nil
	},
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavBookings); err != nil {
			return err
		}

		if err := d.client.CancelBooking(cmd.Context(), args[0]); err != nil {
			return err
		}

		printSuccess("Booking cancelled.")
		return nil
	},
}

var bookingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookings as CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := buildDeps()
		if _, err := d.guard.RequireItem(role.NavBookings); err != nil {
			return err
		}

		bookings, err := d.client.Bookings(cmd.Context())
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		file := os.Stdout
		if out != "" {
			file, err = os.Create(out)
			if err != nil {
				return err
			}
			defer file.Close()
		}

		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"id", "customer", "phone", "vehicle", "service", "scheduled_at", "status", "price", "notes"}); err != nil {
			return err
		}
		for _, b := range bookings {
			record := []string{
				b.ID, b.CustomerName, b.CustomerPhone, b.Vehicle, b.ServiceName,
				b.ScheduledAt.Format("2006-01-02T15:04:05Z07:00"),
				b.Status, strconv.FormatFloat(b.Price, 'f', 2, 64), b.Notes,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}

		if out != "" {
			printSuccess(fmt.Sprintf("Exported %d bookings to %s", len(bookings), out))
		}
		return nil
	},
}

func init() {
	bookingsCreateCmd.Flags().String("customer", "", "Customer name")
	bookingsCreateCmd.Flags().String("phone", "", "Customer phone")
	bookingsCreateCmd.Flags().String("vehicle", "", "Vehicle description")
	bookingsCreateCmd.Flags().String("service-id", "", "Service offering id")
	bookingsCreateCmd.Flags().String("at", "", "Scheduled time, RFC 3339")
	bookingsCreateCmd.Flags().String("notes", "", "Notes")

	bookingsUpdateCmd.Flags().String("status", "", "New status (pending|confirmed|in_progress|completed|cancelled)")
	bookingsUpdateCmd.Flags().String("at", "", "New scheduled time, RFC 3339")
	bookingsUpdateCmd.Flags().String("notes", "", "Replacement notes")

	bookingsExportCmd.Flags().String("out", "", "Write CSV to this file instead of stdout")

	bookingsCmd.AddCommand(bookingsListCmd, bookingsCreateCmd, bookingsUpdateCmd, bookingsCancelCmd, bookingsExportCmd)
	rootCmd.AddCommand(bookingsCmd)
}
