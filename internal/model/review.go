package model

import "time"

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Feedback struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Resolved     bool      `json:"resolved"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalyticsSummary aggregates the dashboard numbers over the current
// in-memory collections.
type AnalyticsSummary struct {
	TotalBookings     int            `json:"total_bookings"`
	CompletedBookings int            `json:"completed_bookings"`
	CancelledBookings int            `json:"cancelled_bookings"`
	Revenue           float64        `json:"revenue"`
	AverageRating     float64        `json:"average_rating"`
	BookingsByStatus  map[string]int `json:"bookings_by_status"`
	ActiveServices    int            `json:"active_services"`
}
