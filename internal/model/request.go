package model

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Vehicle       string `json:"vehicle"`
	ServiceID     string `json:"service_id"`
	ScheduledAt   string `json:"scheduled_at"`
	Notes         string `json:"notes,omitempty"`
}

type UpdateBookingRequest struct {
	Status      string `json:"status,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type UpsertServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Active      *bool   `json:"active,omitempty"`
}

type ModerateReviewRequest struct {
	Status string `json:"status"`
}

type ResolveFeedbackRequest struct {
	Resolved bool `json:"resolved"`
}

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}
