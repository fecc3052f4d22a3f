package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Permission/Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Resource related errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrMediaNotFound    = errors.New("media item not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
