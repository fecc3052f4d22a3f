// Package mockapi is the offline stand-in for the backend. Auth
// operations fall back to it when the real backend is unreachable.
package mockapi

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wash-admin/internal/model"
)

// Delays simulates backend latency, one fixed delay per operation.
type Delays struct {
	Login          time.Duration
	Register       time.Duration
	ForgotPassword time.Duration
	ResetPassword  time.Duration
	Logout         time.Duration
}

func defaultDelays() Delays {
	return Delays{
		Login:          800 * time.Millisecond,
		Register:       600 * time.Millisecond,
		ForgotPassword: 500 * time.Millisecond,
		ResetPassword:  500 * time.Millisecond,
		Logout:         300 * time.Millisecond,
	}
}

type Service struct {
	delays Delays
	mu     sync.Mutex
	users  []model.UserRecord
}

func New() *Service {
	return NewWithDelays(defaultDelays())
}

func NewWithDelays(delays Delays) *Service {
	return &Service{
		delays: delays,
		users:  seedUsers(),
	}
}

func seedUsers() []model.UserRecord {
	return []model.UserRecord{
		{ID: "mock-1", Name: "Dev Account", Email: "dev@sparklewash.local", Role: "developer"},
		{ID: "mock-2", Name: "Site Admin", Email: "admin@sparklewash.local", Role: "admin"},
		{ID: "mock-3", Name: "Front Desk", Email: "desk@sparklewash.local", Role: "booking"},
	}
}

// Login mints an opaque token for any non-empty credential pair. A
// known email echoes its seeded record; an unknown one gets a record
// synthesized on the spot. Passwords are not checked (mock-only).
func (s *Service) Login(ctx context.Context, email string, password string) (model.AuthResponse, error) {
	if err := s.wait(ctx, s.delays.Login); err != nil {
		return model.AuthResponse{}, err
	}

	if strings.TrimSpace(email) == "" || password == "" {
		return model.AuthResponse{}, fmt.Errorf("email and password are required: %w", model.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user := model.UserRecord{
		ID:    uuid.NewString(),
		Name:  nameFromEmail(email),
		Email: email,
		Role:  "admin",
	}
	for _, candidate := range s.users {
		if strings.EqualFold(candidate.Email, email) {
			user = candidate
			break
		}
	}
	user.LastLogin = &now

	return model.AuthResponse{
		Token:   "mock-" + uuid.NewString(),
		User:    &user,
		Message: "signed in (offline mode)",
	}, nil
}

// Register appends a new booking-role record. Duplicate emails are
// rejected without appending. No token is issued.
func (s *Service) Register(ctx context.Context, name string, email string, password string) (model.AuthResponse, error) {
	if err := s.wait(ctx, s.delays.Register); err != nil {
		return model.AuthResponse{}, err
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return model.AuthResponse{}, fmt.Errorf("name, email and password are required: %w", model.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, candidate := range s.users {
		if strings.EqualFold(candidate.Email, email) {
			return model.AuthResponse{}, fmt.Errorf("account with email %s already exists: %w", email, model.ErrUserAlreadyExists)
		}
	}

	s.users = append(s.users, model.UserRecord{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  "booking",
	})

	return model.AuthResponse{Message: "registration received (offline mode), you can sign in now"}, nil
}

func (s *Service) ForgotPassword(ctx context.Context, email string) (model.AuthResponse, error) {
	if err := s.wait(ctx, s.delays.ForgotPassword); err != nil {
		return model.AuthResponse{}, err
	}

	if strings.TrimSpace(email) == "" {
		return model.AuthResponse{}, fmt.Errorf("email is required: %w", model.ErrInvalidInput)
	}

	return model.AuthResponse{Message: "if the account exists, a reset link has been sent (offline mode)"}, nil
}

// ResetPassword accepts any non-empty token; the mock has no way to
// verify authenticity.
func (s *Service) ResetPassword(ctx context.Context, token string, password string) (model.AuthResponse, error) {
	if err := s.wait(ctx, s.delays.ResetPassword); err != nil {
		return model.AuthResponse{}, err
	}

	if strings.TrimSpace(token) == "" || password == "" {
		return model.AuthResponse{}, fmt.Errorf("token and password are required: %w", model.ErrInvalidInput)
	}

	return model.AuthResponse{Message: "password has been reset (offline mode)"}, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.wait(ctx, s.delays.Logout)
}

// UserCount reports the current size of the mock user set.
func (s *Service) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func nameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return local
	}

	return strings.Join(words, " ")
}
