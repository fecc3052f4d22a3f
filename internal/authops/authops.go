// Package authops orchestrates the auth operations: validate locally,
// try the backend, fall back to the offline mock on connection errors.
package authops

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wash-admin/internal/model"
	"wash-admin/internal/transport"
)

// Backend is the primary auth surface, satisfied by *transport.Client.
type Backend interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) (model.AuthResponse, error)
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (model.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Fallback is the offline substitute, satisfied by *mockapi.Service.
type Fallback interface {
	Register(ctx context.Context, name string, email string, password string) (model.AuthResponse, error)
	Login(ctx context.Context, email string, password string) (model.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (model.AuthResponse, error)
	ResetPassword(ctx context.Context, token string, password string) (model.AuthResponse, error)
	Logout(ctx context.Context) error
}

// SessionWriter is the slice of the session store this package needs.
type SessionWriter interface {
	Set(token string, user *model.UserRecord) error
	Clear() error
}

type Service struct {
	backend  Backend
	fallback Fallback
	sessions SessionWriter
	// warn receives storage failures; the operation itself still
	// reports success, matching the observed product behavior.
	warn func(error)
}

func New(backend Backend, fallback Fallback, sessions SessionWriter, warn func(error)) *Service {
	if warn == nil {
		warn = func(err error) {
			slog.Warn("session storage failure", "error", err)
		}
	}
	return &Service{backend: backend, fallback: fallback, sessions: sessions, warn: warn}
}

// Login signs in, persisting the session on success. The primary
// attempt always completes before the fallback starts; server-reported
// failures propagate verbatim and never reach the fallback.
func (s *Service) Login(ctx context.Context, email string, password string) (model.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.AuthResponse{}, fmt.Errorf("email and password are required: %w", model.ErrInvalidInput)
	}

	resp, err := s.backend.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		if !transport.IsConnectionError(err) {
			return model.AuthResponse{}, err
		}
		slog.Debug("backend unreachable, using offline fallback", "op", "login")
		resp, err = s.fallback.Login(ctx, email, password)
		if err != nil {
			return model.AuthResponse{}, err
		}
	}

	if token := resp.BearerToken(); token != "" {
		if storeErr := s.sessions.Set(token, resp.User); storeErr != nil {
			s.warn(storeErr)
		}
	}

	return resp, nil
}

func (s *Service) Register(ctx context.Context, name string, email string, password string) (model.AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return model.AuthResponse{}, fmt.Errorf("name, email and password are required: %w", model.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return model.AuthResponse{}, fmt.Errorf("email %q is malformed: %w", email, model.ErrInvalidInput)
	}

	resp, err := s.backend.Register(ctx, model.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		if !transport.IsConnectionError(err) {
			return model.AuthResponse{}, err
		}
		slog.Debug("backend unreachable, using offline fallback", "op", "register")
		return s.fallback.Register(ctx, name, email, password)
	}

	return resp, nil
}

func (s *Service) ForgotPassword(ctx context.Context, email string) (model.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.AuthResponse{}, fmt.Errorf("email is required: %w", model.ErrInvalidInput)
	}

	resp, err := s.backend.ForgotPassword(ctx, model.ForgotPasswordRequest{Email: email})
	if err != nil {
		if !transport.IsConnectionError(err) {
			return model.AuthResponse{}, err
		}
		slog.Debug("backend unreachable, using offline fallback", "op", "forgot-password")
		return s.fallback.ForgotPassword(ctx, email)
	}

	return resp, nil
}

func (s *Service) ResetPassword(ctx context.Context, token string, password string) (model.AuthResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return model.AuthResponse{}, fmt.Errorf("token and password are required: %w", model.ErrInvalidInput)
	}

	resp, err := s.backend.ResetPassword(ctx, model.ResetPasswordRequest{Token: token, Password: password})
	if err != nil {
		if !transport.IsConnectionError(err) {
			return model.AuthResponse{}, err
		}
		slog.Debug("backend unreachable, using offline fallback", "op", "reset-password")
		return s.fallback.ResetPassword(ctx, token, password)
	}

	return resp, nil
}

// Logout clears the local session as its final step regardless of the
// remote outcome. Remote failures are reported but never keep the
// session around.
func (s *Service) Logout(ctx context.Context) error {
	remoteErr := s.backend.Logout(ctx)
	if transport.IsConnectionError(remoteErr) {
		slog.Debug("backend unreachable, using offline fallback", "op", "logout")
		remoteErr = s.fallback.Logout(ctx)
	}
	if remoteErr != nil {
		slog.Warn("remote logout failed, clearing local session anyway", "error", remoteErr)
	}

	if err := s.sessions.Clear(); err != nil {
		s.warn(err)
		return err
	}

	return nil
}
