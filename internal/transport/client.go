// Package transport is the console's HTTP client for the backend API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wash-admin/internal/model"
)

// TokenSource supplies the current bearer token. An empty string means
// no Authorization header is attached.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       TokenSource
	probeTimeout time.Duration
}

// New builds a client for the backend at baseURL. Primary calls carry
// no client-side timeout; only the health probe does.
func New(baseURL string, tokens TokenSource, probeTimeout time.Duration) *Client {
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	return &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{},
		tokens:       tokens,
		probeTimeout: probeTimeout,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *model.APIError `json:"error,omitempty"`
}

// do performs one JSON request. Failures come back as *TransportError:
// KindConnection when no response was received, KindServer when the
// backend answered with an error status. The server's code and message
// pass through untouched.
func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Kind: KindConnection, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Kind: KindConnection, Err: err}
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := &TransportError{Kind: KindServer, StatusCode: resp.StatusCode}
		if env.Error != nil {
			serverErr.Code = env.Error.Code
			serverErr.Message = env.Error.Message
		} else {
			serverErr.Message = string(raw)
		}
		return serverErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// Ping probes GET /health with the fixed probe timeout. A nil error
// means the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Kind: KindConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{Kind: KindServer, StatusCode: resp.StatusCode, Message: "health probe failed"}
	}

	return nil
}

// Auth endpoints.

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/forgot-password", req, &out)
	return out, err
}

func (c *Client) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/reset-password", req, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (model.UserRecord, error) {
	var out model.UserRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/me", nil, &out)
	return out, err
}

// Management panels.

func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	err := c.do(ctx, http.MethodGet, "/api/v1/bookings", nil, &out)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	var out model.Booking
	err := c.do(ctx, http.MethodPost, "/api/v1/bookings", req, &out)
	return out, err
}

func (c *Client) UpdateBooking(ctx context.Context, id string, req model.UpdateBookingRequest) (model.Booking, error) {
	var out model.Booking
	err := c.do(ctx, http.MethodPut, "/api/v1/bookings/"+id, req, &out)
	return out, err
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/bookings/"+id, nil, nil)
}

func (c *Client) Services(ctx context.Context) ([]model.ServiceOffering, error) {
	var out []model.ServiceOffering
	err := c.do(ctx, http.MethodGet, "/api/v1/services", nil, &out)
	return out, err
}

func (c *Client) CreateService(ctx context.Context, req model.UpsertServiceRequest) (model.ServiceOffering, error) {
	var out model.ServiceOffering
	err := c.do(ctx, http.MethodPost, "/api/v1/services", req, &out)
	return out, err
}

func (c *Client) UpdateService(ctx context.Context, id string, req model.UpsertServiceRequest) (model.ServiceOffering, error) {
	var out model.ServiceOffering
	err := c.do(ctx, http.MethodPut, "/api/v1/services/"+id, req, &out)
	return out, err
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/services/"+id, nil, nil)
}

func (c *Client) Media(ctx context.Context) ([]model.MediaItem, error) {
	var out []model.MediaItem
	err := c.do(ctx, http.MethodGet, "/api/v1/media", nil, &out)
	return out, err
}

func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/media/"+id, nil, nil)
}

func (c *Client) Reviews(ctx context.Context) ([]model.Review, error) {
	var out []model.Review
	err := c.do(ctx, http.MethodGet, "/api/v1/reviews", nil, &out)
	return out, err
}

func (c *Client) ModerateReview(ctx context.Context, id string, status string) (model.Review, error) {
	var out model.Review
	err := c.do(ctx, http.MethodPut, "/api/v1/reviews/"+id, model.ModerateReviewRequest{Status: status}, &out)
	return out, err
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/reviews/"+id, nil, nil)
}

func (c *Client) Feedback(ctx context.Context) ([]model.Feedback, error) {
	var out []model.Feedback
	err := c.do(ctx, http.MethodGet, "/api/v1/feedback", nil, &out)
	return out, err
}

func (c *Client) ResolveFeedback(ctx context.Context, id string, resolved bool) (model.Feedback, error) {
	var out model.Feedback
	err := c.do(ctx, http.MethodPut, "/api/v1/feedback/"+id, model.ResolveFeedbackRequest{Resolved: resolved}, &out)
	return out, err
}

func (c *Client) Staff(ctx context.Context) ([]model.UserRecord, error) {
	var out []model.UserRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/staff", nil, &out)
	return out, err
}

func (c *Client) CreateStaff(ctx context.Context, req model.CreateStaffRequest) (model.UserRecord, error) {
	var out model.UserRecord
	err := c.do(ctx, http.MethodPost, "/api/v1/staff", req, &out)
	return out, err
}

func (c *Client) SetStaffRole(ctx context.Context, id string, roleName string) (model.UserRecord, error) {
	var out model.UserRecord
	err := c.do(ctx, http.MethodPut, "/api/v1/staff/"+id+"/role", model.SetRoleRequest{Role: roleName}, &out)
	return out, err
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/staff/"+id, nil, nil)
}

func (c *Client) AnalyticsSummary(ctx context.Context) (model.AnalyticsSummary, error) {
	var out model.AnalyticsSummary
	err := c.do(ctx, http.MethodGet, "/api/v1/analytics/summary", nil, &out)
	return out, err
}
