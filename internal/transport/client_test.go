package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wash-admin/internal/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_AttachesBearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.APIResponse{Success: true})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("abc123"), time.Second)
	require.NoError(t, client.Logout(context.Background()))
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hadHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(model.APIResponse{Success: true})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""), time.Second)
	require.NoError(t, client.Logout(context.Background()))
	assert.False(t, hadHeader)
}

func TestClient_ConnectionErrorTagged(t *testing.T) {
	// Grab a port nobody listens on.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(url, staticToken(""), time.Second)
	_, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	assert.True(t, IsConnectionError(err))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindConnection, te.Kind)
}

func TestClient_ServerErrorPassesThroughVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(model.APIResponse{
			Success: false,
			Error:   &model.APIError{Code: "UNAUTHORIZED", Message: "Invalid credentials"},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""), time.Second)
	_, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "wrong"})

	require.Error(t, err)
	assert.False(t, IsConnectionError(err))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindServer, te.Kind)
	assert.Equal(t, http.StatusUnauthorized, te.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", te.Code)
	assert.Equal(t, "Invalid credentials", te.Message)
}

func TestClient_ServerErrorWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""), time.Second)
	err := client.Logout(context.Background())

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindServer, te.Kind)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
	assert.Contains(t, te.Message, "bad gateway")
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.APIResponse{
			Success: true,
			Data: model.AuthResponse{
				Token: "tok-1",
				User:  &model.UserRecord{ID: "u-1", Email: "a@b.c", Role: "developer"},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""), time.Second)
	resp, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.BearerToken())
	require.NotNil(t, resp.User)
	assert.Equal(t, "developer", resp.User.Role)
}

func TestClient_Ping(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := New(server.URL, staticToken(""), time.Second)
		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := New(url, staticToken(""), 500*time.Millisecond)
		err := client.Ping(context.Background())
		assert.True(t, IsConnectionError(err))
	})
}

func TestIsConnectionError_PlainErrors(t *testing.T) {
	assert.False(t, IsConnectionError(errors.New("some error")))
	assert.False(t, IsConnectionError(nil))
}

func TestAuthResponse_TokenPrecedence(t *testing.T) {
	both := model.AuthResponse{Token: "primary", AccessToken: "secondary"}
	assert.Equal(t, "primary", both.BearerToken())

	accessOnly := model.AuthResponse{AccessToken: "secondary"}
	assert.Equal(t, "secondary", accessOnly.BearerToken())

	assert.Empty(t, model.AuthResponse{}.BearerToken())
}
