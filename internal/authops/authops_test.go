package authops

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wash-admin/internal/model"
	"wash-admin/internal/transport"
)

func connErr() error {
	return &transport.TransportError{Kind: transport.KindConnection, Err: errors.New("dial tcp: connection refused")}
}

func serverErr(code string, message string, status int) error {
	return &transport.TransportError{Kind: transport.KindServer, StatusCode: status, Code: code, Message: message}
}

type fakeBackend struct {
	loginResp model.AuthResponse
	loginErr  error
	loginN    int

	registerResp model.AuthResponse
	registerErr  error

	forgotResp model.AuthResponse
	forgotErr  error

	resetResp model.AuthResponse
	resetErr  error

	logoutErr error
}

func (f *fakeBackend) Login(_ context.Context, _ model.LoginRequest) (model.AuthResponse, error) {
	f.loginN++
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, _ model.RegisterRequest) (model.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeBackend) ForgotPassword(_ context.Context, _ model.ForgotPasswordRequest) (model.AuthResponse, error) {
	return f.forgotResp, f.forgotErr
}

func (f *fakeBackend) ResetPassword(_ context.Context, _ model.ResetPasswordRequest) (model.AuthResponse, error) {
	return f.resetResp, f.resetErr
}

func (f *fakeBackend) Logout(_ context.Context) error { return f.logoutErr }

type fakeFallback struct {
	loginResp    model.AuthResponse
	loginErr     error
	registerResp model.AuthResponse
	registerErr  error
	forgotResp   model.AuthResponse
	resetResp    model.AuthResponse
	calls        []string
}

func (f *fakeFallback) Login(_ context.Context, _ string, _ string) (model.AuthResponse, error) {
	f.calls = append(f.calls, "login")
	return f.loginResp, f.loginErr
}

func (f *fakeFallback) Register(_ context.Context, _ string, _ string, _ string) (model.AuthResponse, error) {
	f.calls = append(f.calls, "register")
	return f.registerResp, f.registerErr
}

func (f *fakeFallback) ForgotPassword(_ context.Context, _ string) (model.AuthResponse, error) {
	f.calls = append(f.calls, "forgot")
	return f.forgotResp, nil
}

func (f *fakeFallback) ResetPassword(_ context.Context, _ string, _ string) (model.AuthResponse, error) {
	f.calls = append(f.calls, "reset")
	return f.resetResp, nil
}

func (f *fakeFallback) Logout(_ context.Context) error {
	f.calls = append(f.calls, "logout")
	return nil
}

type fakeSessions struct {
	token    string
	user     *model.UserRecord
	sets     int
	clears   int
	setErr   error
	clearErr error
}

func (f *fakeSessions) Set(token string, user *model.UserRecord) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.token = token
	f.user = user
	f.sets++
	return nil
}

func (f *fakeSessions) Clear() error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.token = ""
	f.user = nil
	f.clears++
	return nil
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	backend := &fakeBackend{}
	fallback := &fakeFallback{}
	svc := New(backend, fallback, &fakeSessions{}, nil)

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	assert.Zero(t, backend.loginN, "no network call on validation failure")
	assert.Empty(t, fallback.calls, "no fallback on validation failure")
}

func TestLogin_SuccessPersistsSession(t *testing.T) {
	user := &model.UserRecord{ID: "u-1", Email: "a@b.c", Role: "admin"}
	backend := &fakeBackend{loginResp: model.AuthResponse{Token: "tok-1", User: user}}
	sessions := &fakeSessions{}
	svc := New(backend, &fakeFallback{}, sessions, nil)

	resp, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.BearerToken())
	assert.Equal(t, "tok-1", sessions.token)
	assert.Equal(t, user, sessions.user)
}

func TestLogin_AccessTokenFallbackField(t *testing.T) {
	backend := &fakeBackend{loginResp: model.AuthResponse{AccessToken: "alt-tok"}}
	sessions := &fakeSessions{}
	svc := New(backend, &fakeFallback{}, sessions, nil)

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alt-tok", sessions.token)
}

func TestLogin_ConnectionErrorUsesFallback(t *testing.T) {
	backend := &fakeBackend{loginErr: connErr()}
	fallback := &fakeFallback{loginResp: model.AuthResponse{
		Token: "mock-tok",
		User:  &model.UserRecord{ID: "mock-1", Role: "developer"},
	}}
	sessions := &fakeSessions{}
	svc := New(backend, fallback, sessions, nil)

	resp, err := svc.Login(context.Background(), "dev@sparklewash.local", "pw")
	require.NoError(t, err)
	assert.Equal(t, []string{"login"}, fallback.calls)
	assert.Equal(t, "mock-tok", resp.BearerToken())
	assert.Equal(t, "mock-tok", sessions.token, "fallback session must be persisted")
	assert.Equal(t, 1, backend.loginN, "primary attempt completes before fallback")
}

func TestLogin_ServerErrorNeverFallsBack(t *testing.T) {
	backend := &fakeBackend{loginErr: serverErr("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)}
	fallback := &fakeFallback{}
	sessions := &fakeSessions{}
	svc := New(backend, fallback, sessions, nil)

	_, err := svc.Login(context.Background(), "a@b.c", "wrongpw")
	require.Error(t, err)

	var te *transport.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "UNAUTHORIZED", te.Code)
	assert.Equal(t, "Invalid credentials", te.Message)
	assert.Empty(t, fallback.calls, "server errors must not trigger the fallback")
	assert.Zero(t, sessions.sets)
}

func TestLogin_FallbackValidationFailureIsAuthoritative(t *testing.T) {
	backend := &fakeBackend{loginErr: connErr()}
	fallbackErr := errors.New("mock says no")
	fallback := &fakeFallback{loginErr: fallbackErr}
	svc := New(backend, fallback, &fakeSessions{}, nil)

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, fallbackErr)
}

func TestLogin_StorageFailureGoesToWarnHook(t *testing.T) {
	backend := &fakeBackend{loginResp: model.AuthResponse{Token: "tok"}}
	storeErr := errors.New("disk full")
	sessions := &fakeSessions{setErr: storeErr}

	var warned error
	svc := New(backend, &fakeFallback{}, sessions, func(err error) { warned = err })

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err, "login still reports success")
	assert.ErrorIs(t, warned, storeErr)
}

func TestRegister(t *testing.T) {
	t.Run("validation first", func(t *testing.T) {
		svc := New(&fakeBackend{}, &fakeFallback{}, &fakeSessions{}, nil)

		_, err := svc.Register(context.Background(), "", "a@b.c", "pw")
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		_, err = svc.Register(context.Background(), "Name", "not-an-email", "pw")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("primary success", func(t *testing.T) {
		backend := &fakeBackend{registerResp: model.AuthResponse{Message: "registered"}}
		svc := New(backend, &fakeFallback{}, &fakeSessions{}, nil)

		resp, err := svc.Register(context.Background(), "Name", "a@b.c", "pw")
		require.NoError(t, err)
		assert.Equal(t, "registered", resp.Message)
	})

	t.Run("connection error falls back", func(t *testing.T) {
		backend := &fakeBackend{registerErr: connErr()}
		fallback := &fakeFallback{registerResp: model.AuthResponse{Message: "offline registered"}}
		svc := New(backend, fallback, &fakeSessions{}, nil)

		resp, err := svc.Register(context.Background(), "Name", "a@b.c", "pw")
		require.NoError(t, err)
		assert.Equal(t, "offline registered", resp.Message)
		assert.Equal(t, []string{"register"}, fallback.calls)
	})

	t.Run("server conflict propagates", func(t *testing.T) {
		backend := &fakeBackend{registerErr: serverErr("ALREADY_EXISTS", "account exists", http.StatusConflict)}
		fallback := &fakeFallback{}
		svc := New(backend, fallback, &fakeSessions{}, nil)

		_, err := svc.Register(context.Background(), "Name", "a@b.c", "pw")
		require.Error(t, err)
		assert.Empty(t, fallback.calls)
	})
}

func TestForgotAndReset(t *testing.T) {
	t.Run("forgot validates email", func(t *testing.T) {
		svc := New(&fakeBackend{}, &fakeFallback{}, &fakeSessions{}, nil)
		_, err := svc.ForgotPassword(context.Background(), "  ")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("forgot falls back on connection error", func(t *testing.T) {
		backend := &fakeBackend{forgotErr: connErr()}
		fallback := &fakeFallback{forgotResp: model.AuthResponse{Message: "sent"}}
		svc := New(backend, fallback, &fakeSessions{}, nil)

		resp, err := svc.ForgotPassword(context.Background(), "a@b.c")
		require.NoError(t, err)
		assert.Equal(t, "sent", resp.Message)
	})

	t.Run("reset validates both fields", func(t *testing.T) {
		svc := New(&fakeBackend{}, &fakeFallback{}, &fakeSessions{}, nil)

		_, err := svc.ResetPassword(context.Background(), "", "pw")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		_, err = svc.ResetPassword(context.Background(), "tok", "")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestLogout_AlwaysClearsSession(t *testing.T) {
	cases := []struct {
		name      string
		remoteErr error
	}{
		{name: "remote success", remoteErr: nil},
		{name: "remote server error", remoteErr: serverErr("INTERNAL_ERROR", "boom", http.StatusInternalServerError)},
		{name: "remote connection error", remoteErr: connErr()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{logoutErr: tc.remoteErr}
			sessions := &fakeSessions{token: "tok", user: &model.UserRecord{ID: "u"}}
			svc := New(backend, &fakeFallback{}, sessions, nil)

			err := svc.Logout(context.Background())
			require.NoError(t, err)
			assert.Empty(t, sessions.token)
			assert.Equal(t, 1, sessions.clears)
		})
	}
}

func TestLogout_ClearFailureSurfaces(t *testing.T) {
	clearErr := errors.New("read-only filesystem")
	sessions := &fakeSessions{clearErr: clearErr}

	var warned error
	svc := New(&fakeBackend{}, &fakeFallback{}, sessions, func(err error) { warned = err })

	err := svc.Logout(context.Background())
	assert.ErrorIs(t, err, clearErr)
	assert.ErrorIs(t, warned, clearErr)
}
