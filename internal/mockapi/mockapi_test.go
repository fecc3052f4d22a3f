package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wash-admin/internal/model"
)

func newFastService() *Service {
	return NewWithDelays(Delays{})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("known email echoes seeded record", func(t *testing.T) {
		svc := newFastService()

		resp, err := svc.Login(ctx, "dev@sparklewash.local", "whatever")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "developer", resp.User.Role)
		require.NotNil(t, resp.User.LastLogin)
		assert.WithinDuration(t, time.Now(), *resp.User.LastLogin, time.Minute)
	})

	t.Run("unknown email synthesizes a user", func(t *testing.T) {
		svc := newFastService()

		resp, err := svc.Login(ctx, "jamie.lee@example.com", "pw")
		require.NoError(t, err)
		require.NotNil(t, resp.User)
		assert.Equal(t, "jamie.lee@example.com", resp.User.Email)
		assert.Equal(t, "Jamie Lee", resp.User.Name)
		assert.NotEmpty(t, resp.User.ID)
	})

	t.Run("empty credentials rejected", func(t *testing.T) {
		svc := newFastService()

		_, err := svc.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		_, err = svc.Login(ctx, "a@b.c", "")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("fresh token per login", func(t *testing.T) {
		svc := newFastService()

		first, err := svc.Login(ctx, "dev@sparklewash.local", "pw")
		require.NoError(t, err)
		second, err := svc.Login(ctx, "dev@sparklewash.local", "pw")
		require.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("appends booking-role record without token", func(t *testing.T) {
		svc := newFastService()
		before := svc.UserCount()

		resp, err := svc.Register(ctx, "New Hire", "hire@example.com", "pw")
		require.NoError(t, err)
		assert.Empty(t, resp.BearerToken())
		assert.NotEmpty(t, resp.Message)
		assert.Equal(t, before+1, svc.UserCount())

		login, err := svc.Login(ctx, "hire@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "booking", login.User.Role)
	})

	t.Run("duplicate email rejected without append", func(t *testing.T) {
		svc := newFastService()
		before := svc.UserCount()

		_, err := svc.Register(ctx, "Copy Cat", "admin@sparklewash.local", "pw")
		require.ErrorIs(t, err, model.ErrUserAlreadyExists)
		assert.Contains(t, err.Error(), "already exists")
		assert.Equal(t, before, svc.UserCount())
	})

	t.Run("case-insensitive duplicate detection", func(t *testing.T) {
		svc := newFastService()

		_, err := svc.Register(ctx, "Copy Cat", "ADMIN@SparkleWash.Local", "pw")
		assert.ErrorIs(t, err, model.ErrUserAlreadyExists)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc := newFastService()

		for _, args := range [][3]string{
			{"", "a@b.c", "pw"},
			{"Name", "", "pw"},
			{"Name", "a@b.c", ""},
		} {
			_, err := svc.Register(ctx, args[0], args[1], args[2])
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		}
	})
}

func TestForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	svc := newFastService()

	_, err := svc.ForgotPassword(ctx, "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	resp, err := svc.ForgotPassword(ctx, "dev@sparklewash.local")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)

	_, err = svc.ResetPassword(ctx, "", "newpw")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = svc.ResetPassword(ctx, "any-token", "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	// Token authenticity is not validated by the mock.
	resp, err = svc.ResetPassword(ctx, "garbage-token", "newpw")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	svc := newFastService()
	assert.NoError(t, svc.Logout(context.Background()))
}

func TestDelaysHonorContextCancel(t *testing.T) {
	svc := NewWithDelays(Delays{Login: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.Login(ctx, "dev@sparklewash.local", "pw")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
