package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
	"wash-admin/pkg/apierror"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	svc, err := NewAuthService(filepath.Join(t.TempDir(), "users.json"), "test-secret", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestAuthServiceSeedsDevAccount(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login("dev@sparklewash.local", "devpass123")
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, string(role.Developer), resp.User.Role)
	assert.NotNil(t, resp.User.LastLogin)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login("dev@sparklewash.local", "nope")
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login("ghost@sparklewash.local", "whatever")
	require.Error(t, err)
}

func TestAuthServiceRegisterDefaultsToBooking(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Register("Front Desk", "desk@sparklewash.local", "deskpass1")
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, string(role.Booking), resp.User.Role)
	assert.Empty(t, resp.Token, "registration must not sign the user in")

	_, err = svc.Login("desk@sparklewash.local", "deskpass1")
	assert.NoError(t, err)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register("Dup", "dev@sparklewash.local", "password1")
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ALREADY_EXISTS", apiErr.Code)
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login("dev@sparklewash.local", "devpass123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "dev@sparklewash.local", claims.Email)
	assert.Equal(t, string(role.Developer), claims.Role)
}

func TestAuthServiceValidateGarbageToken(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestAuthServiceResetPasswordFlow(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.ForgotPassword("dev@sparklewash.local")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	_, err = svc.ResetPassword(resp.Token, "newpass456")
	require.NoError(t, err)

	_, err = svc.Login("dev@sparklewash.local", "devpass123")
	assert.Error(t, err, "old password must stop working")

	_, err = svc.Login("dev@sparklewash.local", "newpass456")
	assert.NoError(t, err)
}

func TestAuthServiceResetTokenSingleUse(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.ForgotPassword("dev@sparklewash.local")
	require.NoError(t, err)

	_, err = svc.ResetPassword(resp.Token, "newpass456")
	require.NoError(t, err)

	_, err = svc.ResetPassword(resp.Token, "anotherpass")
	assert.Error(t, err)
}

func TestAuthServiceForgotPasswordUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.ForgotPassword("nobody@sparklewash.local")
	require.NoError(t, err)
	assert.Empty(t, resp.Token)
	assert.NotEmpty(t, resp.Message)
}

func TestAuthServiceCreateStaffRoleTable(t *testing.T) {
	tests := []struct {
		name      string
		actorRole string
		target    string
		wantErr   bool
	}{
		{"developer assigns admin", "developer", "admin", false},
		{"developer assigns booking", "developer", "booking", false},
		{"developer assigns developer", "developer", "developer", true},
		{"admin assigns booking", "admin", "booking", false},
		{"admin assigns admin", "admin", "admin", true},
		{"booking assigns booking", "booking", "booking", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t)

			_, err := svc.CreateStaff(tt.actorRole, newStaffRequest(tt.target))
			if tt.wantErr {
				var apiErr *apierror.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "FORBIDDEN", apiErr.Code)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthServiceCreateStaffUnknownRole(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.CreateStaff("developer", newStaffRequest("janitor"))
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestAuthServiceSetRole(t *testing.T) {
	svc := newTestAuthService(t)

	created, err := svc.CreateStaff("developer", newStaffRequest("booking"))
	require.NoError(t, err)

	updated, err := svc.SetRole("developer", created.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	_, err = svc.SetRole("admin", created.ID, "admin")
	assert.Error(t, err, "admin may not hand out admin")
}

func TestAuthServiceDeleteUser(t *testing.T) {
	svc := newTestAuthService(t)

	created, err := svc.CreateStaff("developer", newStaffRequest("booking"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser("someone-else", created.ID))
	_, err = svc.GetUserByID(created.ID)
	assert.Error(t, err)
}

func TestAuthServiceDeleteSelfBlocked(t *testing.T) {
	svc := newTestAuthService(t)

	created, err := svc.CreateStaff("developer", newStaffRequest("booking"))
	require.NoError(t, err)

	err = svc.DeleteUser(created.ID, created.ID)
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestAuthServicePersistsAcrossRestart(t *testing.T) {
	usersFile := filepath.Join(t.TempDir(), "users.json")

	first, err := NewAuthService(usersFile, "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = first.Register("Front Desk", "desk@sparklewash.local", "deskpass1")
	require.NoError(t, err)

	second, err := NewAuthService(usersFile, "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = second.Login("desk@sparklewash.local", "deskpass1")
	assert.NoError(t, err)
}

func newStaffRequest(roleName string) model.CreateStaffRequest {
	return model.CreateStaffRequest{
		Name:     "New Staff",
		Email:    "staff-" + roleName + "@sparklewash.local",
		Password: "staffpass1",
		Role:     roleName,
	}
}
