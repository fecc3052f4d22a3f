package model

import "time"

// UserRecord is the account shape shared by the console, the session
// record and the dev backend. Role stays a raw string here; the role
// package owns the closed set and the resolution rules.
type UserRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// StoredUser is the dev backend's persisted account record.
type StoredUser struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Record strips the credential fields for responses.
func (u StoredUser) Record() UserRecord {
	return UserRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		LastLogin: u.LastLogin,
	}
}

type AuthClaims struct {
	UserID  string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	TokenID string `json:"jti"`
}
