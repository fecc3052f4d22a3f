package model

// APIResponse is the envelope every backend endpoint answers with.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// AuthResponse is the transient payload auth endpoints return. Some
// deployments send the token as "token", others as "accessToken";
// Token() resolves the precedence.
type AuthResponse struct {
	Token       string      `json:"token,omitempty"`
	AccessToken string      `json:"accessToken,omitempty"`
	User        *UserRecord `json:"user,omitempty"`
	Message     string      `json:"message,omitempty"`
}

// BearerToken returns the effective token: token wins when both fields
// are set, accessToken fills in otherwise.
func (r AuthResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}
