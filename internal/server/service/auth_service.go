package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wash-admin/internal/model"
	"wash-admin/internal/role"
	"wash-admin/pkg/apierror"
)

// AuthService backs the dev server's auth endpoints. Accounts live in
// a JSON file seeded with a developer account on first start; reset
// tokens are held in memory only.
type AuthService struct {
	usersFile    string
	jwtSecret    []byte
	accessTTL    time.Duration
	mu           sync.RWMutex
	usersByEmail map[string]model.StoredUser
	usersByID    map[string]model.StoredUser
	resetTokens  map[string]string
}

func NewAuthService(usersFile string, jwtSecret string, accessTTL time.Duration) (*AuthService, error) {
	service := &AuthService{
		usersFile:    usersFile,
		jwtSecret:    []byte(jwtSecret),
		accessTTL:    accessTTL,
		usersByEmail: map[string]model.StoredUser{},
		usersByID:    map[string]model.StoredUser{},
		resetTokens:  map[string]string{},
	}

	if err := service.loadUsers(); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *AuthService) Login(email string, password string) (model.AuthResponse, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.usersByEmail[key]
	if !exists {
		return model.AuthResponse{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.AuthResponse{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	s.usersByEmail[key] = user
	s.usersByID[user.ID] = user
	if err := s.saveUsersLocked(); err != nil {
		return model.AuthResponse{}, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return model.AuthResponse{}, err
	}

	record := user.Record()
	return model.AuthResponse{
		Token:   token,
		User:    &record,
		Message: "signed in",
	}, nil
}

// Register creates a public self-service account, always role booking.
func (s *AuthService) Register(name string, email string, password string) (model.AuthResponse, error) {
	return s.createUser(name, email, password, string(role.Booking))
}

// CreateStaff creates an account on behalf of actor, honoring the
// role assignment table.
func (s *AuthService) CreateStaff(actorRole string, req model.CreateStaffRequest) (model.UserRecord, error) {
	target := role.Resolve(req.Role)
	if !role.Known(req.Role) {
		return model.UserRecord{}, apierror.New("BAD_REQUEST", "invalid role", req.Role, http.StatusBadRequest)
	}
	if !role.CanAssign(role.Resolve(actorRole), target) {
		return model.UserRecord{}, apierror.New("FORBIDDEN", fmt.Sprintf("role %s may not assign role %s", actorRole, target), "", http.StatusForbidden)
	}

	resp, err := s.createUser(req.Name, req.Email, req.Password, string(target))
	if err != nil {
		return model.UserRecord{}, err
	}

	return *resp.User, nil
}

func (s *AuthService) createUser(name string, email string, password string, roleName string) (model.AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return model.AuthResponse{}, apierror.New("BAD_REQUEST", "name, email and password are required", "", http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[email]; exists {
		return model.AuthResponse{}, apierror.New("ALREADY_EXISTS", "account with this email already exists", email, http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return model.AuthResponse{}, err
	}

	now := time.Now().UTC()
	user := model.StoredUser{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         roleName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.usersByEmail[email] = user
	s.usersByID[user.ID] = user

	if err := s.saveUsersLocked(); err != nil {
		return model.AuthResponse{}, err
	}

	record := user.Record()
	return model.AuthResponse{
		User:    &record,
		Message: "registration complete, you can sign in now",
	}, nil
}

// ForgotPassword mints a reset token for a known email. Unknown emails
// get the same message so the endpoint does not leak account existence.
func (s *AuthService) ForgotPassword(email string) (model.AuthResponse, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return model.AuthResponse{}, apierror.New("BAD_REQUEST", "email is required", "", http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	message := "if the account exists, a reset link has been sent"
	user, exists := s.usersByEmail[key]
	if !exists {
		return model.AuthResponse{Message: message}, nil
	}

	resetToken := uuid.NewString()
	s.resetTokens[resetToken] = user.ID

	// A real deployment mails the token; the dev server logs it via
	// the handler and hands it back in the message for convenience.
	return model.AuthResponse{Message: message, Token: resetToken}, nil
}

func (s *AuthService) ResetPassword(resetToken string, password string) (model.AuthResponse, error) {
	resetToken = strings.TrimSpace(resetToken)
	if resetToken == "" || password == "" {
		return model.AuthResponse{}, apierror.New("BAD_REQUEST", "token and password are required", "", http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, exists := s.resetTokens[resetToken]
	if !exists {
		return model.AuthResponse{}, apierror.New("UNAUTHORIZED", "reset token is invalid or used", "", http.StatusUnauthorized)
	}
	delete(s.resetTokens, resetToken)

	user, ok := s.usersByID[userID]
	if !ok {
		return model.AuthResponse{}, apierror.New("UNAUTHORIZED", "user no longer exists", "", http.StatusUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	s.usersByEmail[user.Email] = user
	s.usersByID[user.ID] = user
	if err := s.saveUsersLocked(); err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Message: "password has been reset"}, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apierror.New("UNAUTHORIZED", "invalid token signing method", "", http.StatusUnauthorized)
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.New("UNAUTHORIZED", "invalid or expired token", "", http.StatusUnauthorized)
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.New("UNAUTHORIZED", "invalid token claims", "", http.StatusUnauthorized)
	}

	claims := &model.AuthClaims{}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.Name, _ = claimsMap["name"].(string)
	claims.Email, _ = claimsMap["email"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	claims.TokenID, _ = claimsMap["jti"].(string)

	if claims.UserID == "" {
		return nil, apierror.New("UNAUTHORIZED", "invalid token subject", "", http.StatusUnauthorized)
	}

	return claims, nil
}

func (s *AuthService) GetUserByID(userID string) (model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByID[userID]
	if !exists {
		return model.UserRecord{}, apierror.New("NOT_FOUND", "user not found", userID, http.StatusNotFound)
	}

	return user.Record(), nil
}

func (s *AuthService) ListUsers() []model.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.UserRecord, 0, len(s.usersByID))
	for _, user := range s.usersByID {
		out = append(out, user.Record())
	}
	return out
}

func (s *AuthService) SetRole(actorRole string, userID string, newRole string) (model.UserRecord, error) {
	if !role.Known(newRole) {
		return model.UserRecord{}, apierror.New("BAD_REQUEST", "invalid role", newRole, http.StatusBadRequest)
	}
	if !role.CanAssign(role.Resolve(actorRole), role.Resolve(newRole)) {
		return model.UserRecord{}, apierror.New("FORBIDDEN", fmt.Sprintf("role %s may not assign role %s", actorRole, newRole), "", http.StatusForbidden)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.usersByID[userID]
	if !exists {
		return model.UserRecord{}, apierror.New("NOT_FOUND", "user not found", userID, http.StatusNotFound)
	}

	user.Role = string(role.Resolve(newRole))
	user.UpdatedAt = time.Now().UTC()
	s.usersByID[userID] = user
	s.usersByEmail[user.Email] = user
	if err := s.saveUsersLocked(); err != nil {
		return model.UserRecord{}, err
	}

	return user.Record(), nil
}

func (s *AuthService) DeleteUser(actorID string, userID string) error {
	if actorID == userID {
		return apierror.New("BAD_REQUEST", "you cannot delete your own account", "", http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.usersByID[userID]
	if !exists {
		return apierror.New("NOT_FOUND", "user not found", userID, http.StatusNotFound)
	}

	delete(s.usersByID, userID)
	delete(s.usersByEmail, user.Email)
	return s.saveUsersLocked()
}

func (s *AuthService) signToken(user model.StoredUser) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) loadUsers() error {
	if strings.TrimSpace(s.usersFile) == "" {
		return fmt.Errorf("users file path is required")
	}

	if err := os.MkdirAll(filepath.Dir(s.usersFile), 0o755); err != nil {
		return err
	}

	data, err := os.ReadFile(s.usersFile)
	if os.IsNotExist(err) || (err == nil && len(strings.TrimSpace(string(data))) == 0) {
		if err := s.seedDefaultAccounts(); err != nil {
			return err
		}
		data, err = os.ReadFile(s.usersFile)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var users []model.StoredUser
	if err := json.Unmarshal(data, &users); err != nil {
		return err
	}

	usersByEmail := map[string]model.StoredUser{}
	usersByID := map[string]model.StoredUser{}
	for _, user := range users {
		usersByEmail[strings.ToLower(user.Email)] = user
		usersByID[user.ID] = user
	}

	s.mu.Lock()
	s.usersByEmail = usersByEmail
	s.usersByID = usersByID
	s.mu.Unlock()

	return nil
}

func (s *AuthService) seedDefaultAccounts() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("devpass123"), 12)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	seeded := []model.StoredUser{{
		ID:           uuid.NewString(),
		Name:         "Dev Account",
		Email:        "dev@sparklewash.local",
		PasswordHash: string(hash),
		Role:         string(role.Developer),
		CreatedAt:    now,
		UpdatedAt:    now,
	}}

	data, err := json.MarshalIndent(seeded, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.usersFile, data, 0o600)
}

func (s *AuthService) saveUsersLocked() error {
	users := make([]model.StoredUser, 0, len(s.usersByID))
	for _, user := range s.usersByID {
		users = append(users, user)
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.usersFile, data, 0o600)
}
