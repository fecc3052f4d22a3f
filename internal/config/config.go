package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Console holds the settings the admin console runs with.
type Console struct {
	APIBaseURL   string
	SessionFile  string
	ProbeTimeout time.Duration
}

// Server holds the dev backend settings.
type Server struct {
	Port              string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	JWTSecret         string
	JWTAccessTTL      time.Duration
	CORSOrigins       []string
	RateLimitRPM      int
	AuthRateLimitRPM  int
	UsersFile         string
}

func LoadConsole() *Console {
	_ = godotenv.Load()

	return &Console{
		APIBaseURL:   getEnv("WASHADMIN_API_URL", "http://localhost:8080"),
		SessionFile:  getEnv("WASHADMIN_SESSION_FILE", defaultSessionFile()),
		ProbeTimeout: getDuration("WASHADMIN_PROBE_TIMEOUT", 3*time.Second),
	}
}

func LoadServer() (*Server, error) {
	_ = godotenv.Load()

	cfg := &Server{
		Port:              getEnv("SERVER_PORT", "8080"),
		ReadHeaderTimeout: getDuration("SERVER_READ_HEADER_TIMEOUT", 15*time.Second),
		WriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 30*time.Second),
		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTAccessTTL:      getDuration("JWT_ACCESS_TTL", 12*time.Hour),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:      getInt("RATE_LIMIT_RPM", 300),
		AuthRateLimitRPM:  getInt("AUTH_RATE_LIMIT_RPM", 20),
		UsersFile:         getEnv("USERS_FILE", "./state/users.json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Server) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Port == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if strings.TrimSpace(c.UsersFile) == "" {
		return fmt.Errorf("USERS_FILE cannot be empty")
	}

	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".washadmin/session.json"
	}
	return filepath.Join(home, ".washadmin", "session.json")
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
