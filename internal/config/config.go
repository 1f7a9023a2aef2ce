package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production
	LogLevel    slog.Level

	// Database (optional; admin accounts fall back to the static account)
	DatabaseURL string

	// Static admin account
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string

	// GitHub OAuth (optional)
	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string
	GitHubAdminLogins  []string

	// Session
	SessionSecret string
	SessionMaxAge time.Duration
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    level,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminEmail:        strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		AdminName:         getEnv("ADMIN_NAME", "Administrator"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		GitHubAdminLogins:  splitList(os.Getenv("GITHUB_ADMIN_LOGINS")),

		SessionSecret: mustGetEnv("SESSION_SECRET"),
		SessionMaxAge: 7 * 24 * time.Hour, // 1 week
	}

	cfg.GitHubCallbackURL = cfg.BaseURL + "/admin/auth/callback"

	// Validate session secret length (need 64 bytes for hash key + block key)
	if len(cfg.SessionSecret) < 64 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(cfg.SessionSecret))
	}

	if cfg.AdminEmail != "" && cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required when ADMIN_EMAIL is set")
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether admin accounts are stored in Postgres.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// GitHubEnabled reports whether sign-in with GitHub is configured.
func (c *Config) GitHubEnabled() bool {
	return c.GitHubClientID != "" && c.GitHubClientSecret != "" && len(c.GitHubAdminLogins) > 0
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// mustGetEnv returns the value of an environment variable or panics if not set.
func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

// splitList splits a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
