package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "BASE_URL", "ENVIRONMENT", "LOG_LEVEL", "DATABASE_URL",
		"ADMIN_EMAIL", "ADMIN_NAME", "ADMIN_PASSWORD_HASH",
		"GITHUB_CLIENT_ID", "GITHUB_CLIENT_SECRET", "GITHUB_ADMIN_LOGINS",
		"SESSION_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "http://localhost:8080/admin/auth/callback", cfg.GitHubCallbackURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.GitHubEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://aisb.example/")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADMIN_EMAIL", " Admin@AISB.example ")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("GITHUB_CLIENT_ID", "id")
	t.Setenv("GITHUB_CLIENT_SECRET", "secret")
	t.Setenv("GITHUB_ADMIN_LOGINS", "alice, bob,,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://aisb.example", cfg.BaseURL)
	assert.Equal(t, "https://aisb.example/admin/auth/callback", cfg.GitHubCallbackURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "admin@aisb.example", cfg.AdminEmail)
	assert.Equal(t, []string{"alice", "bob"}, cfg.GitHubAdminLogins)
	assert.True(t, cfg.GitHubEnabled())
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	clearEnv(t)

	assert.Panics(t, func() {
		_, _ = config.Load()
	})
}

func TestLoad_ShortSessionSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_AdminEmailWithoutHash(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("ADMIN_EMAIL", "admin@aisb.example")

	_, err := config.Load()
	assert.Error(t, err)
}
