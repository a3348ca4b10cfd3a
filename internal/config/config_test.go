package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("API_URL", "https://platform.example.org")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Environment)
	assert.False(t, cfg.IsEnvProduction())
	assert.Equal(t, ":5000", cfg.ListenAddress)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "adapct-secret-key-for-session", cfg.SecretKey)
	assert.Equal(t, "2025-05-01-preview", cfg.TranslatorAPIVersion)
	assert.Equal(t, "gpt-4o-mini", cfg.GPTDeploymentName)
	assert.Equal(t, "inmem", cfg.SessionDriver)
	assert.Equal(t, 30*time.Minute, cfg.SessionLifetime)
	assert.Equal(t, os.TempDir(), cfg.ScratchDir())
}

func TestLoadFromEnvRequiresAPIURL(t *testing.T) {
	t.Setenv("API_URL", "")
	os.Unsetenv("API_URL")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SESSION_LIFETIME", "")
	t.Setenv("UPLOAD_DIR", "")

	path := filepath.Join(t.TempDir(), "portal.env")
	require.NoError(t, os.WriteFile(path, []byte("API_URL=https://env.example.org\nENVIRONMENT=prod\nSESSION_LIFETIME=5m\nUPLOAD_DIR=/var/uploads\n"), 0o600))

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.org", cfg.APIURL)
	assert.True(t, cfg.IsEnvProduction())
	assert.Equal(t, 5*time.Minute, cfg.SessionLifetime)
	assert.Equal(t, "/var/uploads", cfg.ScratchDir())
}

func TestLoadFromEnvMissingFile(t *testing.T) {
	_, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
