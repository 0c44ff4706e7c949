package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClientConfig_Defaults(t *testing.T) {
	cfg, err := buildClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, filepath.Join(cfg.DataDir, "state.db"), cfg.StatePath())
}

func TestBuildClientConfig_EnvBeforeFlags(t *testing.T) {
	t.Setenv("F4F_ADMIN_CLIENT_SERVER_URL", "https://portal.example.org")

	cfg, err := buildClientConfig([]string{"-s", "http://ignored:1", "-refresh-interval", "5m", "-data-dir", "/tmp/f4f"})
	require.NoError(t, err)

	assert.Equal(t, "https://portal.example.org", cfg.ServerURL)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "/tmp/f4f/admin.log", cfg.LogPath())
}

func TestBuildClientConfig_InvalidURL(t *testing.T) {
	_, err := buildClientConfig([]string{"-s", "not a url"})
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}
