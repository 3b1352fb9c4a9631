package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable LoadConfig reads for the test's duration
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CI", "ENV", "CONFIG_FILE", "SECRETS_DIR",
		"SERVER_HOST", "SERVER_PORT", "ALLOWED_ORIGINS", "PLACEHOLDER_IMAGE",
		"SEED_RECIPES", "LOG_LEVEL", "RATE_LIMIT", "RATE_BURST",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedRecipes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10.0, cfg.RateLimit)
	assert.Equal(t, 20, cfg.RateBurst)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, https://b.test")
	t.Setenv("SEED_RECIPES", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, []string{"http://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SeedRecipes)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Zero(t, cfg.RateLimit)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_port = "7000"
placeholder_image = "https://img.test/placeholder.png"
seed_recipes = false
`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7001")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7001", cfg.ServerPort, "environment overrides the file")
	assert.Equal(t, "https://img.test/placeholder.png", cfg.PlaceholderImage)
	assert.False(t, cfg.SeedRecipes)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "http")
	t.Setenv("ALLOWED_ORIGINS", "localhost:5173")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server_port")
	assert.Contains(t, err.Error(), "allowed_origins")
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadConfigBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_RECIPES", "sometimes")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "SEED_RECIPES")
}

func TestProductionSecrets(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("ENV", "production")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server_host"), []byte("10.0.0.5\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server_port"), []byte("8443\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5:8443", cfg.Addr())
}

func TestProductionRequiresListenAddress(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_HOST")
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "Test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
