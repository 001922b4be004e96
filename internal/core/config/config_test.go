package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("TIMEZONE")
	os.Unsetenv("ROUTE_SOURCE")
	os.Unsetenv("AVG_SPEED_MPH")
	os.Unsetenv("ORS_URL")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "haversine", cfg.RouteSource)
	assert.Equal(t, 60.0, cfg.AverageSpeedMPH)
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, 60, cfg.RouteCacheTTLMinutes)
	assert.Equal(t, "https://api.openrouteservice.org", cfg.OpenRouteService.URL)
	assert.Empty(t, cfg.Redis.URL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("TIMEZONE", "America/Chicago")
	os.Setenv("ROUTE_SOURCE", "ors")
	os.Setenv("AVG_SPEED_MPH", "55")
	os.Setenv("ORS_API_KEY", "test-key")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("TIMEZONE")
		os.Unsetenv("ROUTE_SOURCE")
		os.Unsetenv("AVG_SPEED_MPH")
		os.Unsetenv("ORS_API_KEY")
		os.Unsetenv("REDIS_URL")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, "ors", cfg.RouteSource)
	assert.Equal(t, 55.0, cfg.AverageSpeedMPH)
	assert.Equal(t, "test-key", cfg.OpenRouteService.APIKey)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
TIMEZONE=America/Denver
ROUTE_SOURCE=ors
ORS_URL=https://ors.staging.example.com
ORS_API_KEY=staging-key
HTTP_TIMEOUT_SECONDS=10
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "America/Denver", cfg.Timezone)
	assert.Equal(t, "https://ors.staging.example.com", cfg.OpenRouteService.URL)
	assert.Equal(t, "staging-key", cfg.OpenRouteService.APIKey)
	assert.Equal(t, 10, cfg.HTTPTimeoutSeconds)
}
