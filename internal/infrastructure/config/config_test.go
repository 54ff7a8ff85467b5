package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	// Window config
	assert.Equal(t, 400, cfg.Window.MinWidth)
	assert.Equal(t, 300, cfg.Window.MinHeight)
	assert.Equal(t, 30, cfg.Window.CascadeStep)
	assert.Equal(t, 50, cfg.Window.SnapThreshold)
	assert.Equal(t, 200*time.Millisecond, cfg.Window.AnimationDuration)

	// Catalogue config
	assert.Equal(t, "**/*.{yaml,yml,toml}", cfg.Catalogue.Pattern)
	assert.True(t, cfg.Catalogue.Builtins)
}

func TestDefaultMatchesEnvDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	// Setup environment variables
	envVars := map[string]string{
		"PORT":               "9000",
		"HOST":               "127.0.0.1",
		"WINDOW_MIN_WIDTH":   "320",
		"SNAP_THRESHOLD":     "24",
		"ANIMATION_DURATION": "0s",
		"CATALOGUE_DIR":      "/etc/durgasos/apps",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"RATE_LIMIT_RPS":     "500",
		"RATE_LIMIT_BURST":   "1000",
		"RATE_LIMIT_ENABLED": "false",
	}

	// Set environment variables
	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	// Verify server config
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	// Verify window config
	assert.Equal(t, 320, cfg.Window.MinWidth)
	assert.Equal(t, 300, cfg.Window.MinHeight)
	assert.Equal(t, 24, cfg.Window.SnapThreshold)
	assert.Zero(t, cfg.Window.AnimationDuration)

	// Verify catalogue config
	assert.Equal(t, "/etc/durgasos/apps", cfg.Catalogue.Dir)

	// Verify logging config
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Verify rate limit config
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	// Only set some environment variables
	err := os.Setenv("PORT", "3000")
	require.NoError(t, err)
	defer os.Unsetenv("PORT")

	err = os.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, err)
	defer os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1920, cfg.Window.ViewportWidth)
	assert.Equal(t, 48, cfg.Window.TaskbarHeight)
}

func TestLoadRejectsMalformedValue(t *testing.T) {
	require.NoError(t, os.Setenv("WINDOW_MIN_WIDTH", "wide"))
	defer os.Unsetenv("WINDOW_MIN_WIDTH")

	_, err := Load()
	assert.Error(t, err)

	cfg := LoadOrDefault()
	assert.Equal(t, 400, cfg.Window.MinWidth)
}

func TestServerConfig(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		host     string
		wantPort string
		wantHost string
	}{
		{
			name:     "default values",
			port:     "",
			host:     "",
			wantPort: "8000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom port",
			port:     "9000",
			host:     "",
			wantPort: "9000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom host",
			port:     "",
			host:     "localhost",
			wantPort: "8000",
			wantHost: "localhost",
		},
		{
			name:     "custom port and host",
			port:     "3000",
			host:     "127.0.0.1",
			wantPort: "3000",
			wantHost: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean environment
			os.Unsetenv("PORT")
			os.Unsetenv("HOST")

			// Set test values
			if tt.port != "" {
				err := os.Setenv("PORT", tt.port)
				require.NoError(t, err)
				defer os.Unsetenv("PORT")
			}
			if tt.host != "" {
				err := os.Setenv("HOST", tt.host)
				require.NoError(t, err)
				defer os.Unsetenv("HOST")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantHost, cfg.Server.Host)
		})
	}
}

func TestWindowConfig(t *testing.T) {
	tests := []struct {
		name          string
		minWidth      string
		duration      string
		wantMinWidth  int
		wantAnimation time.Duration
	}{
		{
			name:          "default values",
			wantMinWidth:  400,
			wantAnimation: 200 * time.Millisecond,
		},
		{
			name:          "custom minimum",
			minWidth:      "500",
			wantMinWidth:  500,
			wantAnimation: 200 * time.Millisecond,
		},
		{
			name:          "slow animation",
			duration:      "1s",
			wantMinWidth:  400,
			wantAnimation: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean environment
			os.Unsetenv("WINDOW_MIN_WIDTH")
			os.Unsetenv("ANIMATION_DURATION")

			// Set test values
			if tt.minWidth != "" {
				err := os.Setenv("WINDOW_MIN_WIDTH", tt.minWidth)
				require.NoError(t, err)
				defer os.Unsetenv("WINDOW_MIN_WIDTH")
			}
			if tt.duration != "" {
				err := os.Setenv("ANIMATION_DURATION", tt.duration)
				require.NoError(t, err)
				defer os.Unsetenv("ANIMATION_DURATION")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantMinWidth, cfg.Window.MinWidth)
			assert.Equal(t, tt.wantAnimation, cfg.Window.AnimationDuration)
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		dev       string
		wantLevel string
		wantDev   bool
	}{
		{
			name:      "default values",
			level:     "",
			dev:       "",
			wantLevel: "info",
			wantDev:   false,
		},
		{
			name:      "debug level",
			level:     "debug",
			dev:       "",
			wantLevel: "debug",
			wantDev:   false,
		},
		{
			name:      "development mode",
			level:     "",
			dev:       "true",
			wantLevel: "info",
			wantDev:   true,
		},
		{
			name:      "error level production",
			level:     "error",
			dev:       "false",
			wantLevel: "error",
			wantDev:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean environment
			os.Unsetenv("LOG_LEVEL")
			os.Unsetenv("LOG_DEV")

			// Set test values
			if tt.level != "" {
				err := os.Setenv("LOG_LEVEL", tt.level)
				require.NoError(t, err)
				defer os.Unsetenv("LOG_LEVEL")
			}
			if tt.dev != "" {
				err := os.Setenv("LOG_DEV", tt.dev)
				require.NoError(t, err)
				defer os.Unsetenv("LOG_DEV")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantLevel, cfg.Logging.Level)
			assert.Equal(t, tt.wantDev, cfg.Logging.Development)
		})
	}
}

func TestRateLimitConfig(t *testing.T) {
	tests := []struct {
		name        string
		rps         string
		burst       string
		enabled     string
		wantRPS     int
		wantBurst   int
		wantEnabled bool
	}{
		{
			name:        "default values",
			rps:         "",
			burst:       "",
			enabled:     "",
			wantRPS:     100,
			wantBurst:   200,
			wantEnabled: true,
		},
		{
			name:        "high limits",
			rps:         "1000",
			burst:       "2000",
			enabled:     "",
			wantRPS:     1000,
			wantBurst:   2000,
			wantEnabled: true,
		},
		{
			name:        "disabled",
			rps:         "",
			burst:       "",
			enabled:     "false",
			wantRPS:     100,
			wantBurst:   200,
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean environment
			os.Unsetenv("RATE_LIMIT_RPS")
			os.Unsetenv("RATE_LIMIT_BURST")
			os.Unsetenv("RATE_LIMIT_ENABLED")

			// Set test values
			if tt.rps != "" {
				err := os.Setenv("RATE_LIMIT_RPS", tt.rps)
				require.NoError(t, err)
				defer os.Unsetenv("RATE_LIMIT_RPS")
			}
			if tt.burst != "" {
				err := os.Setenv("RATE_LIMIT_BURST", tt.burst)
				require.NoError(t, err)
				defer os.Unsetenv("RATE_LIMIT_BURST")
			}
			if tt.enabled != "" {
				err := os.Setenv("RATE_LIMIT_ENABLED", tt.enabled)
				require.NoError(t, err)
				defer os.Unsetenv("RATE_LIMIT_ENABLED")
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantRPS, cfg.RateLimit.RequestsPerSecond)
			assert.Equal(t, tt.wantBurst, cfg.RateLimit.Burst)
			assert.Equal(t, tt.wantEnabled, cfg.RateLimit.Enabled)
		})
	}
}
