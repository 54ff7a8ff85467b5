package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Window    WindowConfig
	Catalogue CatalogueConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// WindowConfig holds window registry and layout defaults.
type WindowConfig struct {
	MinWidth          int           `envconfig:"WINDOW_MIN_WIDTH" default:"400"`
	MinHeight         int           `envconfig:"WINDOW_MIN_HEIGHT" default:"300"`
	CascadeOriginX    int           `envconfig:"WINDOW_CASCADE_ORIGIN_X" default:"50"`
	CascadeOriginY    int           `envconfig:"WINDOW_CASCADE_ORIGIN_Y" default:"50"`
	CascadeStep       int           `envconfig:"WINDOW_CASCADE_STEP" default:"30"`
	CascadeWrapX      int           `envconfig:"WINDOW_CASCADE_WRAP_X" default:"400"`
	CascadeWrapY      int           `envconfig:"WINDOW_CASCADE_WRAP_Y" default:"200"`
	SnapThreshold     int           `envconfig:"SNAP_THRESHOLD" default:"50"`
	TaskbarHeight     int           `envconfig:"TASKBAR_HEIGHT" default:"48"`
	AnimationDuration time.Duration `envconfig:"ANIMATION_DURATION" default:"200ms"`
	ViewportWidth     int           `envconfig:"VIEWPORT_WIDTH" default:"1920"`
	ViewportHeight    int           `envconfig:"VIEWPORT_HEIGHT" default:"1080"`
}

// CatalogueConfig holds app catalogue seeding configuration.
type CatalogueConfig struct {
	Dir      string `envconfig:"CATALOGUE_DIR" default:"../apps"`
	Pattern  string `envconfig:"CATALOGUE_PATTERN" default:"**/*.{yaml,yml,toml}"`
	Builtins bool   `envconfig:"CATALOGUE_BUILTINS" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Window: WindowConfig{
			MinWidth:          400,
			MinHeight:         300,
			CascadeOriginX:    50,
			CascadeOriginY:    50,
			CascadeStep:       30,
			CascadeWrapX:      400,
			CascadeWrapY:      200,
			SnapThreshold:     50,
			TaskbarHeight:     48,
			AnimationDuration: 200 * time.Millisecond,
			ViewportWidth:     1920,
			ViewportHeight:    1080,
		},
		Catalogue: CatalogueConfig{
			Dir:      "../apps",
			Pattern:  "**/*.{yaml,yml,toml}",
			Builtins: true,
		},
	}
}
