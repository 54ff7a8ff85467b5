// Package config provides 12-factor configuration management for the
// window manager backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Window: Minimum size, cascade offsets, snap threshold, default viewport
//   - Catalogue: App definition directory and glob pattern
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - WINDOW_MIN_WIDTH, WINDOW_MIN_HEIGHT, WINDOW_CASCADE_*, SNAP_THRESHOLD
//   - TASKBAR_HEIGHT, ANIMATION_DURATION, VIEWPORT_WIDTH, VIEWPORT_HEIGHT
//   - CATALOGUE_DIR, CATALOGUE_PATTERN, CATALOGUE_BUILTINS
package config
