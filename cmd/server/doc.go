// Package main is the entry point for the DurgasOS window manager backend.
//
// The server owns the authoritative window and desktop state of the browser
// desktop shell. The shell streams pointer events, viewport changes and
// shortcut chords over a WebSocket and receives state snapshots back.
//
// The server provides:
//   - REST API for windows, desktops, taskbar and shortcuts
//   - WebSocket stream for gestures and snapshot push
//   - App catalogue seeded from built-ins and YAML/TOML files
//   - Prometheus metrics and request tracing
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -apps ./apps
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
