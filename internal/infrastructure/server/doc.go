// Package server wires configuration, the window manager core and the
// transports into one HTTP server.
//
// Middleware order: recovery, tracing, metrics, CORS, then the optional
// per-IP rate limiter. /metrics serves the Prometheus registry and /stream
// upgrades to the session WebSocket.
package server
