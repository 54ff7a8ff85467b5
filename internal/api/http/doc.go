// Package http exposes the window manager over REST using gin.
//
// Every window and desktop operation answers 200 with an "outcome" field:
// a missing id is reported as outcome "missing" because a no-op is not an
// error. Malformed ids and bodies answer 400.
//
// Example Usage:
//
//	handlers := http.NewHandlers(sh, hub, metrics, logger)
//	handlers.Register(router)
package http
