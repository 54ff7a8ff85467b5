// Package middleware provides HTTP middleware for the window manager API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing; WebSocket upgrades allowed and
//     trace headers exposed to the shell
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//   - GlobalRateLimit: One bucket shared by every client
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
