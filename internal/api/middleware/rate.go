package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
	// IdleTTL evicts limiters for clients unseen this long. Zero disables
	// eviction.
	IdleTTL time.Duration
	// SkipPaths are route templates that bypass the limiter.
	SkipPaths []string
}

// DefaultRateLimitConfig returns production-ready rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		Burst:             200,
		IdleTTL:           10 * time.Minute,
		SkipPaths:         []string{"/metrics", "/health"},
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per client IP
type limiterSet struct {
	mu        sync.Mutex
	clients   map[string]*client // Protected by mu
	cfg       RateLimitConfig
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		clients: make(map[string]*client),
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *limiterSet) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	cl, ok := s.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rate.Limit(s.cfg.RequestsPerSecond), s.cfg.Burst)}
		s.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// sweep drops idle clients at most once per TTL (must hold lock)
func (s *limiterSet) sweep(now time.Time) {
	ttl := s.cfg.IdleTTL
	if ttl <= 0 || now.Sub(s.lastSweep) < ttl {
		return
	}
	s.lastSweep = now
	for ip, cl := range s.clients {
		if now.Sub(cl.lastSeen) >= ttl {
			delete(s.clients, ip)
		}
	}
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func skipSet(paths []string) map[string]bool {
	skip := make(map[string]bool, len(paths))
	for _, p := range paths {
		skip[p] = true
	}
	return skip
}

func tooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "rate limit exceeded",
	})
}

// RateLimit creates a per-IP rate limiting middleware.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	return rateLimit(newLimiterSet(cfg))
}

func rateLimit(set *limiterSet) gin.HandlerFunc {
	skip := skipSet(set.cfg.SkipPaths)
	return func(c *gin.Context) {
		if skip[c.FullPath()] {
			c.Next()
			return
		}
		if !set.allow(c.ClientIP()) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// GlobalRateLimit creates a global rate limiting middleware.
func GlobalRateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	skip := skipSet(cfg.SkipPaths)

	return func(c *gin.Context) {
		if skip[c.FullPath()] {
			c.Next()
			return
		}
		if !limiter.Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
