package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Limit is the sustained number of requests per second per client
	Limit float64
	// Burst is the number of requests a client may make at once
	Burst int
	// IdleTTL is how long a client's bucket is kept after its last request.
	// Zero means DefaultIdleTTL.
	IdleTTL time.Duration
}

// DefaultIdleTTL is used when RateLimitConfig.IdleTTL is zero
const DefaultIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than IdleTTL are dropped.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	config    RateLimitConfig
	now       func() time.Time
	lastSweep time.Time
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultIdleTTL
	}
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		config:    config,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

// Allow consumes a token for key and reports whether the request may
// proceed and how many tokens are left.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	l := rl.limiter(key)
	allowed := l.Allow()
	remaining := int(math.Max(0, math.Floor(l.Tokens())))
	return allowed, remaining
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.config.IdleTTL {
		rl.sweep(now)
	}

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.config.Limit), rl.config.Burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// sweep drops buckets not used within IdleTTL. A dropped client starts
// again with a full bucket, which is what an idle bucket holds anyway.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) >= rl.config.IdleTTL {
			delete(rl.limiters, key)
		}
	}
	rl.lastSweep = now
}

// Clients reports how many client buckets are currently held
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// RateLimitMiddleware returns a Gin middleware that enforces rate limiting
// per client IP
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded",
				"message": fmt.Sprintf("You have exceeded the rate limit of %g requests per second", rl.config.Limit),
			})
			return
		}

		c.Next()
	}
}
