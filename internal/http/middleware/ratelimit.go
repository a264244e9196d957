// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements an in-memory token-bucket rate limiter with one
// bucket per client key and opportunistic eviction of idle buckets. It is
// process-local; behind an API gateway the gateway's own throttling applies
// across instances.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// visitorTTL is how long an idle bucket is kept.
	visitorTTL = 10 * time.Minute
	// gcEvery is the number of lookups between eviction sweeps.
	gcEvery = 5000
)

// KeyFunc selects the identity used to key a rate-limit bucket.
type KeyFunc func(*gin.Context) string

// KeyByClientIP keys buckets on the client IP as resolved by Gin.
func KeyByClientIP() KeyFunc {
	return func(c *gin.Context) string { return "ip:" + c.ClientIP() }
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-key token-bucket limiter. Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn KeyFunc
	ttl   time.Duration

	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  uint64
}

// NewRateLimiter returns a limiter refilling rps tokens per second with the
// given burst; burst <= 0 is coerced to 1.
func NewRateLimiter(rps float64, burst int, keyFn KeyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		ttl:      visitorTTL,
		visitors: make(map[string]*visitor),
	}
}

// limiterFor returns the bucket for key, creating it if needed. Eviction runs
// before the lookup so a stale entry for key itself is replaced.
func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= gcEvery {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= rl.ttl {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// Handler rejects requests over the limit with 429, a Retry-After header and
// the standard error envelope:
//
//	{ "request_id": "...", "error": "TooManyRequests", "message": "rate limit exceeded" }
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiterFor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"error":      "TooManyRequests",
			"message":    "rate limit exceeded",
		})
	}
}
