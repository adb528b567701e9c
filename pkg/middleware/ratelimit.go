package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/agrimind/landing/pkg/metrics"
)

// maxTrackedClients bounds the limiter map.
const maxTrackedClients = 10000

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	capacity int
}

// NewRateLimiter allows perMinute requests per client with the given burst.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		capacity: maxTrackedClients,
	}
}

// Allow reports whether key may make another request now. When the map is
// full, clients whose bucket has refilled are forgotten; if none has, new
// clients are refused until one does.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, exists := l.limiters[key]
	if !exists {
		if len(l.limiters) >= l.capacity {
			l.evictIdle()
		}
		if len(l.limiters) >= l.capacity {
			l.mu.Unlock()
			return false
		}
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// evictIdle drops limiters indistinguishable from a fresh one. Callers hold mu.
func (l *RateLimiter) evictIdle() {
	for key, limiter := range l.limiters {
		if limiter.Tokens() >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}

// Middleware rejects requests over the limit with 429. route labels the
// rejection metric.
func (l *RateLimiter) Middleware(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.RateLimited.WithLabelValues(route).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
