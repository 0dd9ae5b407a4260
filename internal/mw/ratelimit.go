package mw

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiterEntry couples a limiter with its last use, so idle entries can be
// evicted.
type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter stores a rate limiter per client IP address.
type IPRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*ipLimiterEntry
	r   rate.Limit
	b   int
}

// NewIPRateLimiter creates a new IPRateLimiter.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*ipLimiterEntry),
		r:   r,
		b:   b,
	}
}

// Allow reports whether the given IP may proceed.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	entry, exists := l.ips[ip]
	if !exists {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.ips[ip] = entry
	}
	entry.lastSeen = time.Now()
	if len(l.ips) > 1024 {
		l.evictStaleLocked()
	}
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// evictStaleLocked drops limiters idle for over an hour. Caller holds mu.
func (l *IPRateLimiter) evictStaleLocked() {
	cutoff := time.Now().Add(-time.Hour)
	for ip, entry := range l.ips {
		if entry.lastSeen.Before(cutoff) {
			delete(l.ips, ip)
		}
	}
}

// RateLimiter is a middleware for IP-based rate limiting.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
