package auth

import (
	"sync"
	"time"
)

// RateLimiter answers whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(key string) bool
}

// TokenBucketLimiter is an in-memory token bucket limiter keyed by an
// arbitrary string, typically the client IP. It is used to throttle the
// credential endpoints.
type TokenBucketLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	burst      int
	refillRate time.Duration
	lastSweep  time.Time
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewTokenBucketLimiter creates a limiter allowing burst requests
// immediately and one more per refillRate thereafter.
func NewTokenBucketLimiter(burst int, refillRate time.Duration) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		buckets:    make(map[string]*bucket),
		burst:      burst,
		refillRate: refillRate,
		lastSweep:  time.Now(),
	}
}

// Allow consumes a token for key if one is available.
func (l *TokenBucketLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweepLocked(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.burst, lastRefill: now}
		l.buckets[key] = b
	}

	if refill := int(now.Sub(b.lastRefill) / l.refillRate); refill > 0 {
		b.tokens += refill
		if b.tokens > l.burst {
			b.tokens = l.burst
		}
		b.lastRefill = now
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// sweepLocked drops buckets that have been idle long enough to be full
// again, bounding memory for one-off clients.
func (l *TokenBucketLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < 5*time.Minute {
		return
	}
	idle := time.Duration(l.burst) * l.refillRate
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) > idle {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
