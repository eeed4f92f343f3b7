// Package ratelimit provides per-client rate limiting using a token
// bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests up to capacity, with tokens
// refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// refill must be called with tb.mu held.
func (tb *tokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

func (tb *tokenBucket) remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return int(tb.tokens)
}

// Info describes the rate limit state for a client at decision time.
type Info struct {
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client identifier. Idle buckets
// are evicted by a background sweep so the map does not grow without
// bound.
type Limiter struct {
	capacity   int
	refillRate float64

	mu       sync.Mutex
	buckets  map[string]*limiterEntry
	stopOnce sync.Once
	stop     chan struct{}
}

type limiterEntry struct {
	bucket   *tokenBucket
	lastSeen time.Time
}

// NewLimiter creates a limiter allowing capacity requests per client as
// a burst, refilling at refillRate tokens per second. A capacity of zero
// or less disables limiting.
func NewLimiter(capacity int, refillRate float64) *Limiter {
	l := &Limiter{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*limiterEntry),
		stop:       make(chan struct{}),
	}
	if capacity > 0 {
		go l.sweep()
	}
	return l
}

// Allow reports whether the client may proceed, together with the
// current limit state.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.capacity <= 0 {
		return true, Info{}
	}

	l.mu.Lock()
	entry, ok := l.buckets[clientID]
	if !ok {
		entry = &limiterEntry{bucket: newTokenBucket(l.capacity, l.refillRate)}
		l.buckets[clientID] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	allowed := entry.bucket.allow()
	info := Info{Limit: l.capacity, Remaining: entry.bucket.remaining()}
	if !allowed && l.refillRate > 0 {
		info.RetryAfter = time.Duration(1.0 / l.refillRate * float64(time.Second))
	}
	return allowed, info
}

// Stop terminates the background sweep goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			l.mu.Lock()
			for id, entry := range l.buckets {
				if entry.lastSeen.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
