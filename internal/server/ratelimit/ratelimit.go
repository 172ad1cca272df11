// Package ratelimit provides token bucket rate limiting for the analysis API.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket. Tokens refill continuously at refillRate
// tokens per second up to capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// refill must be called with b.mu held.
func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
}

// take consumes one token if available and reports the remaining count
// and the time at which the bucket will be full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		reset = now
	}
	return allowed, remaining, reset
}

// Info describes the outcome of a rate limit check, suitable for
// X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter enforces per-client, per-endpoint rate limits.
type Limiter struct {
	config *Config

	mu      sync.Mutex
	buckets map[string]*bucket
	touched map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter from config. A nil config enables the
// defaults from DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
		touched: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID to the given path and
// method may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Trusted[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blocked[clientID] {
		return false, Info{Allowed: false}
	}

	rule := matchRule(path, method, l.config.Rules)
	if rule == nil {
		rule = &Rule{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if rule.Limit <= 0 {
		// Unlimited endpoint, e.g. health checks.
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + method + " " + path
	b := l.bucketFor(key, rule)

	allowed, remaining, reset := b.take()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(reset), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      rule.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) bucketFor(key string, rule *Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.touched[key] = time.Now()
	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := rule.Burst
	if burst <= 0 {
		burst = rule.Limit
	}
	b := newBucket(burst, float64(rule.Limit)/rule.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictStale()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictStale drops buckets idle for more than an hour so long-running
// servers do not accumulate one bucket per client forever.
func (l *Limiter) evictStale() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, last := range l.touched {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.touched, key)
		}
	}
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
