package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burstConfig(limit, burst int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Trusted:       map[string]bool{},
		Blocked:       map[string]bool{},
		Rules: []Rule{
			{Path: "/analyze", Method: "POST", Limit: limit, Window: time.Minute, Burst: burst},
		},
	}
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(burstConfig(10, 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed, "request %d should pass", i)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed, "burst exhausted")
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(burstConfig(10, 1))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/analyze", "POST")
	require.True(t, allowed)

	denied, _ := l.Allow("1.1.1.1", "/analyze", "POST")
	assert.False(t, denied)

	other, _ := l.Allow("2.2.2.2", "/analyze", "POST")
	assert.True(t, other, "a different client has its own bucket")
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
		require.True(t, allowed)
	}
}

func TestLimiterTrustedAndBlocked(t *testing.T) {
	cfg := burstConfig(1, 1)
	cfg.Trusted["10.0.0.1"] = true
	cfg.Blocked["6.6.6.6"] = true

	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST")
		require.True(t, allowed, "trusted clients are never limited")
	}

	allowed, _ := l.Allow("6.6.6.6", "/health", "GET")
	assert.False(t, allowed, "blocked clients are always rejected")
}

func TestLimiterHealthUnlimited(t *testing.T) {
	l := NewLimiter(burstConfig(1, 1))
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiterBucketsPerEndpoint(t *testing.T) {
	l := NewLimiter(burstConfig(10, 1))
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
	require.True(t, allowed)
	denied, _ := l.Allow("1.2.3.4", "/analyze", "POST")
	require.False(t, denied)

	// A different endpoint uses the default rule and its own bucket.
	allowed, info := l.Allow("1.2.3.4", "/trends", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestBucketRefills(t *testing.T) {
	// 600 per minute = 10 tokens per second.
	b := newBucket(1, 10)

	allowed, _, _ := b.take()
	require.True(t, allowed)
	denied, _, _ := b.take()
	require.False(t, denied)

	time.Sleep(150 * time.Millisecond)
	refilled, _, _ := b.take()
	assert.True(t, refilled, "tokens refill over time")
}

func TestMatchRule(t *testing.T) {
	rules := []Rule{
		{Path: "/analyze", Method: "POST", Limit: 30},
		{Path: "/reports/", Method: "GET", Limit: 120},
	}

	exact := matchRule("/analyze", "POST", rules)
	require.NotNil(t, exact)
	assert.Equal(t, 30, exact.Limit)

	prefix := matchRule("/reports/abc-123", "GET", rules)
	require.NotNil(t, prefix)
	assert.Equal(t, 120, prefix.Limit)

	assert.Nil(t, matchRule("/analyze", "GET", rules), "method must match")
	assert.Nil(t, matchRule("/unknown", "GET", rules))

	health := matchRule("/health", "GET", nil)
	require.NotNil(t, health)
	assert.Zero(t, health.Limit, "health checks are unlimited")
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_TRUSTED", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.True(t, cfg.Trusted["10.0.0.1"])
	assert.True(t, cfg.Trusted["10.0.0.2"])
	assert.NotEmpty(t, cfg.Rules, "endpoint rules stay in place")
}
