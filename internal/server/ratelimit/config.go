package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the rate limit for one endpoint. Paths ending in "/" are
// treated as prefixes by matchRule.
type Rule struct {
	Path   string
	Method string
	Limit  int           // requests per Window; <= 0 means unlimited
	Window time.Duration
	Burst  int           // burst capacity; defaults to Limit if 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Trusted         map[string]bool // client IDs exempt from limiting
	Blocked         map[string]bool // client IDs always rejected
	Rules           []Rule
}

// DefaultConfig returns the built-in limits for the analysis API.
// Analysis requests run the full parsing and extraction pipeline, so
// they get a tighter budget than plain reads.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Trusted:         make(map[string]bool),
		Blocked:         make(map[string]bool),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-endpoint limits.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/analyze/keywords", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/reports/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/trends", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

// LoadConfig builds a Config from RATE_LIMIT_* environment variables,
// falling back to the defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := DefaultConfig()
	cfg.DefaultLimit = envInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = envDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Trusted = parseClientList(os.Getenv("RATE_LIMIT_TRUSTED"))
	cfg.Blocked = parseClientList(os.Getenv("RATE_LIMIT_BLOCKED"))
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseClientList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			result[id] = true
		}
	}
	return result
}
