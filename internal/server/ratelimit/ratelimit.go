// Package ratelimit provides per-client request rate limiting using the
// token bucket algorithm.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // Requests per window, also the burst capacity
	Window          time.Duration // Refill window
	CleanupInterval time.Duration // How often idle client buckets are pruned
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Enabled:         true,
		Limit:           300,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Limit = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Window = d
		}
	}
	if v := os.Getenv("RATE_LIMIT_CLEANUP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CleanupInterval = d
		}
	}
	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks a token bucket per client ID.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter with the given configuration. When enabled
// with a cleanup interval, a background goroutine prunes idle client buckets
// until Stop is called.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(cfg.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup(l.cleanupTicker, l.cleanupStop)
	}

	return l
}

func (l *Limiter) cleanup(ticker *time.Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-ticker.C:
			l.Prune(l.cfg.CleanupInterval)
		case <-stop:
			return
		}
	}
}

// Stop terminates the cleanup goroutine. Safe to call on a limiter that
// never started one.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
		l.cleanupTicker = nil
	}
}

// Allow reports whether a request from the client is within the limit and
// consumes a token when it is. Also returns the remaining token count.
func (l *Limiter) Allow(clientID string) (bool, int) {
	if !l.cfg.Enabled {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Limit), lastRefill: now}
		l.buckets[clientID] = b
	}

	refillRate := float64(l.cfg.Limit) / l.cfg.Window.Seconds()
	b.tokens += now.Sub(b.lastRefill).Seconds() * refillRate
	if b.tokens > float64(l.cfg.Limit) {
		b.tokens = float64(l.cfg.Limit)
	}
	b.lastRefill = now

	if b.tokens < 1.0 {
		return false, 0
	}
	b.tokens -= 1.0
	return true, int(b.tokens)
}

// Prune drops buckets idle longer than the given duration. The cleanup
// goroutine runs this periodically to keep memory bounded.
func (l *Limiter) Prune(idle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-idle)
	for id, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
