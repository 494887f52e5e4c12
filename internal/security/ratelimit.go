// Package security provides request rate limiting for the endpoints
// that create or look up profiles.
package security

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a per-client token bucket. Each client gets rate
// tokens per window; requests beyond that are rejected.
type RateLimiter struct {
	clients map[string]*bucket
	mu      sync.Mutex
	rate    int
	window  time.Duration
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing rate requests per window
// per client.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*bucket),
		rate:    rate,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether a request from the client should proceed
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[client]
	if !ok {
		b = &bucket{tokens: rl.rate, lastRefill: time.Now()}
		rl.clients[client] = b
	}

	if time.Since(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = time.Now()
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// cleanup drops buckets that have been idle for two full windows
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for client, b := range rl.clients {
			if now.Sub(b.lastRefill) > rl.window*2 {
				delete(rl.clients, client)
			}
		}
		rl.mu.Unlock()
	}
}

// ClientIP extracts the client address, preferring proxy headers
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First entry is the originating client
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
