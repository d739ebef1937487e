package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const clientIdleTTL = 10 * time.Minute

// RateLimiter throttles requests per client IP using token buckets.
// Buckets refill continuously, so a client that backs off regains its
// full allowance within a minute.
type RateLimiter struct {
	max  float64 // bucket capacity, tokens
	rate float64 // refill rate, tokens per second

	mu      sync.Mutex
	clients map[string]*tokenBucket

	stop chan struct{}
	done chan struct{}
}

type tokenBucket struct {
	tokens   float64
	refilled time.Time
}

// NewRateLimiter creates a limiter allowing maxPerMinute requests per
// client and starts a background sweep that drops idle clients. Call
// Stop on shutdown.
func NewRateLimiter(maxPerMinute int, sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		max:     float64(maxPerMinute),
		rate:    float64(maxPerMinute) / 60.0,
		clients: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.sweep(sweepInterval)
	return rl
}

// Stop terminates the sweep goroutine and waits for it to exit.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

// Limit rejects requests from clients that exhausted their allowance
// with 429 and a Retry-After hint.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(60.0/rl.max)+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[key]
	if !ok {
		b = &tokenBucket{tokens: rl.max, refilled: now}
		rl.clients[key] = b
	}

	b.tokens += now.Sub(b.refilled).Seconds() * rl.rate
	if b.tokens > rl.max {
		b.tokens = rl.max
	}
	b.refilled = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-clientIdleTTL)
			rl.mu.Lock()
			for key, b := range rl.clients {
				if b.refilled.Before(cutoff) {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// clientIP strips the port so a client keeps one bucket across
// connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
