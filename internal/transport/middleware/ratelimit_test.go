package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serveLimited(rl *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
	wrapped := rl.Limit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if rec := serveLimited(rl, "198.51.100.7:4242"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		serveLimited(rl, "198.51.100.7:4242")
	}

	rec := serveLimited(rl, "198.51.100.7:4242")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}
}

func TestRateLimiter_ClientsIndependent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	serveLimited(rl, "198.51.100.7:4242")
	if rec := serveLimited(rl, "198.51.100.7:4242"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("same client: expected status 429, got %d", rec.Code)
	}

	// Exhausting one client's bucket must not touch another's. Ports
	// differ but the host is the key, so a new port shares the bucket.
	if rec := serveLimited(rl, "203.0.113.9:9000"); rec.Code != http.StatusOK {
		t.Fatalf("other client: expected status 200, got %d", rec.Code)
	}
	if rec := serveLimited(rl, "198.51.100.7:5353"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("same host new port: expected status 429, got %d", rec.Code)
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(60, time.Minute)
	defer rl.Stop()

	for i := 0; i < 60; i++ {
		serveLimited(rl, "198.51.100.7:4242")
	}
	if rec := serveLimited(rl, "198.51.100.7:4242"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}

	// Backdate the last refill instead of sleeping.
	rl.mu.Lock()
	rl.clients["198.51.100.7"].refilled = time.Now().Add(-2 * time.Second)
	rl.mu.Unlock()

	if rec := serveLimited(rl, "198.51.100.7:4242"); rec.Code != http.StatusOK {
		t.Fatalf("after refill: expected status 200, got %d", rec.Code)
	}
}
