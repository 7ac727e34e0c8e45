package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// stepClock is a manually advanced clock for window tests.
type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *stepClock) {
	return newProxiedTestLimiter(t, limit, window, false)
}

func newProxiedTestLimiter(t *testing.T, limit int, window time.Duration, trustProxy bool) (*RateLimiter, *stepClock) {
	t.Helper()
	clock := &stepClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, window, trustProxy)
	rl.now = clock.now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiterAllow(t *testing.T) {
	rl, _ := newTestLimiter(t, 3, time.Second)

	// First 3 requests should be allowed.
	for i := 0; i < 3; i++ {
		if ok, _ := rl.allow("test-ip"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if ok, _ := rl.allow("test-ip"); ok {
		t.Error("4th request should be rate-limited")
	}

	if ok, _ := rl.allow("other-ip"); !ok {
		t.Error("different IP should be allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl, clock := newTestLimiter(t, 2, time.Minute)

	rl.allow("test-ip")
	clock.advance(20 * time.Second)
	rl.allow("test-ip")

	ok, retryAfter := rl.allow("test-ip")
	if ok {
		t.Fatal("should be rate-limited")
	}
	// The first request leaves the window 40s from now.
	if retryAfter != 40*time.Second {
		t.Errorf("retryAfter: got %v, want 40s", retryAfter)
	}

	clock.advance(41 * time.Second)
	if ok, _ := rl.allow("test-ip"); !ok {
		t.Error("should be allowed after the oldest request expires")
	}
	if ok, _ := rl.allow("test-ip"); ok {
		t.Error("second request of the 20s-old pair is still in the window")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/foods/search?q=elma", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := send(); rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
		}
	}

	rr := send()
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After: got %q, want %q", got, "60")
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode 429 body: %v", err)
	}
	if body["error"] == "" {
		t.Error("429 body should carry an error message")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		trustProxy bool
		want       string
	}{
		{
			name:       "x-forwarded-for single",
			xff:        "10.0.0.1",
			remoteAddr: "192.168.1.1:1234",
			trustProxy: true,
			want:       "10.0.0.1",
		},
		{
			name:       "x-forwarded-for multiple",
			xff:        "10.0.0.1, 172.16.0.1, 192.168.1.1",
			remoteAddr: "192.168.1.1:1234",
			trustProxy: true,
			want:       "10.0.0.1",
		},
		{
			name:       "x-real-ip",
			xri:        "10.0.0.2",
			remoteAddr: "192.168.1.1:1234",
			trustProxy: true,
			want:       "10.0.0.2",
		},
		{
			name:       "x-forwarded-for ignored without proxy",
			xff:        "10.0.0.1",
			remoteAddr: "192.168.1.1:1234",
			want:       "192.168.1.1",
		},
		{
			name:       "x-real-ip ignored without proxy",
			xri:        "10.0.0.2",
			remoteAddr: "192.168.1.1:1234",
			want:       "192.168.1.1",
		},
		{
			name:       "remote addr only",
			remoteAddr: "192.168.1.1:1234",
			trustProxy: true,
			want:       "192.168.1.1",
		},
		{
			name:       "remote addr no port",
			remoteAddr: "192.168.1.1",
			want:       "192.168.1.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req, tt.trustProxy); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRateLimiterForwardedHeaderRotation verifies that a client cannot
// escape the limit by changing X-Forwarded-For unless a proxy is trusted.
func TestRateLimiterForwardedHeaderRotation(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantThird  int
	}{
		{"direct", false, http.StatusTooManyRequests},
		{"behind proxy", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, _ := newProxiedTestLimiter(t, 2, time.Minute, tt.trustProxy)
			handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			var last int
			for i, xff := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
				req := httptest.NewRequest(http.MethodGet, "/api/foods/search?q=elma", nil)
				req.RemoteAddr = "203.0.113.7:5000"
				req.Header.Set("X-Forwarded-For", xff)
				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, req)
				if i < 2 && rr.Code != http.StatusOK {
					t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
				}
				last = rr.Code
			}
			if last != tt.wantThird {
				t.Errorf("third request: got status %d, want %d", last, tt.wantThird)
			}
		})
	}
}

// TestRateLimiterCleanupRetainsRecentEntries verifies that cleanup drops
// idle clients and keeps those with timestamps inside the window.
func TestRateLimiterCleanupRetainsRecentEntries(t *testing.T) {
	rl, clock := newTestLimiter(t, 10, time.Minute)

	rl.allow("ip-old")
	rl.allow("ip-fresh")

	clock.advance(2 * time.Minute)
	rl.allow("ip-fresh")

	rl.cleanup()

	rl.mu.RLock()
	_, oldExists := rl.clients["ip-old"]
	_, freshExists := rl.clients["ip-fresh"]
	count := len(rl.clients)
	rl.mu.RUnlock()

	if oldExists {
		t.Error("ip-old should have been cleaned up (all timestamps expired)")
	}
	if !freshExists {
		t.Error("ip-fresh should still exist (has recent timestamp)")
	}
	if count != 1 {
		t.Errorf("expected 1 remaining client, got %d", count)
	}
}
