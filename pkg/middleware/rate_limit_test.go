package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "remote addr", remoteAddr: "203.0.113.7:52114", want: "203.0.113.7"},
		{name: "remote addr without port", remoteAddr: "203.0.113.7", want: "203.0.113.7"},
		{name: "x-forwarded-for single", remoteAddr: "10.0.0.1:80", xff: "198.51.100.4", want: "198.51.100.4"},
		{name: "x-forwarded-for chain uses first hop", remoteAddr: "10.0.0.1:80", xff: "198.51.100.4, 10.0.0.2, 10.0.0.1", want: "198.51.100.4"},
		{name: "x-forwarded-for trims spaces", remoteAddr: "10.0.0.1:80", xff: "  198.51.100.4  ", want: "198.51.100.4"},
		{name: "x-real-ip fallback", remoteAddr: "10.0.0.1:80", xri: "198.51.100.9", want: "198.51.100.9"},
		{name: "x-forwarded-for beats x-real-ip", remoteAddr: "10.0.0.1:80", xff: "198.51.100.4", xri: "198.51.100.9", want: "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/tours", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPublicIntakeKeyFunc(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/tours", nil)
	r.RemoteAddr = "203.0.113.7:52114"

	keys := PublicIntakeKeyFunc(r)
	if len(keys) != 1 || keys[0] != "ip:203.0.113.7" {
		t.Fatalf("keys = %v, want [ip:203.0.113.7]", keys)
	}
}

func TestMiddlewareSkipFunc(t *testing.T) {
	// pool stays nil; SkipFunc must short-circuit before any database access
	rl := NewRateLimiter(nil, RateLimitConfig{
		Requests: 1,
		Window:   time.Minute,
		KeyFunc:  PublicIntakeKeyFunc,
		SkipFunc: func(r *http.Request) bool { return r.Header.Get("X-Internal") == "1" },
	})

	called := false
	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodPost, "/tours", nil)
	r.Header.Set("X-Internal", "1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if !called {
		t.Fatal("skipped request never reached the handler")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMiddlewareFailsOpenOnDatabaseError(t *testing.T) {
	// pgxpool connects lazily, so a pool pointed at a dead address builds
	// fine and every query fails. The limiter must let those requests pass.
	pool, err := pgxpool.New(context.Background(), "postgres://rl:rl@127.0.0.1:1/rl?connect_timeout=1")
	if err != nil {
		t.Fatalf("building pool: %v", err)
	}
	defer pool.Close()

	rl := NewRateLimiter(pool, RateLimitConfig{
		Requests: 1,
		Window:   time.Minute,
		KeyFunc:  PublicIntakeKeyFunc,
	})

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodPost, "/tours", nil)
		r.RemoteAddr = "203.0.113.7:52114"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200 when the limiter cannot reach its store", i+1, rec.Code)
		}
	}
}
