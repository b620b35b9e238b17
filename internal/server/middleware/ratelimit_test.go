package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterEnforcesClass(t *testing.T) {
	rl, err := NewRateLimiterFromYAML([]byte("default: 100/minute\nclasses:\n  tiny: 2/minute\n"))
	if err != nil {
		t.Fatalf("build limiter: %v", err)
	}

	handler := rl.Limit("tiny")(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", rec.Code)
	}

	// A different client IP has its own bucket.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("other client status = %d, want 200", rec.Code)
	}
}

func TestRateLimiterUnknownClassFallsBack(t *testing.T) {
	rl, err := NewRateLimiterFromYAML([]byte("default: 1/minute\n"))
	if err != nil {
		t.Fatalf("build limiter: %v", err)
	}

	handler := rl.Limit("nope")(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
}

func TestParseLimitRejectsGarbage(t *testing.T) {
	for _, spec := range []string{"", "fifty/minute", "10", "10/fortnight", "-1/minute"} {
		if _, err := parseLimit(spec); err == nil {
			t.Errorf("parseLimit(%q) succeeded, want error", spec)
		}
	}
}

func TestDefaultPolicyParses(t *testing.T) {
	rl, err := NewRateLimiter()
	if err != nil {
		t.Fatalf("default policy did not parse: %v", err)
	}
	if _, ok := rl.classes["register"]; !ok {
		t.Error("default policy missing register class")
	}
}
