package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsRequest(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	return req
}

func TestCORSAllowAll(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest("https://anywhere.example"))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestCORSReflectsListedOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example", "https://staging.example"})
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest("https://app.example"))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("expected listed origin to be reflected, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("expected Vary: Origin, got %q", got)
	}
}

func TestCORSOmitsUnlistedOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example"})
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest("https://evil.example"))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin header for unlisted origin, got %q", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on preflight, got %d", rec.Code)
	}
}
