// AngelaMos | 2026
// security_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	SecurityHeaders(false)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS should be absent outside production, got %q", got)
	}

	rec = httptest.NewRecorder()
	SecurityHeaders(true)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("HSTS should be set in production")
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/v1/users", "/v1/users"},
		{"/v1/users/6a1f0b1e-9dd9-4c2e-8f70-1af2b0a1c123", "/v1/users/{id}"},
		{"/v1/facilities/42/deactivate", "/v1/facilities/{id}/deactivate"},
	}

	for _, tt := range tests {
		if got := normalizeEndpoint(tt.path); got != tt.want {
			t.Errorf("normalizeEndpoint(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
