// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Ping(_ context.Context) error {
	return s.err
}

func newRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func get(router chi.Router, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLiveness(t *testing.T) {
	h := NewHandler()
	router := newRouter(h)

	for _, path := range []string{"/healthz", "/livez"} {
		if rec := get(router, path); rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestLiveness_DuringShutdown(t *testing.T) {
	h := NewHandler()
	h.SetShutdown(true)
	router := newRouter(h)

	rec := get(router, "/livez")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestReadiness_AllDependenciesHealthy(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: stubChecker{}},
		Dependency{Name: "redis", Checker: stubChecker{}},
	)
	router := newRouter(h)

	rec := get(router, "/readyz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || len(resp.Checks) != 2 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestReadiness_DegradedWhenDependencyFails(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: stubChecker{}},
		Dependency{Name: "redis", Checker: stubChecker{err: errors.New("refused")}},
	)
	router := newRouter(h)

	rec := get(router, "/readyz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("status = %q", resp.Status)
	}

	for _, check := range resp.Checks {
		switch check.Name {
		case "database":
			if !check.Healthy {
				t.Error("database should be healthy")
			}
		case "redis":
			if check.Healthy {
				t.Error("redis should be unhealthy")
			}
		}
	}
}

func TestReadiness_NotReady(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: stubChecker{}})
	h.SetReady(false)
	router := newRouter(h)

	rec := get(router, "/readyz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
