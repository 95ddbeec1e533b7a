package handlers

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
)

// =============================================================================
// HealthCheck Tests
// =============================================================================

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	w := httptest.NewRecorder()

	h.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp HealthResponse
	decodeBody(t, w, &resp)

	if resp.Status != statusHealthy {
		t.Errorf("Expected status %q, got %q", statusHealthy, resp.Status)
	}
	if !resp.Ready {
		t.Error("Expected ready to be true")
	}
	if resp.CatalogEntries != 13 {
		t.Errorf("Expected 13 catalog entries, got %d", resp.CatalogEntries)
	}
	if resp.GoVersion != runtime.Version() {
		t.Errorf("Expected Go version %q, got %q", runtime.Version(), resp.GoVersion)
	}
}

func TestHealthCheckNotReady(t *testing.T) {
	t.Parallel()

	h := &Handlers{}

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	w := httptest.NewRecorder()

	h.HealthCheck(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}

	var resp HealthResponse
	decodeBody(t, w, &resp)

	if resp.Status != statusDegraded {
		t.Errorf("Expected status %q, got %q", statusDegraded, resp.Status)
	}
}

func TestHealthCheckHead(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodHead, "/health", http.NoBody)
	w := httptest.NewRecorder()

	h.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body for HEAD, got %q", w.Body.String())
	}
}

// =============================================================================
// Liveness / Readiness Tests
// =============================================================================

func TestLivenessCheck(t *testing.T) {
	t.Parallel()

	h := &Handlers{}

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		req := httptest.NewRequest(method, "/livez", http.NoBody)
		w := httptest.NewRecorder()

		h.LivenessCheck(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", method, w.Code)
		}
		if method == http.MethodHead && w.Body.Len() != 0 {
			t.Error("Expected no body for HEAD")
		}
	}
}

func TestReadinessCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		handlers       *Handlers
		expectedStatus int
		expectedBody   string
	}{
		{"Catalog loaded", newTestHandlers(t), http.StatusOK, "ready"},
		{"No engine", &Handlers{}, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			w := httptest.NewRecorder()

			tt.handlers.ReadinessCheck(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp map[string]string
			decodeBody(t, w, &resp)
			if resp["status"] != tt.expectedBody {
				t.Errorf("Expected status %q, got %q", tt.expectedBody, resp["status"])
			}
		})
	}
}
