package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":       false,
		" /readyz ":      false,
		"/metrics":       false,
		"/v1/pods/p1":    true,
		"/v1/leagues/l1": true,
		"/":              true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}

func TestCORSOnPodRoutes(t *testing.T) {
	router := newTestRouterWithOptions(t, RouterOptions{CORSAllowedOrigins: []string{"https://league.example.com"}})

	tests := []struct {
		name       string
		method     string
		path       string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "preflight for declare result skips caller check",
			method:     http.MethodOptions,
			path:       "/v1/pods/pod-1/result",
			origin:     "https://league.example.com",
			wantStatus: http.StatusNoContent,
			wantOrigin: "https://league.example.com",
		},
		{
			name:       "preflight for admin roster",
			method:     http.MethodOptions,
			path:       "/v1/admin/pods/pod-1/participants/ava",
			origin:     "https://league.example.com",
			wantStatus: http.StatusNoContent,
			wantOrigin: "https://league.example.com",
		},
		{
			name:       "unknown origin gets no grant",
			method:     http.MethodOptions,
			path:       "/v1/pods/pod-1/result",
			origin:     "https://elsewhere.example.com",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "simple request still reaches the route",
			method:     http.MethodGet,
			path:       "/healthz",
			origin:     "https://league.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "https://league.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if tt.wantOrigin == "" {
				return
			}
			if got := rec.Header().Get("Vary"); got != "Origin" {
				t.Fatalf("expected Vary: Origin, got %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, CallerHeader) {
				t.Fatalf("caller header must be allowed, got %q", got)
			}
		})
	}
}

func TestRequireCaller(t *testing.T) {
	var seen string
	handler := RequireCaller(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = callerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pods/p1/join", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("caller forwarded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/pods/p1/join", nil)
		req.Header.Set(CallerHeader, " ava ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || seen != "ava" {
			t.Fatalf("unexpected result: status=%d caller=%q", rec.Code, seen)
		}
	})
}

type observedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	requests []observedRequest
}

func (o *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.requests = append(o.requests, observedRequest{method: method, route: route, status: status})
}

func TestObserveRequestsUsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/pods/{podID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	observer := &fakeObserver{}
	handler := ObserveRequests(observer, mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/pods/pod-1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if len(observer.requests) != 2 {
		t.Fatalf("expected 2 observations, got %+v", observer.requests)
	}
	if got := observer.requests[0]; got.route != "GET /v1/pods/{podID}" || got.status != http.StatusTeapot {
		t.Fatalf("unexpected first observation: %+v", got)
	}
	if got := observer.requests[1]; got.route != "unmatched" || got.status != http.StatusNotFound {
		t.Fatalf("unexpected second observation: %+v", got)
	}
}
