package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

// ── CORS ──

func TestCORS_AllowedOrigin(t *testing.T) {
	r := newRouter(CORS([]string{"https://dashboard.example.com"}))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.com" {
		t.Errorf("expected origin reflected, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "X-Request-ID" {
		t.Errorf("expected X-Request-ID exposed, got %q", got)
	}
}

func TestCORS_UnknownOrigin(t *testing.T) {
	r := newRouter(CORS([]string{"https://dashboard.example.com"}))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin should get no CORS headers, got %q", got)
	}
}

func TestCORS_Wildcard(t *testing.T) {
	r := newRouter(CORS([]string{"*"}))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("wildcard should reflect any origin, got %q", got)
	}
}

func TestCORS_NoOriginHeader(t *testing.T) {
	// the mobile app's native requests carry no Origin
	r := newRouter(CORS([]string{"*"}))

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS headers without an Origin, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := newRouter(CORS([]string{"https://dashboard.example.com"}))

	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := newRouter(SecurityHeaders())

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	expected := map[string]string{
		"X-Frame-Options":         "DENY",
		"X-Content-Type-Options":  "nosniff",
		"Referrer-Policy":         "no-referrer",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"Cache-Control":           "no-store",
	}
	for header, want := range expected {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s: expected %q, got %q", header, want, got)
		}
	}
}

// ── RequestID ──

func TestRequestID_Generated(t *testing.T) {
	r := newRouter(RequestID())

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request ID")
	}
}

func TestRequestID_CallerSupplied(t *testing.T) {
	r := newRouter(RequestID())

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "dashboard-session-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "dashboard-session-42" {
		t.Errorf("expected caller ID echoed, got %q", got)
	}
}

func TestRequestID_RejectsUnusable(t *testing.T) {
	cases := []struct {
		name string
		rid  string
	}{
		{"control characters", "bad\nid"},
		{"embedded space", "bad id"},
		{"too long", strings.Repeat("a", 80)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(RequestID())

			req := httptest.NewRequest("GET", "/ping", nil)
			req.Header.Set("X-Request-ID", tc.rid)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Header().Get("X-Request-ID"); got == tc.rid || got == "" {
				t.Errorf("unusable ID should be replaced, got %q", got)
			}
		})
	}
}
