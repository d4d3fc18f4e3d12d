package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(func() error { return errors.New("down") }).Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// Liveness does not depend on the ephemeris.
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestReadyz(t *testing.T) {
	cases := []struct {
		name       string
		ping       func() error
		wantStatus int
		wantBody   string
	}{
		{"ready", func() error { return nil }, http.StatusOK, `"ready"`},
		{"degraded", func() error { return errors.New("ephemeris unavailable") }, http.StatusServiceUnavailable, `"degraded"`},
		{"nil probe", nil, http.StatusOK, `"ready"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", w.Code, tc.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("body %s, want %s", w.Body.String(), tc.wantBody)
			}
		})
	}
}
