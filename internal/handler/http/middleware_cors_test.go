package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCORS_SimpleRequests(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(method, "/posts", nil)
			req.Header.Set("Origin", "https://journal.example")
			rr := httptest.NewRecorder()
			newBareHandler().withCORS(next).ServeHTTP(rr, req)

			assert.True(t, nextCalled, "non-preflight requests reach the next handler")
			assert.Equal(t, http.StatusTeapot, rr.Code)
			assert.Equal(t, "*", rr.Header().Get(headerAllowOrigin))
			assert.Empty(t, rr.Header().Get(headerAllowMethods))
		})
	}
}

func TestWithCORS_WithoutOriginHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	newBareHandler().withCORS(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "*", rr.Header().Get(headerAllowOrigin))
}

func TestWithCORS_Preflight(t *testing.T) {
	tests := []struct {
		name             string
		requestHeaders   string
		wantAllowHeaders string
	}{
		{name: "with requested headers", requestHeaders: "Content-Type, Authorization", wantAllowHeaders: "Content-Type, Authorization"},
		{name: "without requested headers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("preflight must not reach the router")
			})

			req := httptest.NewRequest(http.MethodOptions, "/posts/1", nil)
			req.Header.Set(headerRequestMethod, http.MethodPut)
			if tt.requestHeaders != "" {
				req.Header.Set(headerRequestHeaders, tt.requestHeaders)
			}

			rr := httptest.NewRecorder()
			newBareHandler().withCORS(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, "*", rr.Header().Get(headerAllowOrigin))
			assert.Equal(t, corsAllowedMethods, rr.Header().Get(headerAllowMethods))
			assert.Equal(t, tt.wantAllowHeaders, rr.Header().Get(headerAllowHeaders))
			assert.Contains(t, rr.Header().Values("Vary"), headerRequestHeaders)
			assert.Empty(t, rr.Body.String())
		})
	}
}
