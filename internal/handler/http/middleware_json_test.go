package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONContentType(t *testing.T) {
	tests := map[string]bool{
		"application/json":                  true,
		"application/json; charset=utf-8":   true,
		"Application/JSON":                  true,
		"application/merge-patch+json":      true,
		"application/vnd.api+json":          true,
		"text/plain":                        false,
		"application/x-www-form-urlencoded": false,
		"text/json+xml":                     false,
		"":                                  false,
		";;;":                               false,
	}

	for contentType, want := range tests {
		assert.Equal(t, want, isJSONContentType(contentType), "content type %q", contentType)
	}
}

func TestCheckJSONBody(t *testing.T) {
	valid := []string{``, `   `, `{}`, `[]`, ` {"a":1} `, `[1,2,3]`, "\n{\"nested\":{\"x\":[true,null]}}\n"}
	for _, body := range valid {
		assert.NoError(t, checkJSONBody([]byte(body)), "body %q", body)
	}

	invalid := []string{`"str"`, `1`, `true`, `null`, `{`, `[1,`, `{"a":1}{"b":2}`, `{'a':1}`}
	for _, body := range invalid {
		assert.ErrorIs(t, checkJSONBody([]byte(body)), ErrMalformedJSON, "body %q", body)
	}
}

func TestWithJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantBody    string // body seen by the next handler
		wantNext    bool
	}{
		{name: "valid object", contentType: "application/json", body: `{"title":"x"}`, wantStatus: http.StatusOK, wantBody: `{"title":"x"}`, wantNext: true},
		{name: "valid array with +json", contentType: "application/vnd.api+json", body: `[1]`, wantStatus: http.StatusOK, wantBody: `[1]`, wantNext: true},
		{name: "empty body", contentType: "application/json", body: "", wantStatus: http.StatusOK, wantNext: true},
		{name: "malformed", contentType: "application/json", body: `{"title":`, wantStatus: http.StatusBadRequest},
		{name: "scalar", contentType: "application/json", body: `"just a string"`, wantStatus: http.StatusBadRequest},
		{name: "too large", contentType: "application/json", body: `{"a":"` + strings.Repeat("x", testBodyLimit) + `"}`, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "not json content type", contentType: "text/plain", body: `{oops`, wantStatus: http.StatusOK, wantBody: `{oops`, wantNext: true},
		{name: "no content type", body: `{oops`, wantStatus: http.StatusOK, wantBody: `{oops`, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				raw, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				seen = string(raw)
			})

			req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			h := newBareHandler()
			h.bodyLimit = testBodyLimit
			rr := httptest.NewRecorder()
			h.withJSONBody(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, tt.wantBody, seen)
			} else {
				assert.NotEmpty(t, decodeErrorResponse(t, rr).Error)
			}
		})
	}
}
