package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/travel-journal-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ---- Route registration ----

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register. Protected
// routes answer 401 without a token, which still proves they exist.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/auth/signup"},
	{http.MethodPost, "/auth/signin"},
	{http.MethodGet, "/auth/me"},
	{http.MethodGet, "/posts"},
	{http.MethodGet, "/posts/1"},
	{http.MethodPost, "/posts"},
	{http.MethodPut, "/posts/1"},
	{http.MethodDelete, "/posts/1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	posts := &mockPostService{
		listPostsFn: func(context.Context, models.PostFilter) ([]models.Post, error) {
			return []models.Post{}, nil
		},
		getPostFn: func(_ context.Context, id int64) (models.Post, error) {
			return models.Post{PostID: id}, nil
		},
	}
	auth := &mockAuthService{
		signUpFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, assert.AnError
		},
		signInFn: func(context.Context, models.Credentials) (models.User, error) {
			return models.User{}, assert.AnError
		},
	}
	router := newTestHandler(t, auth, posts).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := jsonRequest(t, tc.method, tc.path, "{}")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// 404 is the catch-all: any other status means a route matched.
			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
		})
	}
}

// ---- Catch-all ----

func TestInit_CatchAll(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/unknown"},
		{http.MethodPost, "/api/posts"},
		{http.MethodGet, "/authors"},
		{http.MethodGet, "/postsx/1"},
		{http.MethodGet, "/auth"},
		{http.MethodGet, "/auth/signup"},
		{http.MethodPatch, "/posts/1"},
		{http.MethodGet, "/posts/1/comments"},
		{http.MethodOptions, "/posts"},
	}

	h := newTestHandler(t, nil, nil)
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(t, h, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get(headerAllowOrigin))
		})
	}
}

func TestInit_HeadOnPostsIsServedByGet(t *testing.T) {
	called := false
	posts := &mockPostService{
		listPostsFn: func(context.Context, models.PostFilter) ([]models.Post, error) {
			called = true
			return []models.Post{}, nil
		},
	}

	rec := serve(t, newTestHandler(t, nil, posts), httptest.NewRequest(http.MethodHead, "/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

// ---- Chain ordering ----

// TestInit_MalformedJSONNeverReachesHandler verifies that a body the JSON
// stage rejects is answered by the error responder before routing.
func TestInit_MalformedJSONNeverReachesHandler(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(context.Context, models.User) (models.User, error) {
			t.Fatal("handler must not be called")
			return models.User{}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	for _, body := range []string{`{"name":`, `"string"`, `42`, `null`, `not json`} {
		rec := serve(t, h, jsonRequest(t, http.MethodPost, "/auth/signup", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, ErrMalformedJSON.Error(), decodeErrorResponse(t, rec).Error)
		assert.Equal(t, "*", rec.Header().Get(headerAllowOrigin))
	}
}

// TestInit_MalformedJSONOnUnknownRoute verifies that body parsing runs
// before route matching.
func TestInit_MalformedJSONOnUnknownRoute(t *testing.T) {
	rec := serve(t, newTestHandler(t, nil, nil), jsonRequest(t, http.MethodPost, "/nowhere", `{oops`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInit_PayloadTooLarge(t *testing.T) {
	body := `{"title":"` + strings.Repeat("a", testBodyLimit) + `"}`

	rec := serve(t, newTestHandler(t, nil, nil), authorized(jsonRequest(t, http.MethodPost, "/posts", body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, ErrPayloadTooLarge.Error(), decodeErrorResponse(t, rec).Error)
}

func TestInit_PreflightIsAnsweredBeforeRouting(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/anything/at/all", nil)
	req.Header.Set(headerRequestMethod, http.MethodPut)

	rec := serve(t, newTestHandler(t, nil, nil), req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, corsAllowedMethods, rec.Header().Get(headerAllowMethods))
}

func TestInit_PanicBecomes500(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(context.Context, int64) (models.Post, error) {
			panic("boom")
		},
	}

	rec := serve(t, newTestHandler(t, nil, posts), httptest.NewRequest(http.MethodGet, "/posts/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get(headerAllowOrigin))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_TraceIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(traceIDHeader, "trace-123")

	rec := serve(t, newTestHandler(t, nil, nil), req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

// ---- Properties ----

var dispatcherMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// unmountedPath draws paths whose first segment is neither auth nor posts.
func unmountedPath() *rapid.Generator[string] {
	return rapid.StringMatching(`/[a-z0-9_-]{0,10}(/[a-z0-9_-]{1,8}){0,3}/?`).Filter(func(p string) bool {
		first := strings.SplitN(strings.TrimPrefix(p, "/"), "/", 2)[0]
		return first != "auth" && first != "posts"
	})
}

// Preflights are not drawn: an OPTIONS request carrying
// Access-Control-Request-Method is answered 204 by the CORS stage on any
// path, see TestInit_PreflightIsAnsweredBeforeRouting.
func TestProperty_UnmountedPathsAre404(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rapid.Check(t, func(rt *rapid.T) {
		method := rapid.SampledFrom(dispatcherMethods).Draw(rt, "method")
		path := unmountedPath().Draw(rt, "path")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

		if rec.Code != http.StatusNotFound {
			rt.Fatalf("%s %s: status %d, want 404", method, path, rec.Code)
		}
		if method != http.MethodHead {
			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Error != "Not found" {
				rt.Fatalf("%s %s: body %q", method, path, rec.Body.String())
			}
		}
	})
}

func TestProperty_AllowOriginOnEveryResponse(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rapid.Check(t, func(rt *rapid.T) {
		method := rapid.SampledFrom(dispatcherMethods).Draw(rt, "method")
		path := rapid.OneOf(
			unmountedPath(),
			rapid.SampledFrom([]string{"/auth/me", "/posts", "/posts/abc", "/posts/1", "/auth/signin"}),
		).Draw(rt, "path")

		req := httptest.NewRequest(method, path, nil)
		if rapid.Bool().Draw(rt, "preflight") {
			req.Header.Set(headerRequestMethod, http.MethodGet)
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if got := rec.Header().Get(headerAllowOrigin); got != "*" {
			rt.Fatalf("%s %s: Access-Control-Allow-Origin %q", method, path, got)
		}
	})
}

func TestProperty_MalformedJSONIsRejected(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(context.Context, models.Credentials) (models.User, error) {
			t.Error("handler must not be called")
			return models.User{}, nil
		},
	}
	router := newTestHandler(t, auth, nil).Init()

	rapid.Check(t, func(rt *rapid.T) {
		body := rapid.StringMatching(`[ a-z0-9"{}\[\]:,.]{1,24}`).Filter(func(s string) bool {
			trimmed := strings.TrimSpace(s)
			if trimmed == "" {
				return false
			}
			return (trimmed[0] != '{' && trimmed[0] != '[') || !json.Valid([]byte(trimmed))
		}).Draw(rt, "body")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/signin", body))

		if rec.Code != http.StatusBadRequest {
			rt.Fatalf("body %q: status %d, want 400", body, rec.Code)
		}
	})
}
