package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/travel-journal-api/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.Post, error) {
			return models.Post{PostID: id}, nil
		},
	}
	h := newTestHandler(t, nil, posts)
	router := h.Init()

	for _, path := range []string{"/posts/1", "/posts/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP travel_journal_http_requests_total Total number of HTTP requests by route, method and status code
# TYPE travel_journal_http_requests_total counter
travel_journal_http_requests_total{method="GET",route="/posts/{id}",status_code="200"} 2
travel_journal_http_requests_total{method="GET",route="unmatched",status_code="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(h.metrics.Registry(), strings.NewReader(expected), "travel_journal_http_requests_total"))

	inFlight, err := testutil.GatherAndCount(h.metrics.Registry(), "travel_journal_http_requests_in_flight")
	require.NoError(t, err)
	assert.Equal(t, 1, inFlight)
}

func TestWithMetrics_DisabledWithoutMetrics(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	h := newBareHandler()
	wrapped := h.withMetrics(next)

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() { wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusOK, rr.Code)
}
