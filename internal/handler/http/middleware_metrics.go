package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records every request in the Prometheus instruments, labelled
// with the chi route pattern that served it.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.RequestStarted()
		defer h.metrics.RequestFinished()

		start := time.Now()
		mw := wrapResponseWriter(w)

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveRequest(route, r.Method, status, time.Since(start))
	})
}
