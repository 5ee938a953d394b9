package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
)

// withLogging writes one access-log line per request once the inner chain
// has returned, including requests answered by the catch-all or the
// recovery stage.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(started)).
			Msg("request served")
	})
}
