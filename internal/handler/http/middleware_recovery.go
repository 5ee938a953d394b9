package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
)

// withRecovery turns a panic in any later stage into a 500 reply through the
// error responder. http.ErrAbortHandler is re-raised so net/http can abort
// the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			if h.metrics != nil {
				h.metrics.RecordPanic()
			}
			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic while serving request")

			h.respondError(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
