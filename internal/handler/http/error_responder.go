package http

import (
	"net/http"

	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/utils"
	"github.com/MKhiriev/travel-journal-api/models"
)

// respondError is the single terminal error handler of the dispatcher. It
// writes exactly one JSON reply {"error": ..., "details": [...]} for err, or
// only logs when the reply has already been started.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message, details := describeError(err)

	if rw, ok := w.(*responseWriter); ok && rw.started() {
		log.Err(err).
			Int("status", status).
			Int("sent_status", rw.status).
			Msg("error after response was started, nothing written")
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	body := models.ErrorResponse{Error: message, Details: details}
	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}

// handlerFunc is an HTTP handler that reports failures by returning them
// instead of writing them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc], routing its error to respondError.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.respondError(w, r, err)
		}
	}
}

// notFound is the catch-all of the route table. It is a normal reply, not an
// error, and never passes through respondError.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: "Not found"}, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing not found response failed")
	}
}
