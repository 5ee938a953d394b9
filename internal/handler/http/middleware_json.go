package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// withJSONBody checks JSON request bodies before routing. For a JSON
// content type it reads at most bodyLimit bytes, rejects bodies that are
// not a single JSON object or array and hands the buffered body on to the
// handler. An empty body is passed through.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSONContentType(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.bodyLimit))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, maxBytesErr.Limit))
				return
			}
			h.respondError(w, r, fmt.Errorf("%w: %w", ErrReadingBody, err))
			return
		}

		if err := checkJSONBody(body); err != nil {
			h.respondError(w, r, err)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		next.ServeHTTP(w, r)
	})
}

// isJSONContentType reports whether contentType is application/json or an
// application/*+json type.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

// checkJSONBody accepts an empty body or a single valid JSON object or array.
func checkJSONBody(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] != '{' && trimmed[0] != '[' {
		return fmt.Errorf("%w: top-level value must be an object or an array", ErrMalformedJSON)
	}
	if !json.Valid(trimmed) {
		return ErrMalformedJSON
	}

	return nil
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}
