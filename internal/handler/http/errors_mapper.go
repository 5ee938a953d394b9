package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/travel-journal-api/internal/service"
	"github.com/MKhiriev/travel-journal-api/internal/store"
	"github.com/MKhiriev/travel-journal-api/internal/utils"
	"github.com/MKhiriev/travel-journal-api/internal/validators"
)

// errorStatus binds an error kind to the status of its reply. The table is
// scanned top to bottom and the first kind found in the chain wins, so more
// specific kinds come first.
type errorStatus struct {
	target error
	status int
}

var errorStatusTable = []errorStatus{
	{ErrMalformedJSON, http.StatusBadRequest},
	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
	{ErrReadingBody, http.StatusBadRequest},
	{ErrInvalidPostID, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrMalformedAuthorizationHeader, http.StatusUnauthorized},
	{ErrMissingUserID, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrValidation, http.StatusBadRequest},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNotPostOwner, http.StatusForbidden},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrPostNotFound, http.StatusNotFound},
}

// classifyError returns the HTTP status for err together with the error
// kind that decided it: an explicit *Error with a status if one is in the
// chain, else the first matching kind of errorStatusTable, else 500 with a
// nil kind.
func classifyError(err error) (status int, kind error) {
	var httpErr *Error
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		return httpErr.Status, httpErr
	}

	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status, entry.target
		}
	}

	return http.StatusInternalServerError, nil
}

// describeError returns everything a client may learn about err: the status,
// a message and the validation details if any. 5xx replies carry only the
// generic status text; wrapped causes are never exposed.
func describeError(err error) (status int, message string, details []string) {
	status, kind := classifyError(err)
	if status >= http.StatusInternalServerError {
		return status, http.StatusText(status), nil
	}

	message = http.StatusText(status)
	var httpErr *Error
	switch {
	case errors.As(kind, &httpErr) && httpErr.Message != "":
		message = httpErr.Message
	case errors.As(kind, &httpErr) && httpErr.Err != nil:
		if _, inner := classifyError(httpErr.Err); inner != nil {
			message = inner.Error()
		}
	case kind != nil:
		message = kind.Error()
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		details = fieldErrors.Details()
	}

	return status, message, details
}
