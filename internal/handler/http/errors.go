// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not hold exactly "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMalformedJSON is returned when a JSON request body cannot be parsed
	// or its top-level value is neither an object nor an array.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrPayloadTooLarge is returned when a JSON request body exceeds the
	// configured limit.
	ErrPayloadTooLarge = errors.New("request body too large")

	ErrInvalidPostID  = errors.New("invalid post id")
	ErrInvalidQuery   = errors.New("invalid query parameter")
	ErrMissingUserID  = errors.New("no authenticated user in request context")
	ErrPanicRecovered = errors.New("panic recovered")
	ErrReadingBody    = errors.New("error reading request body")
)

// Error is an error carrying an explicit HTTP status and client-facing
// message. It overrides the status derived from the wrapped error.
type Error struct {
	// Status is the HTTP status code of the reply. Zero lets the wrapped
	// error decide.
	Status int

	// Message is written to the client for 4xx replies. Empty falls back to
	// the wrapped error's kind.
	Message string

	// Err is the underlying cause. It is logged, never written.
	Err error
}

// NewError returns an *Error with the given status, message and cause.
func NewError(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return http.StatusText(e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
