package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrValidation      = errors.New("validation failed")
)

// FieldErrors lists the human-readable violations found in one value, one
// entry per failed field rule. It matches [ErrValidation] with errors.Is.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// Details returns the violations as a slice suitable for an error response.
func (e FieldErrors) Details() []string {
	return []string(e)
}
