// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates models through their `validate` struct tags.
// Field names in the reported violations are taken from the `json` tags so
// they match what the client sent.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}

	return &StructValidator{validate: v}
}

// maxBytes limits the encoded length of a string field, unlike max which
// counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate checks obj, which must be a struct or a pointer to one. When
// fields are given only those struct fields (Go names) are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if _, ok := value.Type().FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	details := make(FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, describe(fe))
	}

	return details
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes long", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q rule", field, fe.Tag())
	}
}
