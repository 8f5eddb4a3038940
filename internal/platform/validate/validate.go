// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate checks request inputs against their declared struct-tag
// rules and collects field-level errors into a single [apperr.AppError].
//
// # Architecture
//
// Rules are declared on the input types with `validate:"..."` tags and
// evaluated by go-playground/validator. This package is used in the service
// layer only, never in handlers or storage.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/authors/internal/platform/apperr"
)

// MsgValidationFailed is the top-level message of every validation error.
const MsgValidationFailed = "Validation failed"

var (
	// engine is safe for concurrent use and caches struct metadata.
	engine = newEngine()

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// newEngine reports field names by their JSON tag instead of the Go name and
// registers the "notblank" rule.
func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validator collects field-level validation errors.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Struct evaluates the `validate` tags of input and records every failure.
func (v *Validator) Struct(input any) *Validator {
	err := engine.Struct(input)
	if err == nil {
		return v
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		v.add("", err.Error())
		return v
	}

	for _, fieldError := range fieldErrors {
		v.add(fieldError.Field(), message(fieldError))
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(MsgValidationFailed, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// message renders a client-facing sentence for a failed tag.
func message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldError.Param())
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(fieldError.Param()), ", ")
	default:
		return fmt.Sprintf("Failed the %q rule", fieldError.Tag())
	}
}
