// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the author service.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Kind and a client-safe message.
  - Mapping: Every kind carries the HTTP status code it is rendered with.

Every error that leaves the service layer should be an [AppError] so the
transport can render the `{"error": ..., "code": ...}` envelope uniformly.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Kinds identify an error category independently of its message.
const (
	KindNotFound   = "NOT_FOUND"
	KindValidation = "VALIDATION_ERROR"
	KindNoChange   = "NO_CHANGE"
	KindUpstream   = "UPSTREAM_ERROR"
	KindInternal   = "INTERNAL_ERROR"
)

// AppError is the canonical error type of the service.
//
// It carries an HTTP status code, a machine-readable kind, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Kind is a machine-readable error identifier (e.g. "NOT_FOUND").
	Kind string
	// Message is a human-readable description safe to return to the client.
	Message string
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int
	// Cause is the underlying error, used for server-side logging only.
	Cause error
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an [*AppError] of the same kind and status.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind && e.HTTPStatus == other.HTTPStatus
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Author") // Returns "Author not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationError creates a 422 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

// NoChange creates a 422 [AppError] for an update that would not modify anything.
func NoChange(msg string) *AppError {
	return &AppError{
		Kind:       KindNoChange,
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// BadGateway creates a 502 [AppError] for an unreachable upstream service.
func BadGateway(msg string, cause error) *AppError {
	return &AppError{
		Kind:       KindUpstream,
		Message:    msg,
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
