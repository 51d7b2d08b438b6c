package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an AppError so callers can match on kind instead of
// inspecting message text.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation_error"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal_error"
)

// AppError is an application error carrying the HTTP status it maps to and,
// for validation failures, the offending field path.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Code    int
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError creates a validation error for the given field path.
// Only the first failure of a payload is reported.
func NewValidationError(message, field string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
		Field:   field,
		Code:    http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: message,
		Code:    http.StatusNotFound,
	}
}

// NewUnauthorizedError creates an unauthorized error.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Kind:    KindUnauthorized,
		Message: message,
		Code:    http.StatusUnauthorized,
	}
}

// NewConflictError creates a conflict error.
func NewConflictError(message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
		Code:    http.StatusConflict,
	}
}

// AsAppError unwraps err into an *AppError if it carries one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}
