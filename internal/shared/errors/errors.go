// Package errors provides application-level error types carrying an error
// class and HTTP status code, plus helpers for classifying database errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the class of an application error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
)

// AppError is an application error with an HTTP status code and optional detail.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Code: code, Details: detail}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error.
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error.
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error.
func NewForbiddenError(message string, details ...string) *AppError {
	return newError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error.
func NewBadRequestError(message string, details ...string) *AppError {
	return newError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsConflictError reports whether err is a conflict error.
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsNotFoundError reports whether err is a not found error.
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsDuplicateError reports whether err is a database duplicate key error.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL / SQLite unique violations
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "UNIQUE constraint") {
		return true
	}
	return false
}
