package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError represents a service-level error with context
type ServiceError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode,omitempty"`
	Details    interface{} `json:"details,omitempty"`
	Cause      error       `json:"-"` // Original error, not exposed in JSON
}

func (e ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e ServiceError) Unwrap() error {
	return e.Cause
}

// GetServiceError extracts a ServiceError from an error chain
func GetServiceError(err error) (ServiceError, bool) {
	var serviceErr ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return ServiceError{}, false
}

// Error code constants
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeAuth       = "AUTHENTICATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeExternal   = "EXTERNAL_SERVICE_ERROR"
	ErrCodeDatabase   = "DATABASE_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// NewValidationError reports malformed or missing input. Carries field-level
// details when available.
func NewValidationError(message string, details interface{}) error {
	return ServiceError{
		Code:       ErrCodeValidation,
		Message:    message,
		Details:    details,
		StatusCode: http.StatusBadRequest,
	}
}

// NewConflictError reports a uniqueness violation. Returned as HTTP 400, not
// 409; shipped mobile clients only handle 400 for duplicate submissions.
func NewConflictError(message string) error {
	return ServiceError{
		Code:       ErrCodeConflict,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewAuthError(message string) error {
	return ServiceError{
		Code:       ErrCodeAuth,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewNotFoundError(resource string) error {
	return ServiceError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

// NewExternalServiceError wraps an upstream provider failure. The cause is
// logged server-side; the message stays opaque to callers.
func NewExternalServiceError(message string, cause error) error {
	return ServiceError{
		Code:       ErrCodeExternal,
		Message:    message,
		Cause:      cause,
		StatusCode: http.StatusInternalServerError,
	}
}

func NewDatabaseError(operation string, cause error) error {
	return ServiceError{
		Code:       ErrCodeDatabase,
		Message:    fmt.Sprintf("Database operation failed: %s", operation),
		Cause:      cause,
		StatusCode: http.StatusInternalServerError,
	}
}

func NewInternalError(message string) error {
	return ServiceError{
		Code:       ErrCodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// Common error instances
var (
	ErrInvalidCredentials = NewAuthError("Invalid credentials")
	ErrUserNotFound       = NewNotFoundError("User")
	ErrIncidentNotFound   = NewNotFoundError("Incident")
	ErrZoneNotFound       = NewNotFoundError("Safety zone")
	ErrContactNotFound    = NewNotFoundError("Emergency contact")
)
