package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error carrying the HTTP status and the
// machine-readable kind exposed on the wire.
type AppError struct {
	Status  int
	Kind    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Kind + ": " + e.Message
	}
	return e.Kind
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrMissingDate = &AppError{Status: http.StatusBadRequest, Kind: "missing_date"}
	ErrInvalidDate = &AppError{Status: http.StatusBadRequest, Kind: "invalid_date"}
	ErrNotFound    = &AppError{Status: http.StatusNotFound, Kind: "not_found"}
)

// NewValidationError creates a 400 error with a machine-readable kind.
// Validation errors are never retried by clients.
func NewValidationError(kind string, message string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Kind:    kind,
		Message: message,
	}
}

// NewPersistenceError wraps an underlying read/write fault as a 500. The
// underlying message is kept for diagnostics and surfaced to the caller.
func NewPersistenceError(kind string, err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Status:  http.StatusInternalServerError,
		Kind:    "internal_error",
		Message: err.Error(),
		Err:     err,
	}
}
