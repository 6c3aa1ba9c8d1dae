package errors

import (
	"net/http"

	"elevenstore/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// Copies keep matching the original through Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"session not found or already closed",
		"",
	)

	ErrCallNotFound = NewBaseError(
		http.StatusNotFound,
		"CALL_NOT_FOUND",
		"no pending call with this id",
		"",
	)

	ErrInvalidIDToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ID_TOKEN",
		"invalid or expired ID token",
		"",
	)

	ErrStreamCongested = NewBaseError(
		http.StatusServiceUnavailable,
		"STREAM_CONGESTED",
		"session stream is not draining events",
		"",
	)

	ErrSessionClosed = NewBaseError(
		http.StatusGone,
		"SESSION_CLOSED",
		"session closed",
		"",
	)

	// Capability errors
	ErrUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"UNSUPPORTED",
		"capability not supported by this page",
		"",
	)

	ErrCallFailed = NewBaseError(
		http.StatusBadGateway,
		"CALL_FAILED",
		"page reported a failure",
		"",
	)

	// Messaging errors
	ErrTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"PUSH_TOKEN_INVALID",
		"push token rejected by messaging backend",
		"",
	)

	ErrInvalidPushMessage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PUSH_MESSAGE",
		"malformed push message",
		"",
	)
)
