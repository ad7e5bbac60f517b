package apperrors

import "errors"

// Error kinds. Every failure a service returns wraps exactly one of these so
// the HTTP layer can map it to a status code with errors.Is.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrResourceNotFound = errors.New("resource not found")
	ErrInternal         = errors.New("internal error")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrPermissionDenied   = errors.New("permission denied")
)

// FieldError points a human-readable message at the offending input field.
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Error is the application error type carried from services to the HTTP
// layer: a kind sentinel, a stable message, and optional per-field entries.
type Error struct {
	Kind    error
	Message string
	Fields  []FieldError
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

// Unwrap exposes the kind sentinel to errors.Is
func (e *Error) Unwrap() error {
	return e.Kind
}

// WithField appends a field-tagged entry and returns the error for chaining.
func (e *Error) WithField(message, path string) *Error {
	e.Fields = append(e.Fields, FieldError{Message: message, Path: path})
	return e
}

// NewValidationError creates a validation-kind error (HTTP 400).
func NewValidationError(message string, fields ...FieldError) *Error {
	return &Error{Kind: ErrValidationFailed, Message: message, Fields: fields}
}

// NewConflictError creates a conflict-kind error (HTTP 400): overlapping
// sessions, capacity exceeded, duplicate enrollment.
func NewConflictError(message string, fields ...FieldError) *Error {
	return &Error{Kind: ErrConflict, Message: message, Fields: fields}
}

// NewNotFoundError creates a not-found-kind error (HTTP 404).
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrResourceNotFound, Message: message}
}

// NewInternalError wraps an unexpected lower-layer failure (HTTP 500).
// Clients only ever see the generic internal message; the wrapped error is
// kept for logging.
func NewInternalError(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: ErrInternal, Message: msg}
}
