package apperror

import "net/http"

// AppError is an error carrying an HTTP status code and a user-safe message.
// The wrapped error, if any, is for diagnostics only and is never rendered
// to the client.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 404)
	Message string // User-facing error message
	Err     error  // Underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Constructors for the error taxonomy used across the API.

// Validation is a 400 for malformed input or a business-rule violation.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Unauthorized is a 401 for missing or invalid credentials.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

// Forbidden is a 403 for an authenticated caller lacking permission.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// NotFound is a 404 for an absent resource. Ownership mismatches also map
// here so non-owners cannot probe for existence.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Conflict is a 409 for duplicate email or double-booking.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}
