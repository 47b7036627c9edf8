// Package errors defines application-specific error types shared by the
// usecase and delivery layers. Client errors carry a structured message
// the caller may see; server faults stay opaque at the boundary.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message while
// keeping it matchable via errors.Is/As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types.
//
// The first four are client errors: the caller can correct them and the
// message is allowed to cross the boundary. The last two are server
// faults whose message is deliberately opaque; the underlying cause is
// only ever logged.
var (
	// ErrUserNotFound is returned when no user exists for a given id.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// ErrPhoneAlreadyRegistered is returned when signup collides with an
	// existing phone number.
	ErrPhoneAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_REGISTERED",
		"a user with this phone already exists",
		"",
	)

	// ErrInvalidCredentials covers both the unknown-phone and the
	// wrong-password sign-in failures. One shared value, so callers
	// cannot probe which phone numbers are registered.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect phone or password",
		"",
	)

	// ErrPasswordMismatch is returned when the old password supplied to a
	// password change does not verify.
	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"old password does not match",
		"",
	)

	// ErrValidationFailed is returned by the delivery layer when request
	// input fails validation.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrServiceUnavailable is the single opaque failure surfaced when an
	// internal collaborator (store, hasher) fails.
	ErrServiceUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"SERVICE_UNAVAILABLE",
		"something went wrong",
		"",
	)

	// ErrTokenSigningFailed is surfaced when minting a session token
	// fails. A server-side fault, never a client error.
	ErrTokenSigningFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_SIGNING_FAILED",
		"something went wrong",
		"",
	)
)

// DatabaseExecuteError represents a database execution error. It
// carries the driver error for logging while presenting an opaque
// message to callers.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "something went wrong"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
