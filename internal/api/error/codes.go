// Package error defines the application error codes surfaced to handlers.
package error

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	ValidationFailed    ErrorCode = "validation_failed"
	InvalidCredentials  ErrorCode = "invalid_credentials"
	UsernameConflict    ErrorCode = "username_conflict"
	RecipeNotFound      ErrorCode = "recipe_not_found"
	UserNotFound        ErrorCode = "user_not_found"
	LoginRequired       ErrorCode = "login_required"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	ValidationFailed:    http.StatusUnprocessableEntity,
	InvalidCredentials:  http.StatusUnauthorized,
	UsernameConflict:    http.StatusConflict,
	RecipeNotFound:      http.StatusNotFound,
	UserNotFound:        http.StatusNotFound,
	LoginRequired:       http.StatusUnauthorized,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}

// Error pairs a code with the message shown to the user.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func New(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code.String() + ": " + e.Err.Error()
	}
	return e.Code.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first *Error in err's chain, or
// UnknownError.
func CodeOf(err error) ErrorCode {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return UnknownError
}

// MessageOf returns the user-facing message of the first *Error in err's
// chain, or fallback.
func MessageOf(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
