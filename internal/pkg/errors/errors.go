package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// WithMessage returns a copy of the error carrying a different message.
// Used to surface meeting-server messages to the caller verbatim.
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// Common errors
var (
	// 400 Bad Request
	ErrBadRequest      = New(http.StatusBadRequest, "invalid request format")
	ErrValidation      = New(http.StatusBadRequest, "validation failed")
	ErrInvalidArgument = New(http.StatusBadRequest, "missing required field")

	// 401 Unauthorized
	ErrUnauthorized    = New(http.StatusUnauthorized, "unauthorized request")
	ErrInvalidToken    = New(http.StatusUnauthorized, "invalid token")
	ErrTokenExpired    = New(http.StatusUnauthorized, "token has expired")
	ErrInvalidPassword = New(http.StatusUnauthorized, "wrong username or password")

	// 404 Not Found
	ErrNotFound          = New(http.StatusNotFound, "resource not found")
	ErrRoomNotFound      = New(http.StatusNotFound, "room not found")
	ErrRecordingNotFound = New(http.StatusNotFound, "recording not found")

	// 422 Unprocessable Entity
	ErrDuplicateCredential = New(http.StatusUnprocessableEntity, "attendee & moderator password can't be same")

	// 429 Too Many Requests
	ErrTooManyRequests = New(http.StatusTooManyRequests, "too many requests, please try again later")

	// 500 Internal Server Error
	ErrInternal    = New(http.StatusInternalServerError, "internal server error")
	ErrPersistence = New(http.StatusInternalServerError, "failed to persist room data")

	// 502 Bad Gateway
	ErrGatewayUnavailable = New(http.StatusBadGateway, "meeting server is unreachable")
	ErrGatewayRejected    = New(http.StatusBadGateway, "meeting server rejected the request")
)

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetHTTPStatus returns the HTTP status code for an error
func GetHTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// GetMessage returns the error message
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
