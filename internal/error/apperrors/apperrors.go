package apperrors

import (
	"errors"

	"esweb-http-service/internal/error/code"
)

// AppError is an error classified against the error-code table. Services
// return AppError values for every failure they can name; anything else is
// treated as an internal fault at the response boundary.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the message registered for the code.
func New(errCode int) *AppError {
	return &AppError{Code: errCode, Message: code.GetMessage(errCode)}
}

// WithMessage creates an AppError with a custom message.
func WithMessage(errCode int, message string) *AppError {
	return &AppError{Code: errCode, Message: message}
}

// Wrap creates an AppError that keeps the underlying cause.
func Wrap(errCode int, err error) *AppError {
	return &AppError{Code: errCode, Message: code.GetMessage(errCode), Err: err}
}

// Code extracts the error code from err, or falls back to ErrUnknown.
func Code(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return code.ErrUnknown
}

// Is reports whether err carries the given error code.
func Is(err error, errCode int) bool {
	return Code(err) == errCode
}
