package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange indicates that a report date range was rejected.
var ErrInvalidRange = errors.New("invalid date range")

// ErrCustomerNotFound indicates that the customer directory has no customer with the requested ID.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrUpstreamUnavailable indicates that a remote dependency could not be reached or answered unexpectedly.
var ErrUpstreamUnavailable = errors.New("service unavailable")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
