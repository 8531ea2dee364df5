package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUploadFailed  = errors.New("upload failed")
	ErrPublishFailed = errors.New("publish failed")
	ErrInFlight      = errors.New("another submission is already in flight")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// APIError is a non-OK response from the backend. Message holds the
// server-provided, already-localized text and is what gets shown to the
// user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError builds an APIError from the response status and the body's
// message field, falling back to a generic string when the server sent
// nothing usable.
func NewAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = "Something went wrong. Please try again."
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// UserMessage extracts the text worth showing to the user from any error
// in the chain.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
