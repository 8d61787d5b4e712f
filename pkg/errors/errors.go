package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// Fallback for errors created outside this package
	ErrUnknown ErrorCode = "UNKNOWN"

	// Configuration errors
	ErrInvalidMarker ErrorCode = "INVALID_MARKER"
	ErrInvalidDepth  ErrorCode = "INVALID_DEPTH"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// I/O errors (prompt/read surface, never the conversion engine)
	ErrRead  ErrorCode = "READ"
	ErrWrite ErrorCode = "WRITE"
)

// DahliaError represents a structured error with code and details
type DahliaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DahliaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DahliaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DahliaError) Is(target error) bool {
	var targetErr *DahliaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DahliaError with the given code and message
func New(code ErrorCode, message string) *DahliaError {
	return &DahliaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DahliaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DahliaError {
	return &DahliaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DahliaError
func Wrap(err error, code ErrorCode, message string) *DahliaError {
	if err == nil {
		return nil
	}
	return &DahliaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DahliaError {
	if err == nil {
		return nil
	}
	return &DahliaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DahliaError) WithDetail(key string, value interface{}) *DahliaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dahliaErr *DahliaError
	if errors.As(err, &dahliaErr) {
		return dahliaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DahliaError
func GetErrorCode(err error) ErrorCode {
	var dahliaErr *DahliaError
	if errors.As(err, &dahliaErr) {
		return dahliaErr.Code
	}
	return ErrUnknown
}
