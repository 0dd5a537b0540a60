// Package errors provides unified error handling for morelib packages.
// It implements structured error types with machine-readable codes and
// chainable context, so callers can branch on what failed without parsing
// message strings.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified library error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IsError checks if an error is a morelib Error.
func IsError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError converts an error to an Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err is an Error carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	if e, ok := AsError(err); ok {
		return e.Code == code
	}
	return false
}

// --- Common Error Constructors ---

// InvalidInput creates a new Error for invalid input.
func InvalidInput(field, reason string) *Error {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &Error{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new Error for validation failures.
func Validation(message string) *Error {
	return &Error{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new Error for a missing required field.
func MissingField(field string) *Error {
	return &Error{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// InvalidFormat creates a new Error for a value with an invalid format.
func InvalidFormat(field, expectedFormat string) *Error {
	return &Error{
		Code: ErrCodeInvalidFormat, Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		Details: map[string]any{"field": field, "expected_format": expectedFormat},
	}
}

// OutOfRange creates a new Error for a value outside its allowed range.
func OutOfRange(what string, value, minVal, maxVal float64) *Error {
	return &Error{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("%s %v is outside the range [%v, %v]", what, value, minVal, maxVal),
		Details: map[string]any{"value": value, "min": minVal, "max": maxVal},
	}
}

// LengthMismatch creates a new Error for vectors of unequal length.
func LengthMismatch(want, got int) *Error {
	return &Error{
		Code: ErrCodeLengthMismatch, Message: fmt.Sprintf("All vectors must have the same length (want %d, got %d)", want, got),
		Details: map[string]any{"want": want, "got": got},
	}
}

// NegativeValue creates a new Error for a value that must be non-negative.
func NegativeValue(what string, value float64) *Error {
	return &Error{
		Code: ErrCodeNegativeValue, Message: fmt.Sprintf("%s must be non-negative (got %v)", what, value),
		Details: map[string]any{"value": value},
	}
}

// NotFound creates a new Error for an element that was not found.
func NotFound(what string, value any) *Error {
	return &Error{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", what),
		Details: map[string]any{"what": what, "value": fmt.Sprintf("%v", value)},
	}
}

// EmptyCollection creates a new Error for an operation on an empty collection.
func EmptyCollection(operation string) *Error {
	return &Error{
		Code: ErrCodeEmptyCollection, Message: fmt.Sprintf("%s requires a non-empty collection", operation),
		Details: map[string]any{"operation": operation},
	}
}

// NoItemsLeft creates a new Error for an exhausted selection.
func NoItemsLeft() *Error {
	return &Error{
		Code:    ErrCodeNoItemsLeft,
		Message: "No items left to choose from (perhaps you need to reset the repeated cache?)",
	}
}

// Internal creates a new Error for an unexpected internal failure.
func Internal(cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}
