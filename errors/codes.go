package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input / validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Numeric domain errors
const (
	// ErrCodeOutOfRange indicates a value is outside its allowed range.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeLengthMismatch indicates vectors of unequal length were combined.
	ErrCodeLengthMismatch ErrorCode = "LENGTH_MISMATCH"
	// ErrCodeNegativeValue indicates a negative value where only non-negative
	// values are allowed.
	ErrCodeNegativeValue ErrorCode = "NEGATIVE_VALUE"
)

// Collection errors
const (
	// ErrCodeNotFound indicates the requested element was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeEmptyCollection indicates an operation requires a non-empty collection.
	ErrCodeEmptyCollection ErrorCode = "EMPTY_COLLECTION"
	// ErrCodeNoItemsLeft indicates a selection has run out of choosable items.
	ErrCodeNoItemsLeft ErrorCode = "NO_ITEMS_LEFT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
