// Package apperr defines the error taxonomy shared by the battle engine and
// its data loaders.
package apperr

// Code is a machine-readable error category.
type Code string

const (
	// CodeInvalidOperation marks a rejected action: a locked ability, a
	// switch to a fainted or absent creature, an illegal roster change.
	// State is never mutated when it is returned.
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// CodeUnknownData marks a catalog record with an unrecognized type or
	// effect tag. Loaders skip such records and continue.
	CodeUnknownData Code = "UNKNOWN_DATA"
)

// Kind markers. errors.Is(err, InvalidOperation) reports whether err is any
// error in that category.
var (
	InvalidOperation = &Error{Code: CodeInvalidOperation}
	UnknownData      = &Error{Code: CodeUnknownData}
)

// Error is a categorized error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches identical errors, and treats a message-less target as a kind
// marker that matches every error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Message == "" && t.Cause == nil && t.Code == e.Code
}

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Invalid is shorthand for an InvalidOperation error.
func Invalid(message string) *Error {
	return New(CodeInvalidOperation, message)
}

// Unknown is shorthand for an UnknownData error.
func Unknown(message string) *Error {
	return New(CodeUnknownData, message)
}
