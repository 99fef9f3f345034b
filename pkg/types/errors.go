package types

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes library errors
type ErrorCode string

const (
	ErrCodeUnknown         ErrorCode = "unknown"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
)

// InvalidArgumentError represents a rejected input value. It is the only
// error kind the library itself produces; network and decode failures from
// pkg/fetch surface as whatever the transport or decoder returned.
type InvalidArgumentError struct {
	Code        ErrorCode // Categorized error code
	Op          string    // Which operation rejected the input (e.g., "factorial")
	Message     string    // Human-readable message
	OriginalErr error     // Wrapped original error, if any
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("[%s] %s (code=%s)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (code=%s)", e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *InvalidArgumentError) Unwrap() error {
	return e.OriginalErr
}

// WithOp sets the operation field and returns the error for chaining
func (e *InvalidArgumentError) WithOp(op string) *InvalidArgumentError {
	e.Op = op
	return e
}

// WithOriginalErr sets the original error field and returns the error for chaining
func (e *InvalidArgumentError) WithOriginalErr(err error) *InvalidArgumentError {
	e.OriginalErr = err
	return e
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(op, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Code:    ErrCodeInvalidArgument,
		Op:      op,
		Message: message,
	}
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var invalidErr *InvalidArgumentError
	return errors.As(err, &invalidErr)
}
