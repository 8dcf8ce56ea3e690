package points

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes service errors.
type ErrorCode string

const (
	// CodeDuplicatePoint indicates an insert collided with a stored coordinate.
	CodeDuplicatePoint ErrorCode = "DUPLICATE_POINT"

	// CodeNotFound indicates the addressed coordinate is not stored.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidInput indicates an empty or structurally invalid payload.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its code.
var (
	ErrDuplicatePoint = errors.New("duplicate point")
	ErrNotFound       = errors.New("point not found")
	ErrInvalidInput   = errors.New("invalid input")
)

// Error is returned by Service operations for caller-input failures.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operation: "add", "delete" or "import".
	Op string

	// X, Y are the offending coordinates when HasPoint is set.
	X, Y     int
	HasPoint bool

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.HasPoint {
		return fmt.Sprintf("%s: %s: %s (%d, %d)", e.Code, e.Op, e.Message, e.X, e.Y)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's code.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case CodeDuplicatePoint:
		return target == ErrDuplicatePoint
	case CodeNotFound:
		return target == ErrNotFound
	case CodeInvalidInput:
		return target == ErrInvalidInput
	}
	return false
}

// CodeOf returns the code of a wrapped *Error, or "" if err is not one.
func CodeOf(err error) ErrorCode {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func newDuplicateError(op string, x, y int, cause error) *Error {
	return &Error{
		Code:     CodeDuplicatePoint,
		Op:       op,
		X:        x,
		Y:        y,
		HasPoint: true,
		Message:  "point already exists",
		Err:      cause,
	}
}

func newNotFoundError(op string, x, y int) *Error {
	return &Error{
		Code:     CodeNotFound,
		Op:       op,
		X:        x,
		Y:        y,
		HasPoint: true,
		Message:  "point not found",
	}
}

// NewInvalidInputError creates an INVALID_INPUT error for op.
// Exported so payload decoders outside this package report the same kind.
func NewInvalidInputError(op, message string, cause error) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Op:      op,
		Message: message,
		Err:     cause,
	}
}
