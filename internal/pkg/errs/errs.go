package errs

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange         = errors.New("value is out of range")
	ErrNotFound           = errors.New("object not found")
	ErrInvalidInput       = errors.New("value is invalid")
	ErrInvariantViolation = errors.New("invariant violated")

	// ErrQuery marks errors caused by query input. They are retryable with
	// corrected input and never indicate corrupt stored data.
	ErrQuery = errors.New("query error")
)

type OutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewOutOfRangeError(paramName string, value, min, max any) *OutOfRangeError {
	return &OutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max}
}

func (e *OutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v, min value is %v, max value is %v",
		ErrOutOfRange, e.ParamName, e.Value, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

type NotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewNotFoundError(paramName string, id any) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id}
}

func NewNotFoundErrorWithCause(paramName string, id any, cause error) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrNotFound, e.ParamName, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type InvalidInputError struct {
	ParamName string
	Cause     error
}

func NewInvalidInputError(paramName string) *InvalidInputError {
	return &InvalidInputError{ParamName: paramName}
}

func NewInvalidInputErrorWithCause(paramName string, cause error) *InvalidInputError {
	return &InvalidInputError{ParamName: paramName, Cause: cause}
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvalidInput, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.ParamName)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

type InvariantViolationError struct {
	Rule  string
	Cause error
}

func NewInvariantViolationError(rule string) *InvariantViolationError {
	return &InvariantViolationError{Rule: rule}
}

func NewInvariantViolationErrorWithCause(rule string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Rule: rule, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInvariantViolation, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Rule)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }

// QueryError wraps an error caused by query input (a bad time, an unknown item id).
// It matches both ErrQuery and the class of the wrapped error.
type QueryError struct {
	Err error
}

func NewQueryError(err error) *QueryError {
	return &QueryError{Err: err}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", ErrQuery, e.Err)
}

func (e *QueryError) Unwrap() []error { return []error{ErrQuery, e.Err} }

// IsQuery reports whether err was caused by query input rather than by corrupt data.
func IsQuery(err error) bool {
	return errors.Is(err, ErrQuery)
}
