package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is matched by every OutOfRangeError.
	ErrOutOfRange = errors.New("argument out of range")
)

// ArgumentError reports an argument rejected by a constructor or setter.
type ArgumentError struct {
	Param   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (parameter %q)", e.Message, e.Param)
}

// Is implements errors.Is for ArgumentError
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// OutOfRangeError reports an argument outside its allowed range.
type OutOfRangeError struct {
	Param   string
	Value   any
	Message string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s (parameter %q, actual value %v)", e.Message, e.Param, e.Value)
}

// Is implements errors.Is for OutOfRangeError
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewArgumentError creates a new argument error
func NewArgumentError(param, message string) *ArgumentError {
	return &ArgumentError{Param: param, Message: message}
}

// NewOutOfRangeError creates a new out-of-range error
func NewOutOfRangeError(param string, value any, message string) *OutOfRangeError {
	return &OutOfRangeError{Param: param, Value: value, Message: message}
}
