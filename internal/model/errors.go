package model

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel behind every ValidationError.
// Callers use errors.Is(err, ErrInvalidArgument) to detect rejected input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrorKind classifies a ValidationError.
type ErrorKind int

const (
	// ErrorKindInvalidArgument means a field was given a value it cannot hold.
	ErrorKindInvalidArgument ErrorKind = iota
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// ValidationError is returned when a record field is assigned an invalid value.
// The name validator is the only producer.
type ValidationError struct {
	// Field is the name of the rejected field.
	Field string

	// Kind classifies the failure.
	Kind ErrorKind

	// Value is the rejected input.
	Value string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s must not be empty or whitespace (got %q)", e.Kind, e.Field, e.Value)
}

// Unwrap returns ErrInvalidArgument so errors.Is works on wrapped values.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
