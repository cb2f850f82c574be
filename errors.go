package knn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for absent inputs and out-of-range options.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeConversion is returned when a stored label cannot be converted
	// to the classifier's output type.
	ErrTypeConversion = errors.New("label conversion failed")
)

// ConversionError reports the label a LabelParser rejected.
//
// It matches ErrTypeConversion with errors.Is; the parser's own error is
// reachable through errors.Unwrap chains as well.
type ConversionError struct {
	Label string
	cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: label %q: %v", ErrTypeConversion, e.Label, e.cause)
}

func (e *ConversionError) Unwrap() []error { return []error{ErrTypeConversion, e.cause} }
