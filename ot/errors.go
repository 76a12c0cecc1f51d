package ot

import (
	"errors"
	"fmt"
)

// IncompatibleError reports that an operation and a document, or two
// operations, do not belong together: the lengths implied by one side do
// not line up with the other. It is the only error kind this package
// produces. Detection aborts the call immediately with no partial
// result; callers must not retry with the same inputs.
type IncompatibleError struct {
	// Code identifies the misalignment category.
	Code IncompatibleCode

	// Message is a human-readable description.
	Message string
}

// IncompatibleCode categorizes length misalignments.
type IncompatibleCode string

const (
	// CodeTooLong indicates the operation spans more than its input provides.
	CodeTooLong IncompatibleCode = "OPERATION_TOO_LONG"

	// CodeTooShort indicates the operation ended before covering its input.
	CodeTooShort IncompatibleCode = "OPERATION_TOO_SHORT"

	// CodeBaseMismatch indicates two concurrent operations imply different
	// base document lengths and cannot be transformed against each other.
	CodeBaseMismatch IncompatibleCode = "BASE_LENGTH_MISMATCH"
)

// Error implements the error interface.
func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsIncompatible returns true if the error is an IncompatibleError.
// Uses errors.As to handle wrapped errors.
func IsIncompatible(err error) bool {
	var ie *IncompatibleError
	return errors.As(err, &ie)
}

func errTooLong(context string) *IncompatibleError {
	return &IncompatibleError{
		Code:    CodeTooLong,
		Message: context + ": operation is too long",
	}
}

func errTooShort(context string) *IncompatibleError {
	return &IncompatibleError{
		Code:    CodeTooShort,
		Message: context + ": operation is too short",
	}
}

func errBaseMismatch(aLen, bLen int) *IncompatibleError {
	return &IncompatibleError{
		Code:    CodeBaseMismatch,
		Message: fmt.Sprintf("cannot transform operations: base lengths differ (%d != %d)", aLen, bLen),
	}
}
