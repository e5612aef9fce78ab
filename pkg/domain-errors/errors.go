// Package domainerrors provides coded errors for domain and service layers.
//
// Stores return sentinel errors (pkg/platform/sentinel) describing
// infrastructure facts; services translate those into coded errors that
// callers can branch on without string matching:
//
//	if dErrors.HasCode(err, dErrors.CodeNotFound) { ... }
//
// CodeInvariantViolation is reserved for domain-model constructors and
// transition guards; services usually re-code it as CodeValidation or
// CodeConflict before returning it to callers.
package domainerrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	// CodeValidation marks rejected input: blank actors, missing rationale,
	// unknown enum values. Recoverable by the caller correcting the request.
	CodeValidation Code = "validation"

	// CodeNotFound marks a mutation or read targeting an id absent from the
	// collection.
	CodeNotFound Code = "not_found"

	// CodeConflict marks a request that is valid in shape but conflicts with
	// current state.
	CodeConflict Code = "conflict"

	// CodeInvariantViolation marks a domain invariant breach detected by a
	// model constructor or transition guard.
	CodeInvariantViolation Code = "invariant_violation"

	// CodeInternal marks unexpected failures from lower layers.
	CodeInternal Code = "internal"
)

// Error carries a machine-checkable code alongside the message. The wrapped
// cause, when present, participates in errors.Is/As chains.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and context message to an underlying error.
// Wrapping nil returns nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Cause
		if err == nil {
			return false
		}
	}
	return false
}

// Is is a readability alias for HasCode, matching assertion call sites.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost code in the chain, or "" for uncoded errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
