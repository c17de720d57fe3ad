// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-futures.

package api

import "fmt"

// Common errors used across the library. Misuse of the callback cell
// surfaces as a distinguishable error value rather than an assertion or
// panic, so callers can recover or log deterministically.
var (
	ErrInvalidState    = fmt.Errorf("invalid state")
	ErrNotImplemented  = fmt.Errorf("operation not implemented")
	ErrCanceled        = fmt.Errorf("operation canceled")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidState
	ErrCodeNotImplemented
	ErrCodeCanceled
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the structured code onto its sentinel so that
// errors.Is(err, api.ErrInvalidState) and friends work on wrapped values.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidState:
		return ErrInvalidState
	case ErrCodeNotImplemented:
		return ErrNotImplemented
	case ErrCodeCanceled:
		return ErrCanceled
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewInvalidStateError reports an operation invoked while the cell is in a
// state that prohibits it. Op and state are carried as error context.
func NewInvalidStateError(op, state string) *Error {
	return NewError(ErrCodeInvalidState, fmt.Sprintf("invalid state: %s while %s", op, state)).
		WithContext("op", op).
		WithContext("state", state)
}

// NewNotImplementedError reports invocation of a placeholder contract that
// has no implementation behind it.
func NewNotImplementedError(op string) *Error {
	return NewError(ErrCodeNotImplemented, fmt.Sprintf("%s: not implemented", op)).
		WithContext("op", op)
}
