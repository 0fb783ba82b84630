// Package errs provides structured, user-friendly errors with machine-parseable codes.
package errs

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-parseable error identifier.
type ErrorCode string

const (
	// General
	ErrUnknown    ErrorCode = "ERR-000"
	ErrInternal   ErrorCode = "ERR-001"
	ErrConfig     ErrorCode = "ERR-CFG-001"
	ErrValidation ErrorCode = "ERR-VAL-001"

	// Vehicle errors
	ErrKindUnknown ErrorCode = "ERR-KIND-001"
	ErrSpecInvalid ErrorCode = "ERR-SPEC-001"

	// Fleet errors
	ErrFleetEmpty  ErrorCode = "ERR-FLEET-001"
	ErrFleetClosed ErrorCode = "ERR-FLEET-002"
)

// VroomError is the standard structured error type used across all vroom packages.
type VroomError struct {
	Code     ErrorCode // Machine-parseable error code
	Op       string    // Operation chain, e.g., "fleet.build.parse_kind"
	Resource string    // Resource identifier (vehicle kind, brand, config path, etc.)
	Cause    error     // Wrapped upstream error
	Advice   string    // Human-readable remediation hint
}

func (e *VroomError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("[%s] %s (%s): %v", e.Code, e.Op, e.Resource, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Cause)
}

func (e *VroomError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the formatted user-facing error message with remediation advice.
func (e *VroomError) UserMessage() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Op)
	if e.Resource != "" {
		msg += fmt.Sprintf(" (resource: %s)", e.Resource)
	}
	if e.Advice != "" {
		msg += fmt.Sprintf("\n  → %s", e.Advice)
	}
	return msg
}

// New creates a new VroomError.
func New(code ErrorCode, op string, cause error) *VroomError {
	return &VroomError{Code: code, Op: op, Cause: cause}
}

// Newf creates a new VroomError with a formatted message as the cause.
func Newf(code ErrorCode, op, format string, args ...any) *VroomError {
	return &VroomError{Code: code, Op: op, Cause: fmt.Errorf(format, args...)}
}

// WithResource sets the resource identifier on a VroomError.
func (e *VroomError) WithResource(resource string) *VroomError {
	e.Resource = resource
	return e
}

// WithAdvice sets the human-readable remediation hint on a VroomError.
func (e *VroomError) WithAdvice(advice string) *VroomError {
	e.Advice = advice
	return e
}

// Wrap wraps an existing error as a VroomError at a new operation boundary.
func Wrap(err error, code ErrorCode, op string) *VroomError {
	if err == nil {
		return nil
	}
	return &VroomError{Code: code, Op: op, Cause: err}
}

// IsCode reports whether err is a VroomError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ve *VroomError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

// AsVroom extracts the *VroomError from err, or returns nil.
func AsVroom(err error) *VroomError {
	var ve *VroomError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
