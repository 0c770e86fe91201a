package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified rediskit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with automatic retryable detection.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Taxonomy Constructors ---

// ClientCreation wraps a driver failure to parse a URL or open a client handle.
func ClientCreation(cause error) *Error {
	return New(ErrCodeClientCreation, "failed to create redis client").WithCause(cause)
}

// PoolCreation reports a failed managed-connection construction step.
// The stage message indicates which step failed.
func PoolCreation(stage string, cause error) *Error {
	return New(ErrCodePoolCreation, stage).WithCause(cause)
}

// ConnectionAcquisition wraps a failure to acquire a connection from a pool.
func ConnectionAcquisition(cause error) *Error {
	return New(ErrCodeConnectionAcquisition, "failed to acquire connection").WithCause(cause)
}

// ConnectionManager wraps a failure on an established managed connection.
func ConnectionManager(cause error) *Error {
	return New(ErrCodeConnectionManager, "connection manager error").WithCause(cause)
}

// Configuration reports invalid input configuration.
func Configuration(reason string) *Error {
	return New(ErrCodeConfiguration, reason)
}

// Timeout reports an expired deadline for the named operation.
func Timeout(operation string) *Error {
	return New(ErrCodeTimeout, "operation timed out").WithDetail("operation", operation)
}

// Network reports a network-level failure.
func Network(reason string) *Error {
	return New(ErrCodeNetwork, reason)
}

// Serialization wraps a JSON encoding failure.
func Serialization(cause error) *Error {
	return New(ErrCodeSerialization, "failed to encode value").WithCause(cause)
}

// Deserialization wraps a JSON decoding failure.
func Deserialization(cause error) *Error {
	return New(ErrCodeDeserialization, "failed to decode stored value").WithCause(cause)
}

// FromDriver is the blanket conversion for driver-level errors.
// Errors already carrying a code pass through unchanged; everything else
// is wrapped as a client creation failure, the nearest taxonomy member.
func FromDriver(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return ClientCreation(err)
}

// CodeOf extracts the error code from an error chain.
// Returns an empty code for nil or foreign errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// IsRetryable reports whether the error chain carries a retryable code.
func IsRetryable(err error) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Retryable
	}
	return false
}
