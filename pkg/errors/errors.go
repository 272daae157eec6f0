/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeContractNotFound indicates the stack has no contract file.
	// Callers treat this as "nothing to do", not a failure.
	ErrCodeContractNotFound ErrorCode = "CONTRACT_NOT_FOUND"
	// ErrCodeContractInvalid indicates a contract failed structural validation.
	// No mutation has been attempted when this is returned.
	ErrCodeContractInvalid ErrorCode = "CONTRACT_INVALID"
	// ErrCodeExternalCall indicates a call to an external system
	// (Kubernetes API, Vault, docker) failed.
	ErrCodeExternalCall ErrorCode = "EXTERNAL_CALL_FAILURE"
	// ErrCodePartialSuccess indicates some contract entries succeeded and
	// others failed; earlier resources remain applied.
	ErrCodePartialSuccess ErrorCode = "PARTIAL_SUCCESS"
	// ErrCodeConfig indicates invalid or missing runtime configuration,
	// e.g. no kubeconfig could be located.
	ErrCodeConfig ErrorCode = "CONFIG"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// HasCode reports whether any error in err's chain is a StructuredError
// carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
