// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the fnkit foundation packages.
//              Codes classify failures so callers can branch on them without
//              parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Reduced to the codes used by the utility packages, added CodeTypeKind

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Value shape
	CodeTypeKind        Code = "TYPE_KIND"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidPattern  Code = "INVALID_PATTERN"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Input and output
	CodeReadFailed  Code = "READ_FAILED"
	CodeWriteFailed Code = "WRITE_FAILED"

	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeTypeKind, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidPattern,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeReadFailed, CodeWriteFailed, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTypeKind, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidPattern,
		CodeInvalidInput, CodeValidationFailed:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeReadFailed, CodeWriteFailed:
		return "io"
	case CodeNotFound:
		return "lookup"
	default:
		return "generic"
	}
}
