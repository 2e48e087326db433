// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across rechenwerk. Codes separate formula failures (not computable,
//              unknown unit, unknown variant, invalid shape) from tooling failures
//              (configuration, I/O, lookup) and map onto process exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Formula failure codes, exit codes replace HTTP status

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeCancelled    Code = "CANCELLED"

	// Formula evaluation
	CodeNotComputable  Code = "NOT_COMPUTABLE"
	CodeUnknownUnit    Code = "UNKNOWN_UNIT"
	CodeUnknownVariant Code = "UNKNOWN_VARIANT"
	CodeInvalidShape   Code = "INVALID_SHAPE"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Files and encoding
	CodeIOError           Code = "IO_ERROR"
	CodeDecodeError       Code = "DECODE_ERROR"
	CodeEncodeError       Code = "ENCODE_ERROR"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeCancelled,
		CodeNotComputable, CodeUnknownUnit, CodeUnknownVariant, CodeInvalidShape, CodeDuplicateEntry,
		CodeIOError, CodeDecodeError, CodeEncodeError, CodeUnsupportedFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNotComputable, CodeUnknownUnit, CodeUnknownVariant, CodeInvalidShape, CodeDuplicateEntry:
		return "formula"
	case CodeIOError, CodeDecodeError, CodeEncodeError, CodeUnsupportedFormat:
		return "io"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// Exit codes used by the command line tools.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitRejected = 2
	ExitUsage    = 64
)

// ExitCode returns the process exit status for this error code. Input that
// was understood but rejected (not computable, bad shape) exits with
// ExitRejected so scripts can tell it apart from tool failures.
func (c Code) ExitCode() int {
	switch c {
	case CodeNotComputable, CodeUnknownUnit, CodeUnknownVariant, CodeInvalidShape,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return ExitRejected
	case CodeInvalidInput, CodeNotFound, CodeUnsupportedFormat:
		return ExitUsage
	default:
		return ExitFailure
	}
}
