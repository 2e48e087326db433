// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization,
//              monitoring, and alerting. Severity levels help operations teams
//              respond appropriately to different types of errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for formula and io codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input: not computable, unknown unit, bad shape
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed request that can be retried or corrected
	SeverityMedium

	// SeverityHigh indicates the tool cannot proceed: unreadable files, invalid config
	SeverityHigh

	// SeverityCritical indicates a programming error such as a broken catalog
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity should be logged at error level
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeEnvironmentError:
		return SeverityCritical

	case CodeIOError, CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeDuplicateEntry:
		return SeverityHigh

	case CodeTimeout, CodeCancelled, CodeDecodeError, CodeEncodeError:
		return SeverityMedium

	// Rejected input is expected during normal use
	case CodeNotComputable, CodeUnknownUnit, CodeUnknownVariant, CodeInvalidShape,
		CodeInvalidInput, CodeNotFound, CodeUnsupportedFormat,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
