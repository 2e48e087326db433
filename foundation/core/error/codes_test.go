// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validity, categorization and exit code mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Exit codes replace HTTP status tests

package error

import (
	"testing"
)

var allCodes = []Code{
	CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeCancelled,
	CodeNotComputable, CodeUnknownUnit, CodeUnknownVariant, CodeInvalidShape, CodeDuplicateEntry,
	CodeIOError, CodeDecodeError, CodeEncodeError, CodeUnsupportedFormat,
	CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
	CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
}

func TestCodeIsValid(t *testing.T) {
	for _, code := range allCodes {
		if !code.IsValid() {
			t.Errorf("Code(%q).IsValid() = false, want true", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("Code(\"NOPE\").IsValid() = true, want false")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeNotComputable, "formula"},
		{CodeUnknownUnit, "formula"},
		{CodeInvalidShape, "formula"},
		{CodeDecodeError, "io"},
		{CodeInvalidConfig, "configuration"},
		{CodeValueOutOfRange, "validation"},
		{CodeNotFound, "generic"},
		{Code("NOPE"), "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotComputable, ExitRejected},
		{CodeUnknownVariant, ExitRejected},
		{CodeInvalidShape, ExitRejected},
		{CodeValidationFailed, ExitRejected},
		{CodeNotFound, ExitUsage},
		{CodeUnsupportedFormat, ExitUsage},
		{CodeIOError, ExitFailure},
		{CodeInternal, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("Code.ExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryCoverage(t *testing.T) {
	for _, code := range allCodes {
		if code.Category() == "" {
			t.Errorf("Code(%q).Category() is empty", code)
		}
	}
}
