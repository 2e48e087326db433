// File: severity_test.go
// Title: Severity Tests
// Description: Tests for error severity functionality including string representation,
//              alerting rules, and automatic severity determination from error codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive severity tests
// - 2026-10-19 v0.2.0: Formula and io codes

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityLow, false},
		{SeverityMedium, false},
		{SeverityHigh, true},
		{SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			if got := tt.severity.ShouldAlert(); got != tt.want {
				t.Errorf("Severity.ShouldAlert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if SeverityLow >= SeverityMedium {
		t.Error("SeverityLow should be less than SeverityMedium")
	}
	if SeverityMedium >= SeverityHigh {
		t.Error("SeverityMedium should be less than SeverityHigh")
	}
	if SeverityHigh >= SeverityCritical {
		t.Error("SeverityHigh should be less than SeverityCritical")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		severity Severity
	}{
		{"internal", CodeInternal, SeverityCritical},
		{"environment error", CodeEnvironmentError, SeverityCritical},

		{"io error", CodeIOError, SeverityHigh},
		{"invalid config", CodeInvalidConfig, SeverityHigh},
		{"duplicate entry", CodeDuplicateEntry, SeverityHigh},

		{"timeout", CodeTimeout, SeverityMedium},
		{"cancelled", CodeCancelled, SeverityMedium},
		{"decode error", CodeDecodeError, SeverityMedium},

		{"not computable", CodeNotComputable, SeverityLow},
		{"unknown unit", CodeUnknownUnit, SeverityLow},
		{"unknown variant", CodeUnknownVariant, SeverityLow},
		{"invalid shape", CodeInvalidShape, SeverityLow},
		{"not found", CodeNotFound, SeverityLow},
		{"validation failed", CodeValidationFailed, SeverityLow},

		{"unknown code", Code("UNKNOWN_CODE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.severity {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.severity)
			}
		})
	}
}

func BenchmarkGetSeverityFromCode(b *testing.B) {
	codes := []Code{CodeNotComputable, CodeNotFound, CodeIOError, CodeInvalidShape}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetSeverityFromCode(codes[i%len(codes)])
	}
}
