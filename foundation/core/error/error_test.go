// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, metadata
//              and errors.Is/As integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Code matching through wrapped chains, exit codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("formula %q not found", "quality.cpk")
	if got, want := err.Error(), `formula "quality.cpk" not found`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("division by zero").WithCode(CodeNotComputable),
			message:  "evaluate electronics.ohms_law",
			wantMsg:  "evaluate electronics.ohms_law: division by zero",
			wantCode: CodeNotComputable,
		},
		{
			name:     "wrap coded error behind fmt.Errorf",
			err:      fmt.Errorf("decode: %w", New("bad shape").WithCode(CodeInvalidShape)),
			message:  "batch request 3",
			wantMsg:  "batch request 3: decode: bad shape",
			wantCode: CodeInvalidShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if wrapped.Unwrap() != tt.err {
				t.Errorf("Unwrap() = %v, want %v", wrapped.Unwrap(), tt.err)
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("bad unit").WithCode(CodeUnknownUnit).WithDetail("unit", "furlong")
	outer := Wrap(inner, "convert")

	if v, ok := outer.Detail("unit"); !ok || v != "furlong" {
		t.Errorf("Detail(\"unit\") = %v, %v, want furlong, true", v, ok)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}
	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}
	if rootCause := top.RootCause(); rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	e := err.(*Error)
	if v, ok := e.Detail("truncated"); ok && v != true {
		t.Errorf("Detail(\"truncated\") = %v, want true", v)
	}
	if depth := chainDepth(err); depth > MaxErrorChainDepth+1 {
		t.Errorf("chainDepth() = %d, want <= %d", depth, MaxErrorChainDepth+1)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := Wrap(New("window larger than series").WithCode(CodeNotComputable), "quality.moving_average")

	if !errors.Is(err, New("").WithCode(CodeNotComputable)) {
		t.Error("errors.Is() should match on code")
	}
	if errors.Is(err, New("").WithCode(CodeInvalidShape)) {
		t.Error("errors.Is() should not match a different code")
	}
	if errors.Is(New("x"), New("x")) {
		t.Error("errors.Is() should not match uncoded errors")
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeIOError)

	if err.Code() != CodeIOError {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeIOError)
	}
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithSeverityKeptByWithCode(t *testing.T) {
	err := New("test error").WithSeverity(SeverityCritical).WithCode(CodeNotComputable)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test").WithDetails(map[string]interface{}{
		"formula": "quality.cpk",
		"field":   "stdDev",
	})

	details := err.Details()
	if details["formula"] != "quality.cpk" || details["field"] != "stdDev" {
		t.Errorf("Details() = %v", details)
	}

	details["formula"] = "changed"
	if v, _ := err.Detail("formula"); v != "quality.cpk" {
		t.Error("Details() should return a copy")
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New("test").WithCode(CodeUnknownUnit), CodeUnknownUnit, true},
		{"different code", New("test").WithCode(CodeUnknownUnit), CodeNotFound, false},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", New("test").WithCode(CodeNotFound)), CodeNotFound, true},
		{"standard error", errors.New("standard error"), CodeNotFound, false},
		{"nil", nil, CodeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	coded := New("test").WithCode(CodeInvalidShape).WithSeverity(SeverityHigh)

	if got := GetCode(coded); got != CodeInvalidShape {
		t.Errorf("GetCode() = %v, want %v", got, CodeInvalidShape)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(coded); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityMedium)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"not computable", New("x").WithCode(CodeNotComputable), ExitRejected},
		{"not found", New("x").WithCode(CodeNotFound), ExitUsage},
		{"plain", errors.New("x"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	err := New("test error").
		WithCode(CodeNotComputable).
		WithOperation("quality.cpk").
		WithRequestID("req-456").
		WithDetail("field", "stdDev").
		WithDetail("reason", "negative")

	str := err.String()
	expectedParts := []string{
		"Error: test error",
		"Code: NOT_COMPUTABLE",
		"Severity: low",
		"Operation: quality.cpk",
		"RequestID: req-456",
		"Details: {field=stdDev, reason=negative}",
	}
	for _, part := range expectedParts {
		if !strings.Contains(str, part) {
			t.Errorf("String() should contain %q, got:\n%s", part, str)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("test error").
		WithCode(CodeUnknownUnit).
		WithOperation("automotive.power_conversion").
		WithDetail("unit", "furlong")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if result["message"] != "test error" {
		t.Errorf("JSON message = %v, want \"test error\"", result["message"])
	}
	if result["code"] != "UNKNOWN_UNIT" {
		t.Errorf("JSON code = %v, want \"UNKNOWN_UNIT\"", result["code"])
	}
	if result["operation"] != "automotive.power_conversion" {
		t.Errorf("JSON operation = %v", result["operation"])
	}
	details, ok := result["details"].(map[string]interface{})
	if !ok {
		t.Fatal("JSON details should be a map")
	}
	if details["unit"] != "furlong" {
		t.Errorf("JSON details.unit = %v, want \"furlong\"", details["unit"])
	}
}

func TestStackTrace(t *testing.T) {
	stackTrace := New("test error").StackTrace()
	if len(stackTrace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(stackTrace[0].Function, "TestStackTrace") {
		t.Errorf("First stack frame should contain TestStackTrace, got %s", stackTrace[0].Function)
	}
	if stackTrace[0].Line == 0 {
		t.Error("Stack frame line should not be 0")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	base := New("base").WithCode(CodeNotComputable)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
