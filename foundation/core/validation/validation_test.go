// File: validation_test.go
// Title: Core Validation Framework Tests
// Description: Tests for the validation framework infrastructure: results,
//              chains, conditional validators, coded error conversion and the
//              decoded document helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package validation

import (
	"context"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

func TestValidationResult(t *testing.T) {
	t.Run("NewValidationResult creates valid result", func(t *testing.T) {
		result := NewValidationResult()
		if !result.Valid {
			t.Error("Expected valid result")
		}
		if len(result.Errors) != 0 {
			t.Error("Expected no errors")
		}
	})

	t.Run("NewValidationError creates invalid result", func(t *testing.T) {
		result := NewValidationError(CodeRequired, "value required")
		if result.Valid {
			t.Error("Expected invalid result")
		}
		if len(result.Errors) != 1 {
			t.Errorf("Expected 1 error, got %d", len(result.Errors))
		}
		if result.Errors[0].Code != CodeRequired {
			t.Errorf("Expected code %s, got %s", CodeRequired, result.Errors[0].Code)
		}
	})

	t.Run("AddFieldError and Fields", func(t *testing.T) {
		result := NewValidationResult()
		result.AddFieldError(CodeType, "voltage", "must be a number", "12")
		result.AddFieldError(CodeRange, "voltage", "must be positive", -1)
		result.AddExpected(CodeEnum, "solveFor", "unknown variant", "watts", []string{"current", "voltage"})

		if result.Valid {
			t.Error("Expected invalid result after adding errors")
		}
		fields := result.Fields()
		if len(fields) != 2 || fields[0] != "voltage" || fields[1] != "solveFor" {
			t.Errorf("Fields() = %v, want [voltage solveFor]", fields)
		}
		codes := result.ErrorCodes()
		if len(codes) != 3 || codes[2] != CodeEnum {
			t.Errorf("ErrorCodes() = %v", codes)
		}
	})

	t.Run("FirstError returns first error", func(t *testing.T) {
		result := NewValidationResult()
		result.AddError(CodeRequired, "first error")
		result.AddError(CodeType, "second error")

		firstError := result.FirstError()
		if firstError == nil {
			t.Fatal("Expected first error")
		}
		if firstError.Message != "first error" {
			t.Errorf("Expected 'first error', got %s", firstError.Message)
		}
		if NewValidationResult().FirstError() != nil {
			t.Error("Expected nil first error for valid result")
		}
	})
}

func TestToError(t *testing.T) {
	if err := NewValidationResult().ToError(); err != nil {
		t.Fatalf("ToError() on valid result = %v, want nil", err)
	}

	result := NewValidationResult()
	result.AddExpected(CodeType, "current", "must be a number", "2A", "number")
	result.AddFieldError(CodeRequired, "resistance", "is required", nil)

	err := result.ToError()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.HasPrefix(err.Error(), "current: must be a number") {
		t.Errorf("Error() = %q, want prefix %q", err.Error(), "current: must be a number")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeValidationFailed)
	}

	var coded *mdwerror.Error
	if !errors.As(err, &coded) {
		t.Fatal("Expected *mdwerror.Error")
	}
	if v, _ := coded.Detail("field"); v != "current" {
		t.Errorf("detail field = %v, want current", v)
	}
	if v, _ := coded.Detail("expected"); v != "number" {
		t.Errorf("detail expected = %v, want number", v)
	}
	if v, _ := coded.Detail("totalErrors"); v != 2 {
		t.Errorf("detail totalErrors = %v, want 2", v)
	}
}

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"float64", 1.5, 1.5, true},
		{"int from yaml", 42, 42, true},
		{"int64 from toml", int64(-7), -7, true},
		{"uint64", uint64(3), 3, true},
		{"float32", float32(0.5), 0.5, true},
		{"numeric string", "12", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"list", []interface{}{1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsNumber(tt.value)
			if ok != tt.ok || got != tt.want {
				t.Errorf("AsNumber(%v) = %v, %v, want %v, %v", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAsRecord(t *testing.T) {
	if _, ok := AsRecord(map[string]interface{}{"a": 1}); !ok {
		t.Error("AsRecord(map[string]interface{}) should succeed")
	}
	rec, ok := AsRecord(map[interface{}]interface{}{"shape": "round"})
	if !ok || rec["shape"] != "round" {
		t.Errorf("AsRecord(map[interface{}]interface{}) = %v, %v", rec, ok)
	}
	if _, ok := AsRecord(map[interface{}]interface{}{1: "x"}); ok {
		t.Error("AsRecord with non-string key should fail")
	}
	var nilMap map[string]interface{}
	if _, ok := AsRecord(nilMap); ok {
		t.Error("AsRecord(nil map) should fail")
	}
	for _, v := range []interface{}{nil, "record", 3, []interface{}{}} {
		if _, ok := AsRecord(v); ok {
			t.Errorf("AsRecord(%v) should fail", v)
		}
	}
}

func TestAsNumberList(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []float64
		bad   int
		ok    bool
	}{
		{"mixed numeric kinds", []interface{}{1, 2.5, int64(3)}, []float64{1, 2.5, 3}, -1, true},
		{"typed slice", []int{4, 5}, []float64{4, 5}, -1, true},
		{"float slice", []float64{1}, []float64{1}, -1, true},
		{"empty", []interface{}{}, []float64{}, -1, true},
		{"string element", []interface{}{1, "2"}, nil, 1, false},
		{"not a list", 12, nil, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bad, ok := AsNumberList(tt.value)
			if ok != tt.ok || bad != tt.bad {
				t.Errorf("AsNumberList(%v) = _, %d, %v, want _, %d, %v", tt.value, bad, ok, tt.bad, tt.ok)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("AsNumberList(%v) = %v, want %v", tt.value, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("AsNumberList(%v)[%d] = %v, want %v", tt.value, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFrameworkUtilities(t *testing.T) {
	t.Run("ConvertToFloat64 function", func(t *testing.T) {
		tests := []struct {
			name      string
			value     interface{}
			expected  float64
			shouldErr bool
		}{
			{"float64", 123.45, 123.45, false},
			{"int", 42, 42.0, false},
			{"string number", "99.9", 99.9, false},
			{"invalid string", "abc", 0, true},
			{"invalid type", []int{1, 2}, 0, true},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				result, err := ConvertToFloat64(test.value)
				if test.shouldErr {
					if err == nil {
						t.Error("Expected error but got none")
					}
					return
				}
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if result != test.expected {
					t.Errorf("Expected %f, got %f", test.expected, result)
				}
			})
		}
	})

	t.Run("IsNilOrEmpty function", func(t *testing.T) {
		tests := []struct {
			name     string
			value    interface{}
			expected bool
		}{
			{"nil", nil, true},
			{"empty string", "", true},
			{"non-empty string", "hello", false},
			{"empty slice", []int{}, true},
			{"non-empty slice", []int{1, 2}, false},
			{"number", 42, false},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				if result := IsNilOrEmpty(test.value); result != test.expected {
					t.Errorf("Expected %v, got %v", test.expected, result)
				}
			})
		}
	})

	t.Run("TypeName function", func(t *testing.T) {
		tests := []struct {
			value interface{}
			want  string
		}{
			{nil, "null"},
			{"x", "string"},
			{false, "boolean"},
			{3, "number"},
			{map[string]interface{}{}, "record"},
			{[]interface{}{1}, "list"},
		}
		for _, tt := range tests {
			if got := TypeName(tt.value); got != tt.want {
				t.Errorf("TypeName(%v) = %q, want %q", tt.value, got, tt.want)
			}
		}
	})
}

func TestValidatorChain(t *testing.T) {
	alwaysValid := ValidatorFunc(func(value interface{}) ValidationResult {
		return NewValidationResult()
	})

	alwaysInvalid := ValidatorFunc(func(value interface{}) ValidationResult {
		return NewValidationError(CodeCustom, "always fails")
	})

	requiredValidator := ValidatorFunc(func(value interface{}) ValidationResult {
		if IsNilOrEmpty(value) {
			return NewValidationError(CodeRequired, "value is required")
		}
		return NewValidationResult()
	})

	t.Run("Basic validator chain", func(t *testing.T) {
		chain := NewValidatorChain("test-chain").
			Add(alwaysValid).
			AddFunc(alwaysValid)

		result := chain.Validate("test-value")
		if !result.Valid {
			t.Errorf("Expected valid result, got: %s", result.String())
		}
		if chain.Length() != 2 {
			t.Errorf("Length() = %d, want 2", chain.Length())
		}

		failingChain := NewValidatorChain("failing-chain").
			Add(alwaysValid).
			Add(alwaysInvalid)

		result = failingChain.Validate("test-value")
		if result.Valid {
			t.Error("Expected invalid result")
		}
		if !result.HasError(CodeCustom) {
			t.Error("Expected CodeCustom error")
		}
		if result.Context["validatorChain"] != "failing-chain" {
			t.Error("Expected chain name in context")
		}
	})

	t.Run("Chain with required validator", func(t *testing.T) {
		chain := NewValidatorChain().
			Add(requiredValidator).
			Add(alwaysValid)

		if result := chain.Validate("valid-value"); !result.Valid {
			t.Errorf("Expected valid result, got: %s", result.String())
		}

		result := chain.Validate("")
		if result.Valid {
			t.Error("Expected invalid result for empty value")
		}
		if !result.HasError(CodeRequired) {
			t.Error("Expected CodeRequired error")
		}
		if !strings.Contains(chain.String(), "unnamed") {
			t.Errorf("String() = %q, want unnamed chain", chain.String())
		}
	})

	t.Run("StopOnFirstError behavior", func(t *testing.T) {
		chain := NewValidatorChain("stop-on-first").
			StopOnFirstError(true).
			Add(alwaysInvalid).
			Add(alwaysInvalid)

		result := chain.Validate("test-value")
		if len(result.Errors) != 1 {
			t.Errorf("Expected exactly 1 error with StopOnFirstError, got %d", len(result.Errors))
		}

		collect := NewValidatorChain("collect-all").
			Add(alwaysInvalid).
			Add(alwaysInvalid)

		if result := collect.Validate("test-value"); len(result.Errors) != 2 {
			t.Errorf("Expected 2 errors without StopOnFirstError, got %d", len(result.Errors))
		}
	})

	t.Run("Cancelled context stops the chain", func(t *testing.T) {
		calls := 0
		counting := ValidatorFunc(func(value interface{}) ValidationResult {
			calls++
			return NewValidationResult()
		})
		chain := NewValidatorChain("cancelled").Add(counting).Add(counting)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := chain.ValidateWithContext(ctx, 1)
		if result.Valid {
			t.Error("Expected invalid result for cancelled context")
		}
		if calls != 0 {
			t.Errorf("validators called %d times, want 0", calls)
		}
	})
}

func TestConditionalValidator(t *testing.T) {
	present := func(value interface{}) bool { return value != nil }

	positive := ValidatorFunc(func(value interface{}) ValidationResult {
		if n, ok := AsNumber(value); ok && n > 0 {
			return NewValidationResult()
		}
		return NewValidationError(CodeRange, "must be positive")
	})

	conditional := When(present, positive)

	if result := conditional.Validate(nil); !result.Valid {
		t.Error("Expected validation to pass when condition not met")
	}
	if result := conditional.Validate(2.5); !result.Valid {
		t.Error("Expected valid result for positive value")
	}
	result := conditional.Validate(-1)
	if result.Valid {
		t.Error("Expected validation to fail when condition met")
	}
	if !result.HasError(CodeRange) {
		t.Error("Expected CodeRange error when condition met")
	}
}

func TestCombineResults(t *testing.T) {
	result1 := NewValidationResult()
	result1.WithContext("formula", "electronics.ohms_law")
	result2 := NewValidationError(CodeRequired, "required error")
	result3 := NewValidationError(CodeType, "type error")

	combined := Combine(result1, result2, result3)

	if combined.Valid {
		t.Error("Expected combined result to be invalid")
	}
	if len(combined.Errors) != 2 {
		t.Errorf("Expected 2 errors in combined result, got %d", len(combined.Errors))
	}
	if !combined.HasError(CodeRequired) || !combined.HasError(CodeType) {
		t.Errorf("ErrorCodes() = %v", combined.ErrorCodes())
	}
	if combined.Context["formula"] != "electronics.ohms_law" {
		t.Error("Expected context to be merged")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []string{
		CodeRequired, CodeType, CodeRange, CodeFinite,
		CodeLength, CodeEnum, CodeUnknown, CodeCustom,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		if !strings.HasPrefix(code, "VALIDATION_") {
			t.Errorf("Error code %s should start with VALIDATION_", code)
		}
		if seen[code] {
			t.Errorf("Error code %s defined twice", code)
		}
		seen[code] = true
	}
}

func BenchmarkValidatorChain(b *testing.B) {
	positive := ValidatorFunc(func(value interface{}) ValidationResult {
		if n, ok := AsNumber(value); ok && n > 0 {
			return NewValidationResult()
		}
		return NewValidationError(CodeRange, "must be positive")
	})
	chain := NewValidatorChain("bench").Add(positive).Add(positive)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Validate(float64(i + 1))
	}
}
