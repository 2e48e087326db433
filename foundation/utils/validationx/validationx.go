// File: validationx.go
// Title: Core Validation Utilities
// Description: Concrete validators for values decoded from YAML, JSON and
//              TOML documents: presence, primitive kind, numeric range and
//              enumerations. Used by the formula input guards and by the
//              configuration checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-19 v0.2.0: Strict numeric kinds, list and record validators, sorted field order

package validationx

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/msto63/rechenwerk/foundation/core/validation"
)

// Type aliases for convenience
type (
	// ValidationResult is an alias to the core validation result type
	ValidationResult = validation.ValidationResult
	// ValidatorChain is an alias to the core validator chain type
	ValidatorChain = validation.ValidatorChain
)

// NewValidatorChain creates a new validator chain using the core framework
func NewValidatorChain(name string) *ValidatorChain {
	return validation.NewValidatorChain(name)
}

// ===============================
// Presence
// ===============================

// Required validates that a value is present and not empty
var Required validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if validation.IsNilOrEmpty(value) {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	return validation.NewValidationResult()
}

// Optional creates a validator that only runs if the value is present
func Optional(validator validation.Validator) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if value == nil {
			return validation.NewValidationResult()
		}
		return validator.Validate(value)
	}
}

// ===============================
// Primitive Kinds
// ===============================

func typeError(value interface{}, expected string) validation.ValidationResult {
	result := validation.NewValidationResult()
	result.AddExpected(validation.CodeType,
		"", fmt.Sprintf("must be a %s, got %s", expected, validation.TypeName(value)),
		value, expected)
	return result
}

// Number validates that a value is a finite number. Numeric strings and
// booleans are rejected.
var Number validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	n, ok := validation.AsNumber(value)
	if !ok {
		return typeError(value, "number")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return validation.NewValidationError(validation.CodeFinite, "must be a finite number")
	}
	return validation.NewValidationResult()
}

// String validates that a value is a string
var String validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if _, ok := value.(string); !ok {
		return typeError(value, "string")
	}
	return validation.NewValidationResult()
}

// NumberList validates that a value is a list whose elements are all numbers
var NumberList validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if _, bad, ok := validation.AsNumberList(value); !ok {
		if bad < 0 {
			return typeError(value, "list of numbers")
		}
		return validation.NewValidationError(validation.CodeType,
			fmt.Sprintf("element %d must be a number", bad))
	}
	return validation.NewValidationResult()
}

// RecordList validates that a value is a list whose elements are all records
var RecordList validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	items, ok := validation.AsList(value)
	if !ok {
		return typeError(value, "list of records")
	}
	for i, item := range items {
		if _, ok := validation.AsRecord(item); !ok {
			return validation.NewValidationError(validation.CodeType,
				fmt.Sprintf("element %d must be a record", i))
		}
	}
	return validation.NewValidationResult()
}

// ===============================
// Numeric Ranges
// ===============================

func numeric(check func(float64) bool, message string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if result := Number(value); !result.Valid {
			return result
		}
		n, _ := validation.AsNumber(value)
		if !check(n) {
			result := validation.NewValidationResult()
			result.AddFieldError(validation.CodeRange, "", message, value)
			return result
		}
		return validation.NewValidationResult()
	}
}

// Positive validates that a value is a number greater than zero
var Positive = numeric(func(n float64) bool { return n > 0 }, "must be greater than 0")

// NonNegative validates that a value is a number of at least zero
var NonNegative = numeric(func(n float64) bool { return n >= 0 }, "must not be negative")

// Integer validates that a value is a whole number
var Integer = numeric(func(n float64) bool { return n == math.Trunc(n) }, "must be a whole number")

// Min validates minimum numeric value
func Min(min float64) validation.ValidatorFunc {
	return numeric(func(n float64) bool { return n >= min }, fmt.Sprintf("must be at least %g", min))
}

// Max validates maximum numeric value
func Max(max float64) validation.ValidatorFunc {
	return numeric(func(n float64) bool { return n <= max }, fmt.Sprintf("must be at most %g", max))
}

// Range validates that a numeric value is within [min, max]
func Range(min, max float64) validation.ValidatorFunc {
	return numeric(func(n float64) bool { return n >= min && n <= max },
		fmt.Sprintf("must be between %g and %g", min, max))
}

// ===============================
// Enumerations
// ===============================

// OneOf validates that a value is one of the allowed strings, ignoring case
// and surrounding whitespace
func OneOf(allowed ...string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, ok := value.(string)
		if !ok {
			return typeError(value, "string")
		}
		key := strings.ToLower(strings.TrimSpace(s))
		for _, a := range allowed {
			if strings.ToLower(a) == key {
				return validation.NewValidationResult()
			}
		}
		result := validation.NewValidationResult()
		result.AddExpected(validation.CodeEnum, "",
			fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")), value, allowed)
		return result
	}
}

// In validates that value is in a list of allowed values
func In(allowed ...interface{}) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		for _, item := range allowed {
			if value == item {
				return validation.NewValidationResult()
			}
		}
		return validation.NewValidationError(validation.CodeEnum, fmt.Sprintf("must be one of: %v", allowed))
	}
}

// ===============================
// Custom Validation Functions
// ===============================

// Custom creates a custom validator with a validation function
func Custom(fn func(interface{}) (bool, string)) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		valid, message := fn(value)
		if !valid {
			return validation.NewValidationError(validation.CodeCustom, message)
		}
		return validation.NewValidationResult()
	}
}

// ===============================
// Utility Functions
// ===============================

// Validate runs a validator chain per field of a record. Fields are checked
// in sorted order so results are stable; missing fields are validated as nil.
// Errors without a field name are attributed to the field being checked.
func Validate(data map[string]interface{}, rules map[string]*ValidatorChain) validation.ValidationResult {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	results := make([]validation.ValidationResult, 0, len(fields))
	for _, field := range fields {
		fieldResult := rules[field].Validate(data[field])
		for i := range fieldResult.Errors {
			if fieldResult.Errors[i].Field == "" {
				fieldResult.Errors[i].Field = field
			}
		}
		results = append(results, fieldResult)
	}

	return validation.Combine(results...)
}

// Field validates a single named value and attributes errors to name
func Field(name string, value interface{}, validators ...validation.Validator) validation.ValidationResult {
	chain := validation.NewValidatorChain().StopOnFirstError(true)
	for _, v := range validators {
		chain.Add(v)
	}
	result := chain.Validate(value)
	for i := range result.Errors {
		if result.Errors[i].Field == "" {
			result.Errors[i].Field = name
		}
	}
	return result
}
