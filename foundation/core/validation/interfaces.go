// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the validation result types shared by the input guards,
//              the numeric validators in validationx and configuration checks.
//              A ValidationResult collects every field error instead of
//              stopping at the first one, so a rejected input record can be
//              reported completely.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-19 v0.2.0: Codes for record and number checks, coded ToError

package validation

import (
	"context"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing
	CodeType     = "VALIDATION_TYPE"     // Wrong primitive type
	CodeRange    = "VALIDATION_RANGE"    // Numeric range validation
	CodeFinite   = "VALIDATION_FINITE"   // NaN or infinite number
	CodeLength   = "VALIDATION_LENGTH"   // List length validation
	CodeEnum     = "VALIDATION_ENUM"     // Value outside an allowed set
	CodeUnknown  = "VALIDATION_UNKNOWN"  // Field not part of the shape
	CodeCustom   = "VALIDATION_CUSTOM"   // Custom validation rules
)

// Validator defines the interface for all validation functions
type Validator interface {
	// Validate performs validation on a value and returns structured result
	Validate(value interface{}) ValidationResult

	// ValidateWithContext performs validation honouring cancellation
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext implements context-aware validation for ValidatorFunc
func (f ValidatorFunc) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return NewValidationError(CodeCustom, err.Error())
		}
	}
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid" yaml:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty" yaml:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// ValidationError represents a single validation error with rich context
type ValidationError struct {
	Code     string                 `json:"code" yaml:"code"`
	Field    string                 `json:"field,omitempty" yaml:"field,omitempty"`
	Message  string                 `json:"message" yaml:"message"`
	Value    interface{}            `json:"value,omitempty" yaml:"value,omitempty"`
	Context  map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
	Expected interface{}            `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{
		Valid:   true,
		Errors:  nil,
		Context: nil,
	}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Message: message,
			},
		},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Field:   field,
				Message: message,
				Value:   value,
			},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Message: message,
	})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// AddExpected adds a field error that names the expected value or type
func (r *ValidationResult) AddExpected(code, field, message string, value, expected interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:     code,
		Field:    field,
		Message:  message,
		Value:    value,
		Expected: expected,
	})
	return r
}

// Fields returns the distinct field names that failed, in order of first
// appearance
func (r ValidationResult) Fields() []string {
	seen := make(map[string]bool, len(r.Errors))
	var fields []string
	for _, e := range r.Errors {
		if e.Field != "" && !seen[e.Field] {
			seen[e.Field] = true
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ErrorCodes returns all error codes as a slice of strings
func (r ValidationResult) ErrorCodes() []string {
	codes := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a coded error. Returns nil if
// validation passed. The first field error becomes the message; the rest are
// attached as details.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").
			WithCode(mdwerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	message := first.Message
	if first.Field != "" {
		message = first.Field + ": " + first.Message
	}
	err := mdwerror.New(message).
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("validation_code", first.Code)

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	for key, value := range first.Context {
		err = err.WithDetail(key, value)
	}

	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	var parts []string
	parts = append(parts, "ValidationResult{valid: false")

	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))

		// Add first error details
		firstError := r.Errors[0]
		parts = append(parts, fmt.Sprintf("first: %s", firstError.Message))
		if firstError.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", firstError.Field))
		}
	}

	parts = append(parts, "}")
	return strings.Join(parts, ", ")
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field:%s", e.Field))
	}

	parts = append(parts, fmt.Sprintf("code:%s", e.Code))
	parts = append(parts, fmt.Sprintf("message:%s", e.Message))

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value:%v", e.Value))
	}

	if e.Expected != nil {
		parts = append(parts, fmt.Sprintf("expected:%v", e.Expected))
	}

	return fmt.Sprintf("ValidationError{%s}", strings.Join(parts, ", "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}

		// Merge context information
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}