// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     formula
// Description: Typed failure values returned by formula functions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package formula

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	"github.com/msto63/rechenwerk/foundation/core/validation"
)

// Sentinels matched with errors.Is against a *Failure
var (
	ErrNotComputable  = errors.New("not computable")
	ErrUnknownUnit    = errors.New("unknown unit")
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidShape   = errors.New("invalid input shape")
)

// Failure explains why a formula produced no result. It carries no stack or
// timestamp so that equal inputs yield equal failures.
type Failure struct {
	Formula string        `json:"formula" yaml:"formula"`
	Code    mdwerror.Code `json:"code" yaml:"code"`
	Reason  string        `json:"reason" yaml:"reason"`
	Field   string        `json:"field,omitempty" yaml:"field,omitempty"`
	Value   string        `json:"value,omitempty" yaml:"value,omitempty"`
}

// Error implements the error interface
func (f *Failure) Error() string {
	return f.Formula + ": " + f.Reason
}

// Unwrap returns the sentinel for the failure code
func (f *Failure) Unwrap() error {
	switch f.Code {
	case mdwerror.CodeUnknownUnit:
		return ErrUnknownUnit
	case mdwerror.CodeUnknownVariant:
		return ErrUnknownVariant
	case mdwerror.CodeInvalidShape:
		return ErrInvalidShape
	default:
		return ErrNotComputable
	}
}

// NotComputable reports well formed input without a meaningful result
func NotComputable(formula, field, format string, args ...interface{}) *Failure {
	return &Failure{
		Formula: formula,
		Code:    mdwerror.CodeNotComputable,
		Reason:  fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// UnknownUnit reports a unit or material tag outside the supported set
func UnknownUnit(formula, field, unit string) *Failure {
	return &Failure{
		Formula: formula,
		Code:    mdwerror.CodeUnknownUnit,
		Reason:  fmt.Sprintf("unknown %s %q", field, unit),
		Field:   field,
		Value:   unit,
	}
}

// UnknownVariant reports a union value no branch handles. A nil value is
// reported as <nil>.
func UnknownVariant(formula, field string, value interface{}) *Failure {
	described := describe(value)
	return &Failure{
		Formula: formula,
		Code:    mdwerror.CodeUnknownVariant,
		Reason:  fmt.Sprintf("unknown %s %v", field, described),
		Field:   field,
		Value:   described,
	}
}

// InvalidShape reports a raw input that failed guarding or decoding
func InvalidShape(formula, field, reason string) *Failure {
	return &Failure{
		Formula: formula,
		Code:    mdwerror.CodeInvalidShape,
		Reason:  reason,
		Field:   field,
	}
}

// ShapeFailure converts a failed validation into a failure. The first error
// decides the field and reason; an unknown discriminant value becomes an
// unknown variant.
func ShapeFailure(formula string, result validation.ValidationResult) *Failure {
	first := result.FirstError()
	if first == nil {
		return InvalidShape(formula, "", "input rejected")
	}
	if first.Code == validation.CodeEnum {
		return UnknownVariant(formula, first.Field, first.Value)
	}
	reason := first.Message
	if first.Field != "" {
		reason = first.Field + ": " + first.Message
	}
	if n := len(result.Errors); n > 1 {
		reason = fmt.Sprintf("%s (and %d more)", reason, n-1)
	}
	return InvalidShape(formula, first.Field, reason)
}

// RequireFinite returns a not computable failure for field when any value is
// NaN or infinite, and nil otherwise.
func RequireFinite(formula, field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NotComputable(formula, field, "%s must be a finite number", fieldLabel(field))
		}
	}
	return nil
}

// Finite passes result through when every float in it is finite. A NaN or
// infinite value, e.g. from overflow on extreme input, yields a not
// computable failure naming the first such field.
func Finite[T any](formula string, result T) (T, error) {
	if field, ok := finite(reflect.ValueOf(result), ""); !ok {
		var zero T
		return zero, NotComputable(formula, field, "%s is not a finite number", fieldLabel(field))
	}
	return result, nil
}

func finite(v reflect.Value, path string) (string, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return path, !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "", true
		}
		return finite(v.Elem(), path)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name, _ := parseTag(sf)
			if path != "" {
				name = path + "." + name
			}
			if field, ok := finite(v.Field(i), name); !ok {
				return field, false
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if field, ok := finite(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); !ok {
				return field, false
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if field, ok := finite(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key())); !ok {
				return field, false
			}
		}
	}
	return "", true
}

func fieldLabel(field string) string {
	if field == "" {
		return "input"
	}
	return field
}

// AsFailure extracts a *Failure from an error chain
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func describe(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	case bool, int, int64, float64:
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("%T", v)
	}
}
