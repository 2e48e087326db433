// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     formula
// Description: Guards and decoding for discriminated-union inputs
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package formula

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/msto63/rechenwerk/foundation/core/validation"
)

// Union describes an input whose shape is selected by a string
// discriminant. Each variant lists the fields it requires in addition to
// the discriminant.
type Union struct {
	Discriminant string             `json:"discriminant" yaml:"discriminant"`
	Variants     map[string][]Field `json:"variants" yaml:"variants"`

	types map[string]reflect.Type
}

// NewUnion builds a union from one prototype struct per variant. The
// variant fields are derived with FieldsOf.
func NewUnion(discriminant string, variants map[string]interface{}) *Union {
	u := &Union{
		Discriminant: discriminant,
		Variants:     make(map[string][]Field, len(variants)),
		types:        make(map[string]reflect.Type, len(variants)),
	}
	for name, prototype := range variants {
		u.Variants[name] = FieldsOf(prototype)
		u.types[name] = reflect.TypeOf(prototype)
	}
	return u
}

// VariantNames returns the variant names in sorted order
func (u *Union) VariantNames() []string {
	names := make([]string, 0, len(u.Variants))
	for name := range u.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that v is a record naming a known variant and carrying
// that variant's required fields with the right kinds. Fields belonging to
// other variants are ignored.
func (u *Union) Validate(v interface{}) validation.ValidationResult {
	record, ok := validation.AsRecord(v)
	if !ok {
		return notRecord(v)
	}

	_, fields, result := u.variant(record)
	if !result.Valid {
		return result
	}
	return validateFields(fields, record, "", false)
}

// Check reports whether v passes Validate
func (u *Union) Check(v interface{}) bool {
	return u.Validate(v).Valid
}

func (u *Union) variant(record map[string]interface{}) (string, []Field, validation.ValidationResult) {
	tag, present := record[u.Discriminant]
	if !present || tag == nil {
		return "", nil, validation.NewValidationErrorWithField(
			validation.CodeRequired, u.Discriminant, "field is required", nil)
	}

	name, ok := tag.(string)
	if !ok {
		result := validation.NewValidationResult()
		result.AddExpected(validation.CodeType, u.Discriminant,
			fmt.Sprintf("must be a string, got %s", validation.TypeName(tag)), tag, "string")
		return "", nil, result
	}

	fields, known := u.Variants[name]
	if !known {
		result := validation.NewValidationResult()
		result.AddExpected(validation.CodeEnum, u.Discriminant,
			fmt.Sprintf("unknown variant %q", name), name, u.VariantNames())
		return "", nil, result
	}
	return name, fields, validation.NewValidationResult()
}

// Select guards v and returns the variant name together with a record that
// holds only that variant's fields.
func (u *Union) Select(formula string, v interface{}) (string, map[string]interface{}, error) {
	if result := u.Validate(v); !result.Valid {
		return "", nil, ShapeFailure(formula, result)
	}

	record, _ := validation.AsRecord(v)
	name, fields, _ := u.variant(record)
	selected := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if value, ok := record[f.Name]; ok && value != nil {
			selected[f.Name] = value
		}
	}
	return name, selected, nil
}

// DecodeUnion guards v with the union and strictly decodes the selected
// variant into its prototype type, which must implement T.
func DecodeUnion[T any](formula string, u *Union, v interface{}) (T, error) {
	var zero T

	name, record, err := u.Select(formula, v)
	if err != nil {
		return zero, err
	}

	typ, ok := u.types[name]
	if !ok {
		return zero, UnknownVariant(formula, u.Discriminant, name)
	}
	target := reflect.New(typ)
	if err := DecodeRecord(formula, record, target.Interface()); err != nil {
		return zero, err
	}

	in, ok := target.Elem().Interface().(T)
	if !ok {
		return zero, InvalidShape(formula, u.Discriminant,
			fmt.Sprintf("variant %q does not produce %v", name, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return in, nil
}
