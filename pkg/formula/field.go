// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     formula
// Description: Input field descriptors derived from formula input structs
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package formula

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/msto63/rechenwerk/foundation/core/validation"
	"github.com/msto63/rechenwerk/foundation/utils/validationx"
)

// Kind is the primitive shape of an input field
type Kind int

const (
	Number Kind = iota
	String
	NumberList
	RecordList
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case NumberList:
		return "number_list"
	case RecordList:
		return "record_list"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Validator returns the validator that checks a raw value against the kind
func (k Kind) Validator() validation.Validator {
	switch k {
	case String:
		return validationx.String
	case NumberList:
		return validationx.NumberList
	case RecordList:
		return validationx.RecordList
	default:
		return validationx.Number
	}
}

// Field describes one input field. Fields of a record list describe the
// records inside it.
type Field struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     Kind    `json:"kind" yaml:"kind"`
	Optional bool    `json:"optional,omitempty" yaml:"optional,omitempty"`
	Fields   []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// String returns "name kind", marking optional fields with a question mark
func (f Field) String() string {
	name := f.Name
	if f.Optional {
		name += "?"
	}
	if len(f.Fields) == 0 {
		return name + " " + f.Kind.String()
	}
	nested := make([]string, len(f.Fields))
	for i, sub := range f.Fields {
		nested[i] = sub.String()
	}
	return fmt.Sprintf("%s %s{%s}", name, f.Kind, strings.Join(nested, ", "))
}

var floatSliceType = reflect.TypeOf([]float64(nil))

// FieldsOf derives the input fields of a struct value from its yaml tags.
// Pointer fields and fields tagged omitempty are optional. It panics on a
// field type that has no Kind, since input types are fixed at compile time.
func FieldsOf(prototype interface{}) []Field {
	t := reflect.TypeOf(prototype)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("formula: input prototype must be a struct, got %v", t))
	}
	return fieldsOfType(t)
}

func fieldsOfType(t reflect.Type) []Field {
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, omitempty := parseTag(sf)
		if name == "-" {
			continue
		}

		field := Field{Name: name, Optional: omitempty}
		ft := sf.Type
		if ft.Kind() == reflect.Ptr {
			field.Optional = true
			ft = ft.Elem()
		}

		switch {
		case ft == floatSliceType:
			field.Kind = NumberList
		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Struct:
			field.Kind = RecordList
			field.Fields = fieldsOfType(ft.Elem())
		case ft.Kind() == reflect.String:
			field.Kind = String
		case isNumeric(ft.Kind()):
			field.Kind = Number
		default:
			panic(fmt.Sprintf("formula: field %s.%s has unsupported type %s", t.Name(), sf.Name, sf.Type))
		}
		fields = append(fields, field)
	}
	return fields
}

func parseTag(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("yaml")
	if tag == "" {
		return sf.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = sf.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			return name, true
		}
	}
	return name, false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// ValidateRecord checks a raw value against a field list. The value must be
// a record; required fields must be present and every present field must
// have its declared kind. Keys outside the field list are reported as
// unknown.
func ValidateRecord(fields []Field, value interface{}) validation.ValidationResult {
	record, ok := validation.AsRecord(value)
	if !ok {
		return notRecord(value)
	}
	return validateFields(fields, record, "", true)
}

func notRecord(value interface{}) validation.ValidationResult {
	result := validation.NewValidationResult()
	result.AddExpected(validation.CodeType, "",
		fmt.Sprintf("input must be a record, got %s", validation.TypeName(value)),
		value, "record")
	return result
}

func validateFields(fields []Field, record map[string]interface{}, prefix string, strict bool) validation.ValidationResult {
	results := make([]validation.ValidationResult, 0, len(fields)+1)
	known := make(map[string]bool, len(fields))

	for _, f := range fields {
		known[f.Name] = true
		name := prefix + f.Name
		value, present := record[f.Name]
		if !present || value == nil {
			if !f.Optional {
				results = append(results, validation.NewValidationErrorWithField(
					validation.CodeRequired, name, "field is required", nil))
			}
			continue
		}

		fieldResult := validationx.Field(name, value, f.Kind.Validator())
		results = append(results, fieldResult)
		if !fieldResult.Valid || f.Kind != RecordList || len(f.Fields) == 0 {
			continue
		}

		items, _ := validation.AsList(value)
		for i, item := range items {
			element, _ := validation.AsRecord(item)
			results = append(results, validateFields(f.Fields, element,
				fmt.Sprintf("%s[%d].", name, i), strict))
		}
	}

	if strict {
		var unknown []string
		for key := range record {
			if !known[key] {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			results = append(results, validation.NewValidationErrorWithField(
				validation.CodeUnknown, prefix+key, "unknown field", record[key]))
		}
	}

	return validation.Combine(results...)
}

// Template returns a record with a zero value for every field, suitable as
// a starting point for editing an input by hand.
func Template(fields []Field) map[string]interface{} {
	record := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		switch f.Kind {
		case String:
			record[f.Name] = ""
		case NumberList:
			record[f.Name] = []float64{}
		case RecordList:
			record[f.Name] = []interface{}{Template(f.Fields)}
		default:
			record[f.Name] = 0
		}
	}
	return record
}
