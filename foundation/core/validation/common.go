// File: common.go
// Title: Validation Framework Utilities
// Description: Helpers for inspecting loosely typed values decoded from YAML,
//              JSON or TOML: records, numbers and number lists. Decoders hand
//              numbers over as int, int64, uint64 or float64 depending on the
//              format, so every numeric kind is accepted while strings and
//              booleans are not.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-19 v0.2.0: Record and strict number helpers for decoded documents

package validation

import (
	"fmt"
	"reflect"
	"strconv"
)

// AsRecord returns value as a string keyed map. Maps decoded with interface
// keys are accepted when every key is a string. nil maps are not records.
func AsRecord(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, v != nil
	case map[interface{}]interface{}:
		if v == nil {
			return nil, false
		}
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// AsNumber returns value as float64 if it holds a numeric kind. Strings and
// booleans are rejected.
func AsNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// AsList returns value as a slice of interface values. Typed slices are
// converted through reflection.
func AsList(value interface{}) ([]interface{}, bool) {
	if value == nil {
		return nil, false
	}
	if v, ok := value.([]interface{}); ok {
		return v, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsNumberList returns value as []float64 when every element is a number.
// When an element is not a number, ok is false and bad holds its index; bad
// is -1 when value is not a list at all.
func AsNumberList(value interface{}) (list []float64, bad int, ok bool) {
	if v, isFloats := value.([]float64); isFloats {
		return v, -1, true
	}
	items, isList := AsList(value)
	if !isList {
		return nil, -1, false
	}
	out := make([]float64, len(items))
	for i, item := range items {
		n, isNumber := AsNumber(item)
		if !isNumber {
			return nil, i, false
		}
		out[i] = n
	}
	return out, -1, true
}

// ConvertToFloat64 converts numeric types and numeric strings to float64.
// Used for configuration and command line values where strings are expected.
func ConvertToFloat64(value interface{}) (float64, error) {
	if n, ok := AsNumber(value); ok {
		return n, nil
	}
	if s, ok := value.(string); ok {
		return strconv.ParseFloat(s, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to float64", value)
}

// IsNilOrEmpty checks if a value is nil or considered empty based on its type
func IsNilOrEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// TypeName describes the primitive kind of a decoded value for messages
func TypeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if _, ok := AsNumber(value); ok {
		return "number"
	}
	if _, ok := AsRecord(value); ok {
		return "record"
	}
	if _, ok := AsList(value); ok {
		return "list"
	}
	return fmt.Sprintf("%T", value)
}
