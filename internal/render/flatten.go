// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     render
// Description: Flattening of result values into key/value rows
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
)

// row is one key/value line of the table view
type row struct {
	Key   string
	Value string
}

// flatten turns a result value into rows keyed by json field path, e.g.
// "bins[0].count". Nil pointers (outputs that were not requested) are
// skipped; lists of scalars stay on one row.
func flatten(value interface{}, precision int) []row {
	var rows []row
	walk("", reflect.ValueOf(value), precision, &rows)
	return rows
}

func walk(prefix string, v reflect.Value, precision int, rows *[]row) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := jsonName(sf)
			if name == "-" {
				continue
			}
			walk(joinKey(prefix, name), v.Field(i), precision, rows)
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			walk(joinKey(prefix, fmt.Sprint(k.Interface())), v.MapIndex(k), precision, rows)
		}
	case reflect.Slice, reflect.Array:
		if values, ok := scalars(v, precision); ok {
			*rows = append(*rows, row{Key: keyOrValue(prefix), Value: "[" + strings.Join(values, ", ") + "]"})
			return
		}
		for i := 0; i < v.Len(); i++ {
			walk(fmt.Sprintf("%s[%d]", prefix, i), v.Index(i), precision, rows)
		}
	default:
		*rows = append(*rows, row{Key: keyOrValue(prefix), Value: formatScalar(v, precision)})
	}
}

// scalars formats every element of a list of scalars. ok is false when an
// element is a record or a list.
func scalars(v reflect.Value, precision int) ([]string, bool) {
	values := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		switch elem.Kind() {
		case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Ptr, reflect.Interface:
			return nil, false
		}
		values = append(values, formatScalar(elem, precision))
	}
	return values, true
}

func formatScalar(v reflect.Value, precision int) string {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return FormatFloat(v.Float(), precision)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprint(v.Interface())
	}
}

// FormatFloat prints f in plain decimal notation. A positive precision caps
// the number of decimals; 0 prints the value as computed.
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if precision > 0 {
		f = mathx.RoundTo(f, precision)
	}
	if f == 0 {
		f = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func jsonName(sf reflect.StructField) string {
	name := strings.Split(sf.Tag.Get("json"), ",")[0]
	if name == "" {
		return sf.Name
	}
	return name
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func keyOrValue(key string) string {
	if key == "" {
		return "value"
	}
	return key
}

// generic converts v into maps, lists and scalars keyed by json field
// names. Nil values are dropped and integral floats become integers, so
// the TOML encoder sees the same shape the JSON encoder writes.
func generic(v interface{}) (interface{}, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, err
	}
	return prune(out), nil
}

func prune(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			if val == nil {
				delete(t, k)
				continue
			}
			t[k] = prune(val)
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = prune(t[i])
		}
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}
