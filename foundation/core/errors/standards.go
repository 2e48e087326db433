// File: standards.go
// Title: Error Standards for Rechenwerk
// Description: Module identifiers and standard constructors for the failures
//              rechenwerk reports at its tool boundary: formulas that are not
//              computable for an input, unknown units and variants, malformed
//              input records, missing formulas and configuration problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-19 v0.2.0: Formula failure constructors replace utility module codes

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx       = "mathx"
	ModuleValidation  = "validation"
	ModuleValidationx = "validationx"
	ModuleFormula     = "formula"
	ModuleCatalog     = "catalog"
	ModuleBatch       = "batch"
	ModuleConfig      = "config"
	ModuleRender      = "render"
	ModuleCLI         = "cli"
)

// NotComputable reports input that is well formed but has no meaningful
// result, such as an empty series or a zero denominator.
func NotComputable(formula, field, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleFormula).
		Operation(formula).
		Messagef("%s: %s", formula, reason).
		Code(mdwerror.CodeNotComputable).
		Detail("formula", formula).
		Detail("field", field).
		Detail("reason", reason).
		Build()
}

// UnknownUnit reports a unit or material tag outside the supported set.
func UnknownUnit(formula, field, unit string) *mdwerror.Error {
	return NewErrorBuilder(ModuleFormula).
		Operation(formula).
		Messagef("%s: unknown unit %q for %s", formula, unit, field).
		Code(mdwerror.CodeUnknownUnit).
		Detail("formula", formula).
		Detail("field", field).
		Detail("unit", unit).
		Build()
}

// UnknownVariant reports a discriminant value no variant handles.
func UnknownVariant(formula, field string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleFormula).
		Operation(formula).
		Messagef("%s: unknown %s %v", formula, field, value).
		Code(mdwerror.CodeUnknownVariant).
		Detail("formula", formula).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// InvalidShape reports a raw input record that could not be decoded into the
// formula's input type.
func InvalidShape(formula string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFormula).
		Operation(formula).
		Messagef("%s: invalid input", formula).
		Cause(cause).
		Code(mdwerror.CodeInvalidShape).
		Detail("formula", formula).
		Build()
}

// FormulaNotFound reports a lookup for an id that is not registered.
func FormulaNotFound(id string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCatalog).
		Operation("lookup").
		Messagef("formula %q not found", id).
		Code(mdwerror.CodeNotFound).
		Detail("formula", id).
		Build()
}

// DuplicateFormula reports an id registered by more than one domain.
func DuplicateFormula(id string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCatalog).
		Operation("register").
		Messagef("formula %q registered twice", id).
		Code(mdwerror.CodeDuplicateEntry).
		Severity(mdwerror.SeverityCritical).
		Detail("formula", id).
		Build()
}

// ConfigInvalid reports a configuration value that failed validation.
func ConfigInvalid(field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration %s=%v: %s", field, value, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// ConfigLoad reports a configuration file that could not be read or parsed.
func ConfigLoad(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("load configuration %s", path).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Detail("path", path).
		Build()
}

// DecodeFailed reports a document that could not be parsed.
func DecodeFailed(module, source string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("decode").
		Messagef("decode %s", source).
		Cause(cause).
		Code(mdwerror.CodeDecodeError).
		Detail("source", source).
		Build()
}

// UnsupportedFormat reports a file extension or output format that has no
// codec.
func UnsupportedFormat(module, format string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("format").
		Message(fmt.Sprintf("unsupported format %q", format)).
		Code(mdwerror.CodeUnsupportedFormat).
		Detail("format", format).
		Build()
}

// IOFailed reports a file operation failure.
func IOFailed(module, operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s %s", operation, path).
		Cause(cause).
		Code(mdwerror.CodeIOError).
		Detail("path", path).
		Build()
}
