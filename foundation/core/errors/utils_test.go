// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package errors

import (
	"errors"
	"fmt"
	"testing"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Operation() != "test_op" {
			t.Errorf("Expected Operation() 'test_op', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
		if err.Code() != mdwerror.CodeInternal {
			t.Errorf("Expected code %v, got %v", mdwerror.CodeInternal, err.Code())
		}
	})

	t.Run("code inherited from cause", func(t *testing.T) {
		cause := mdwerror.New("bad").WithCode(mdwerror.CodeNotComputable)
		err := NewErrorBuilder(ModuleBatch).Cause(cause).Build()
		if err.Code() != mdwerror.CodeNotComputable {
			t.Errorf("Expected code %v, got %v", mdwerror.CodeNotComputable, err.Code())
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if got, want := err.Error(), "testmodule.test_op failed"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}

		err = NewErrorBuilder("testmodule").Build()
		if got, want := err.Error(), "testmodule operation failed"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("severity follows code", func(t *testing.T) {
		err := NewErrorBuilder(ModuleConfig).Code(mdwerror.CodeInvalidConfig).Build()
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})
}

func TestFormulaConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *mdwerror.Error
		code    mdwerror.Code
		message string
		field   string
	}{
		{
			name:    "not computable",
			err:     NotComputable("quality.percentile", "percentile", "must be within [0, 100]"),
			code:    mdwerror.CodeNotComputable,
			message: "quality.percentile: must be within [0, 100]",
			field:   "percentile",
		},
		{
			name:    "unknown unit",
			err:     UnknownUnit("automotive.power_conversion", "fromUnit", "furlong"),
			code:    mdwerror.CodeUnknownUnit,
			message: `automotive.power_conversion: unknown unit "furlong" for fromUnit`,
			field:   "fromUnit",
		},
		{
			name:    "unknown variant",
			err:     UnknownVariant("electronics.ohms_law", "solveFor", "impedance"),
			code:    mdwerror.CodeUnknownVariant,
			message: "electronics.ohms_law: unknown solveFor impedance",
			field:   "solveFor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
			if got := tt.err.Details()["field"]; got != tt.field {
				t.Errorf("Details()[field] = %v, want %v", got, tt.field)
			}
			if ExtractModule(tt.err) != ModuleFormula {
				t.Errorf("ExtractModule() = %q, want %q", ExtractModule(tt.err), ModuleFormula)
			}
			if tt.err.Severity() != mdwerror.SeverityLow {
				t.Errorf("Severity() = %v, want low", tt.err.Severity())
			}
		})
	}
}

func TestInvalidShape(t *testing.T) {
	cause := errors.New("field resistance not found")
	err := InvalidShape("electronics.ohms_law", cause)

	if !errors.Is(err, cause) {
		t.Error("InvalidShape should wrap its cause")
	}
	if err.Code() != mdwerror.CodeInvalidShape {
		t.Errorf("Code() = %v, want %v", err.Code(), mdwerror.CodeInvalidShape)
	}
	if mdwerror.ExitCode(err) != mdwerror.ExitRejected {
		t.Errorf("ExitCode() = %d, want %d", mdwerror.ExitCode(err), mdwerror.ExitRejected)
	}
}

func TestToolConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *mdwerror.Error
		code   mdwerror.Code
		module string
	}{
		{"formula not found", FormulaNotFound("quality.nope"), mdwerror.CodeNotFound, ModuleCatalog},
		{"duplicate formula", DuplicateFormula("quality.cpk"), mdwerror.CodeDuplicateEntry, ModuleCatalog},
		{"config invalid", ConfigInvalid("batch.workers", -1, "must be positive"), mdwerror.CodeInvalidConfig, ModuleConfig},
		{"config load", ConfigLoad("x.toml", errors.New("boom")), mdwerror.CodeConfigError, ModuleConfig},
		{"decode", DecodeFailed(ModuleBatch, "batch.yaml", errors.New("boom")), mdwerror.CodeDecodeError, ModuleBatch},
		{"unsupported", UnsupportedFormat(ModuleRender, "xml"), mdwerror.CodeUnsupportedFormat, ModuleRender},
		{"io", IOFailed(ModuleCLI, "read", "in.yaml", errors.New("boom")), mdwerror.CodeIOError, ModuleCLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if !IsModuleError(tt.err, tt.module) {
				t.Errorf("IsModuleError(%q) = false, module is %q", tt.module, ExtractModule(tt.err))
			}
		})
	}
}

func TestValidationConstructors(t *testing.T) {
	err := ValidationFailed(ModuleConfig, "output.format", "xml", "must be table, json or yaml")
	if err.Code() != mdwerror.CodeValidationFailed {
		t.Errorf("Code() = %v, want %v", err.Code(), mdwerror.CodeValidationFailed)
	}

	err = InvalidInput(ModuleCLI, "set", "a=", "key=value")
	if ExtractOperation(err) != "set" {
		t.Errorf("ExtractOperation() = %q, want %q", ExtractOperation(err), "set")
	}
}

func TestExtractThroughWrapping(t *testing.T) {
	err := fmt.Errorf("request 7: %w", NotComputable("quality.cpk", "usl", "must exceed lsl"))
	if ExtractModule(err) != ModuleFormula {
		t.Errorf("ExtractModule() = %q, want %q", ExtractModule(err), ModuleFormula)
	}
	if ExtractOperation(err) != "quality.cpk" {
		t.Errorf("ExtractOperation() = %q, want %q", ExtractOperation(err), "quality.cpk")
	}
	if ExtractDetails(errors.New("plain")) != nil {
		t.Error("ExtractDetails() of a plain error should be nil")
	}
}
