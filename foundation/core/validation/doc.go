// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Package documentation for the validation framework used by
//              the formula input guards, the numeric validators and the
//              configuration checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-19 v0.2.0: Decoded document helpers, parallel validator removed

/*
Package validation provides the validation framework infrastructure for rechenwerk.

The package contains no domain rules. It defines the result types that
validators report into, the standard codes, and the orchestration helpers
that combine validators:

  - Validator and ValidatorFunc
  - ValidationResult and ValidationError, which collect every problem found
  - ValidatorChain for running validators in sequence
  - ConditionalValidator for optional fields that are checked only when set
  - AsRecord, AsNumber, AsList and AsNumberList for values decoded from YAML,
    JSON or TOML documents

# Results

A ValidationResult is a value. Validators build it up with AddError,
AddFieldError and AddExpected and callers inspect Valid, Errors or FirstError:

	result := validation.NewValidationResult()
	if _, ok := validation.AsNumber(record["voltage"]); !ok {
		result.AddFieldError(validation.CodeType, "voltage", "must be a number", record["voltage"])
	}
	if !result.Valid {
		return result.ToError()
	}

ToError converts a failed result into a *mdwerror.Error with code
VALIDATION_FAILED. The first error provides the message; the field, offending
value and expected value are attached as details.

# Chains

	chain := validation.NewValidatorChain("batch.workers").
		AddFunc(isNumber).
		AddFunc(isPositive).
		StopOnFirstError(true)
	result := chain.Validate(value)

Chains collect all errors unless StopOnFirstError is set, and stop early when
the context passed to ValidateWithContext is cancelled.

# Decoded documents

Decoders disagree on numeric types: yaml.v3 yields int for whole numbers,
encoding/json yields float64 and BurntSushi/toml yields int64. AsNumber accepts
all numeric kinds and rejects strings and booleans, so "12" is never mistaken
for a number. AsRecord accepts both map[string]interface{} and the
map[interface{}]interface{} produced by some YAML decoders.

Concrete validators for numbers and enumerations live in utils/validationx.
*/
package validation
