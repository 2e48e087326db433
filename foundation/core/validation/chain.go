// File: chain.go
// Title: Validator Chain Implementation
// Description: Provides composable validator chains that combine multiple
//              validation rules into a single validator, plus conditional
//              validators for optional fields that are only checked when
//              present.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-19 v0.2.0: Cancellation between validators, dropped parallel validator

package validation

import (
	"context"
	"fmt"
)

// ValidatorChain represents a chain of validators executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &ValidatorChain{name: chainName}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes all validators, stopping early if ctx is done
func (c *ValidatorChain) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))

	for _, validator := range c.validators {
		if err := ctx.Err(); err != nil {
			results = append(results, NewValidationError(CodeCustom, err.Error()))
			break
		}

		result := validator.ValidateWithContext(ctx, value)
		results = append(results, result)

		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(results...)
	if c.name != "" {
		combined.WithContext("validatorChain", c.name)
	}
	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// ConditionalValidator runs a validator only when its condition holds
type ConditionalValidator struct {
	condition func(interface{}) bool
	validator Validator
}

// NewConditionalValidator creates a validator that only executes if the
// condition is true
func NewConditionalValidator(condition func(interface{}) bool, validator Validator) *ConditionalValidator {
	return &ConditionalValidator{condition: condition, validator: validator}
}

// When is shorthand for NewConditionalValidator with a ValidatorFunc
func When(condition func(interface{}) bool, fn ValidatorFunc) *ConditionalValidator {
	return NewConditionalValidator(condition, fn)
}

// Validate executes the validator only if the condition is met
func (c *ConditionalValidator) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes conditional validation with context
func (c *ConditionalValidator) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if !c.condition(value) {
		return NewValidationResult()
	}
	return c.validator.ValidateWithContext(ctx, value)
}
