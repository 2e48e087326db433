// Package validationx implements concrete validators for decoded documents.
//
// Package: validationx
// Title: Extended Input Validation for Go
// Description: Presence, primitive kind, numeric range and enumeration
//              validators built on the core validation framework.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2025-01-26 v0.2.0: Refactored to use core validation framework with standardized error codes
// - 2026-10-19 v0.3.0: Numeric and list validators for formula inputs
//
// Numbers are checked strictly: int, int64 and float64 values from any decoder
// pass, while "12" or true do not. NaN and infinities fail Number with
// VALIDATION_FINITE.
//
//	result := validationx.Field("batch.workers", value, validationx.Integer, validationx.Min(1))
//
// Validate applies one chain per field of a record and reports the fields in
// sorted order:
//
//	result := validationx.Validate(record, map[string]*validationx.ValidatorChain{
//		"current":    validationx.NewValidatorChain("current").Add(validationx.Number),
//		"resistance": validationx.NewValidatorChain("resistance").Add(validationx.Positive),
//	})
package validationx
