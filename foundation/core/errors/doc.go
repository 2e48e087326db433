// Package errors provides the standard error constructors used across
// rechenwerk modules.
//
// Package: errors
// Title: Standard Error Handling API for Rechenwerk
// Description: This package builds coded errors from the core error package
//              with module and operation context. Formula failures are turned
//              into NotComputable, UnknownUnit, UnknownVariant and InvalidShape
//              errors at the tool boundary; configuration, decoding and file
//              problems have their own constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Formula failure constructors
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleBatch).
//		Operation("run").
//		Message("batch cancelled").
//		Code(mdwerror.CodeCancelled).
//		Detail("pending", 12).
//		Build()
//
//	err = errors.NotComputable("quality.percentile", "percentile", "must be within [0, 100]")
//	errors.ExtractModule(err) // "formula"
package errors
