// Package error provides structured error handling for rechenwerk.
//
// Package: error
// Title: Rechenwerk Error Handling Framework
// Description: This package implements a structured error type with error codes,
//              severities, details and stack traces. Formula failures are turned
//              into coded errors at the tool boundary (catalog, batch, CLI) so
//              they can be classified, rendered and mapped to exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Formula codes, exit codes, errors.Is matching on code
//
// Usage:
//
//	import mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
//
//	err := mdwerror.New("standard deviation must not be negative").
//		WithCode(mdwerror.CodeNotComputable).
//		WithDetail("formula", "quality.cpk").
//		WithDetail("field", "stdDev")
//
//	if mdwerror.HasCode(err, mdwerror.CodeNotComputable) {
//		os.Exit(mdwerror.ExitCode(err))
//	}
package error
