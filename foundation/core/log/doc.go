// Package log provides structured logging for rechenwerk.
//
// Package: log
// Title: Rechenwerk Structured Logging Framework
// Description: This package implements structured logging with contextual
//              fields, JSON/text/console/logfmt output, level filtering and
//              operation timers. It integrates with the core error package so
//              coded errors are logged at a level matching their severity.
//              Formula functions never log; the catalog, batch runner and
//              command line tools do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Immutable clones with shared write lock, formula fields
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "rechenwerk",
//	})
//
//	reqLog := logger.WithRequestID(id).WithFormula("quality.cpk")
//	timer := reqLog.StartTimer("evaluate")
//	result, err := f.Evaluate(input)
//	if err != nil {
//		timer.StopWithError(err)
//	} else {
//		timer.Stop()
//	}
package log
