// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, written as the logger name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Destination (default: stderr, so results on stdout stay parseable)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// FromConfig builds a logger configuration from the general settings of
// the tool configuration. verbose lowers the level to debug.
func FromConfig(serviceName string, general config.GeneralConfig, verbose bool) LoggerConfig {
	cfg := DefaultLoggerConfig(serviceName)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	if verbose {
		cfg.Level = "debug"
	}
	return cfg
}

// NewLogger creates a foundation logger. Unknown levels fall back to warn and
// unknown formats to console.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelWarn
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatConsole
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// Install creates a logger and makes it the package default of the
// foundation log package, so components that call log.GetDefault share it.
func Install(cfg LoggerConfig) *mdwlog.Logger {
	logger := NewLogger(cfg)
	mdwlog.SetDefault(logger)
	return logger
}

// Fields converts key-value pairs to mdwlog.Fields. Non-string keys and a
// trailing key without value are skipped.
func Fields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
