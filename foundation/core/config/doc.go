// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for document decoding and configuration
//              file discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial configuration package
// - 2026-10-19 v0.2.0: Reduced to decoding, discovery and env lookup

/*
Package config decodes TOML, YAML and JSON documents and locates
configuration files.

Formats are detected from the file extension (.toml, .yaml/.yml, .json);
anything else is read as YAML, which is a superset of JSON. Documents decode
either into typed structs or into generic records:

	var cfg AppConfig
	err := config.DecodeFile("configs/rechenwerk.toml", config.DecodeOptions{Strict: true}, &cfg)

	record, err := config.LoadRecord("input.yaml")

Numbers in generic records keep the decoder's native type: int for YAML,
int64 for TOML and float64 for JSON. Use validation.AsNumber to read them.

Every failure is a *mdwerror.Error: NOT_FOUND for missing files, IO_ERROR for
unreadable ones, DECODE_ERROR for syntax or strict-mode field errors and
UNSUPPORTED_FORMAT for unknown format names.

Environment overrides follow the PREFIX_SECTION_KEY convention:

	value, ok := config.LookupEnv("rechenwerk", "batch.workers") // RECHENWERK_BATCH_WORKERS
*/
package config
