// File: config.go
// Title: Document Format Detection and Decoding
// Description: Detects TOML, YAML and JSON documents by file extension and
//              decodes them into typed structs or generic records. Used for
//              the application configuration as well as for formula input
//              and batch files, so all three share one set of error codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed decoding, JSON, strict mode; key/value store and watcher removed

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// Format represents a document format
type Format int

const (
	// FormatAuto auto-detects format from file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML

	// FormatJSON represents JSON format
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name such as "yaml" or ".toml"
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, mdwerror.New(fmt.Sprintf("unsupported format: %s", name)).
			WithCode(mdwerror.CodeUnsupportedFormat).
			WithOperation("config.ParseFormat").
			WithDetail("format", name)
	}
}

// DetectFormat determines the document format from the file extension.
// Unknown extensions fall back to YAML, which also accepts JSON documents.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// DecodeOptions controls how a document is decoded
type DecodeOptions struct {
	Format Format // Document format (default: auto-detect from path, else YAML)
	Strict bool   // Reject keys that have no matching struct field
}

// Decode decodes content into target, which must be a pointer
func Decode(content []byte, format Format, target interface{}) error {
	return DecodeWithOptions(content, DecodeOptions{Format: format}, target)
}

// DecodeWithOptions decodes content into target using the given options
func DecodeWithOptions(content []byte, options DecodeOptions, target interface{}) error {
	format := options.Format
	if format == FormatAuto {
		format = FormatYAML
	}

	var err error
	switch format {
	case FormatTOML:
		var meta toml.MetaData
		meta, err = toml.Decode(string(content), target)
		if err == nil && options.Strict {
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown field %q", undecoded[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(options.Strict)
		err = dec.Decode(target)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		if options.Strict {
			dec.DisallowUnknownFields()
		}
		err = dec.Decode(target)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeUnsupportedFormat).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}

	if err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("%s parse error", strings.ToUpper(format.String()))).
			WithCode(mdwerror.CodeDecodeError).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}
	return nil
}

// DecodeFile reads and decodes a file into target. The format is detected
// from the extension unless options.Format is set.
func DecodeFile(filePath string, options DecodeOptions, target interface{}) error {
	if strings.TrimSpace(filePath) == "" {
		return mdwerror.New("file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.DecodeFile")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeIOError
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read file").
			WithCode(code).
			WithOperation("config.DecodeFile").
			WithDetail("filePath", filePath)
	}

	if options.Format == FormatAuto {
		options.Format = DetectFormat(filePath)
	}
	if err := DecodeWithOptions(content, options, target); err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("failed to parse %s", filePath)).
			WithDetail("filePath", filePath)
	}
	return nil
}

// DecodeRecord decodes content into a generic record. An empty document
// yields an empty record.
func DecodeRecord(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := Decode(content, format, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// LoadRecord reads a file into a generic record
func LoadRecord(filePath string) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := DecodeFile(filePath, DecodeOptions{}, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// SetNested sets a value in a record using dot notation, creating
// intermediate records as needed
func SetNested(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}
