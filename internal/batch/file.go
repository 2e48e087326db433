// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     batch
// Description: Batch file decoding (YAML, JSON, TOML)
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package batch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	fconfig "github.com/msto63/rechenwerk/foundation/core/config"
	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
)

// File is the document layout of a batch file:
//
//	requests:
//	  - id: first
//	    formula: quality.cpk
//	    input: {usl: 10, lsl: 4, mean: 7, stdDev: 1}
//
// TOML files use [[requests]] tables with an [requests.input] table.
type File struct {
	Requests []Request `json:"requests" yaml:"requests" toml:"requests"`
}

// LoadFile reads a batch file. The format follows the file extension.
func LoadFile(path string) ([]Request, error) {
	var file File
	if err := fconfig.DecodeFile(path, fconfig.DecodeOptions{Strict: true}, &file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, mdwerrors.IOFailed(mdwerrors.ModuleBatch, "read", path, err)
		}
		return nil, mdwerrors.DecodeFailed(mdwerrors.ModuleBatch, path, err)
	}
	if err := check(file.Requests); err != nil {
		return nil, err
	}
	return file.Requests, nil
}

// Decode parses batch file content in the given format
func Decode(content []byte, format fconfig.Format) ([]Request, error) {
	var file File
	if err := fconfig.DecodeWithOptions(content, fconfig.DecodeOptions{Format: format, Strict: true}, &file); err != nil {
		return nil, mdwerrors.DecodeFailed(mdwerrors.ModuleBatch, format.String()+" document", err)
	}
	if err := check(file.Requests); err != nil {
		return nil, err
	}
	return file.Requests, nil
}

// check rejects requests without a formula and repeated explicit ids
func check(requests []Request) error {
	seen := make(map[string]int, len(requests))
	for i, req := range requests {
		if strings.TrimSpace(req.Formula) == "" {
			return mdwerrors.ValidationFailed(mdwerrors.ModuleBatch,
				fmt.Sprintf("requests[%d].formula", i), req.Formula, "is required")
		}
		if req.ID == "" {
			continue
		}
		if first, dup := seen[req.ID]; dup {
			return mdwerrors.NewErrorBuilder(mdwerrors.ModuleBatch).
				Operation("decode").
				Messagef("request id %q used by requests[%d] and requests[%d]", req.ID, first, i).
				Code(mdwerror.CodeDuplicateEntry).
				Detail("id", req.ID).
				Build()
		}
		seen[req.ID] = i
	}
	return nil
}
