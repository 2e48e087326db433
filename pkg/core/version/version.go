// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for rechenwerk components
const (
	// Library version, also reported by the command line tool
	Library = "1.0.0"

	// Component versions
	Catalog = "1.0.0"
	Batch   = "1.0.0"
	CLI     = "1.0.0"
	TUI     = "1.0.0"
)

// Build metadata, set with -ldflags "-X .../version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Library,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one line summary
func (i Info) String() string {
	return fmt.Sprintf("rechenwerk %s (commit %s, built %s, %s %s)", i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "catalog":
		return Catalog
	case "batch":
		return Batch
	case "cli":
		return CLI
	case "tui":
		return TUI
	default:
		return Library
	}
}
