// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for a configuration file and
//              resolves environment variable overrides for individual keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with discovery and env loading
// - 2026-10-19 v0.2.0: Discovery returns paths only, per-key env lookup

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions returns the search options for an application name
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", name))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", ListPossibleConfigFiles(options))
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// EnvKey converts a config key to environment variable format:
// batch.workers with prefix "rechenwerk" becomes RECHENWERK_BATCH_WORKERS
func EnvKey(prefix, key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix != "" {
		envKey = strings.ToUpper(prefix) + "_" + envKey
	}
	return envKey
}

// LookupEnv returns the trimmed environment value for a key. Empty values
// count as unset.
func LookupEnv(prefix, key string) (string, bool) {
	value, ok := os.LookupEnv(EnvKey(prefix, key))
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// ParseEnvValue parses an environment value as bool, int or float, falling
// back to the raw string
func ParseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}
	return value
}
