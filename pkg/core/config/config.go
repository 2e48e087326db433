// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     config
// Description: Typed tool configuration with defaults and env overrides
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"os"
	"runtime"
	"strings"
	"time"

	fconfig "github.com/msto63/rechenwerk/foundation/core/config"
	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/foundation/utils/validationx"
)

// AppName is used for config discovery and the environment prefix
const AppName = "rechenwerk"

// DefaultPath is the configuration file read when no path is given
const DefaultPath = "./configs/rechenwerk.toml"

// PathEnv names the environment variable that selects a configuration file
const PathEnv = "RECHENWERK_CONFIG"

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTOML  = "toml"
)

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general" json:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output" json:"output"`
	Batch   BatchConfig   `toml:"batch" yaml:"batch" json:"batch"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-" json:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format" json:"log_format"`
}

// OutputConfig controls how results are rendered. PrecisionHint caps the
// decimals shown in the table view; 0 shows values as computed.
type OutputConfig struct {
	Format        string `toml:"format" yaml:"format" json:"format"`
	Color         *bool  `toml:"color" yaml:"color" json:"color"`
	PrecisionHint int    `toml:"precision_hint" yaml:"precision_hint" json:"precision_hint"`
}

// BatchConfig controls the batch evaluator
type BatchConfig struct {
	Workers   int      `toml:"workers" yaml:"workers" json:"workers"`
	FailFast  bool     `toml:"fail_fast" yaml:"fail_fast" json:"fail_fast"`
	Timeout   Duration `toml:"timeout" yaml:"timeout" json:"timeout"`
	CacheSize int      `toml:"cache_size" yaml:"cache_size" json:"cache_size"`
}

// Duration wraps time.Duration for TOML, YAML and JSON parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ColorEnabled reports whether styled output is wanted. Unset means yes.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. An empty path uses RECHENWERK_CONFIG
// or searches the default locations; a missing default file yields the
// defaults, a missing explicit file is an error. Environment overrides are
// applied after the file and the result is validated.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		explicit = false
		path = discover()
	}
	path = os.ExpandEnv(path)

	cfg := &Config{}
	if path != "" {
		err := fconfig.DecodeFile(path, fconfig.DecodeOptions{Strict: true}, cfg)
		switch {
		case err == nil:
			cfg.Path = path
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return nil, mdwerrors.ConfigLoad(path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func discover() string {
	if found, err := fconfig.FindConfigFile(fconfig.DefaultDiscoveryOptions(AppName)); err == nil {
		return found
	}
	return DefaultPath
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	if c.Output.Format == "" {
		c.Output.Format = OutputTable
	}

	if c.Batch.Workers == 0 {
		c.Batch.Workers = runtime.NumCPU()
	}
}

// applyEnv applies RECHENWERK_* overrides
func (c *Config) applyEnv() error {
	if v, ok := fconfig.LookupEnv(AppName, "log_level"); ok {
		c.General.LogLevel = v
	}
	if v, ok := fconfig.LookupEnv(AppName, "log_format"); ok {
		c.General.LogFormat = v
	}
	if v, ok := fconfig.LookupEnv(AppName, "output"); ok {
		c.Output.Format = v
	}
	if v, ok := fconfig.LookupEnv(AppName, "workers"); ok {
		n, isInt := fconfig.ParseEnvValue(v).(int)
		if !isInt {
			return mdwerrors.ConfigInvalid(fconfig.EnvKey(AppName, "workers"), v, "must be a whole number")
		}
		c.Batch.Workers = n
	}
	if v, ok := fconfig.LookupEnv(AppName, "fail_fast"); ok {
		b, isBool := fconfig.ParseEnvValue(strings.ToLower(v)).(bool)
		if !isBool {
			return mdwerrors.ConfigInvalid(fconfig.EnvKey(AppName, "fail_fast"), v, "must be true or false")
		}
		c.Batch.FailFast = b
	}
	return nil
}

var rules = map[string]*validationx.ValidatorChain{
	"general.log_level": validationx.NewValidatorChain("general.log_level").
		Add(validationx.OneOf("trace", "debug", "info", "warn", "warning", "error", "fatal")),
	"general.log_format": validationx.NewValidatorChain("general.log_format").
		Add(validationx.OneOf("json", "text", "console", "logfmt")),
	"output.format": validationx.NewValidatorChain("output.format").
		Add(validationx.OneOf(OutputTable, OutputJSON, OutputYAML, OutputTOML)),
	"output.precision_hint": validationx.NewValidatorChain("output.precision_hint").
		StopOnFirstError(true).Add(validationx.Integer).Add(validationx.Range(0, 12)),
	"batch.workers": validationx.NewValidatorChain("batch.workers").
		StopOnFirstError(true).Add(validationx.Integer).Add(validationx.Min(1)),
	"batch.timeout": validationx.NewValidatorChain("batch.timeout").
		Add(validationx.NonNegative),
	"batch.cache_size": validationx.NewValidatorChain("batch.cache_size").
		StopOnFirstError(true).Add(validationx.Integer).Add(validationx.NonNegative),
}

// Validate checks every setting and reports the first invalid one as an
// INVALID_CONFIG error
func (c *Config) Validate() error {
	data := map[string]interface{}{
		"general.log_level":     c.General.LogLevel,
		"general.log_format":    c.General.LogFormat,
		"output.format":         c.Output.Format,
		"output.precision_hint": c.Output.PrecisionHint,
		"batch.workers":         c.Batch.Workers,
		"batch.timeout":         c.Batch.Timeout.Seconds(),
		"batch.cache_size":      c.Batch.CacheSize,
	}

	result := validationx.Validate(data, rules)
	if first := result.FirstError(); first != nil {
		return mdwerrors.ConfigInvalid(first.Field, data[first.Field], first.Message)
	}
	return nil
}

// IsInvalid reports whether err was returned for a configuration value
func IsInvalid(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidConfig)
}
