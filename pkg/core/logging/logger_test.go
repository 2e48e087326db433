package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mdwlog "github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("my-service")

	if cfg.ServiceName != "my-service" {
		t.Errorf("ServiceName = %v, want my-service", cfg.ServiceName)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %v, want console", cfg.Format)
	}
}

func TestFromConfig(t *testing.T) {
	general := config.GeneralConfig{LogLevel: "error", LogFormat: "json"}

	cfg := FromConfig("rechenwerk", general, false)
	if cfg.Level != "error" || cfg.Format != "json" {
		t.Errorf("FromConfig() = %+v", cfg)
	}

	verbose := FromConfig("rechenwerk", general, true)
	if verbose.Level != "debug" {
		t.Errorf("FromConfig(verbose).Level = %v, want debug", verbose.Level)
	}

	empty := FromConfig("rechenwerk", config.GeneralConfig{}, false)
	if empty.Level != "warn" || empty.Format != "console" {
		t.Errorf("FromConfig(empty) = %+v", empty)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "test-service",
		Level:       "debug",
		Format:      "json",
		Output:      &buf,
	})

	logger.Debug("formula evaluated", Fields("formula", "quality.cpk"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["logger"] != "test-service" {
		t.Errorf("logger = %v, want test-service", entry["logger"])
	}
	if entry["formula"] != "quality.cpk" {
		t.Errorf("formula = %v, want quality.cpk", entry["formula"])
	}
}

func TestNewLoggerFallbacks(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "xml", Output: &buf})

	if logger.GetLevel() != mdwlog.LevelWarn {
		t.Errorf("GetLevel() = %v, want warn", logger.GetLevel())
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info written at warn level: %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn not written: %q", buf.String())
	}
}

func TestInstall(t *testing.T) {
	previous := mdwlog.GetDefault()
	defer mdwlog.SetDefault(previous)

	logger := Install(LoggerConfig{Level: "error", Output: &bytes.Buffer{}})
	if mdwlog.GetDefault() != logger {
		t.Error("Install() did not replace the default logger")
	}
}

func TestFields(t *testing.T) {
	if fields := Fields(); fields != nil {
		t.Error("Fields() with no args should return nil")
	}

	fields := Fields("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	if fields := Fields(123, "value"); len(fields) != 0 {
		t.Errorf("non-string key should be skipped, got %v fields", len(fields))
	}
	if fields := Fields("key1", "value1", "orphan"); len(fields) != 1 {
		t.Errorf("orphan key should be skipped, got %v fields", len(fields))
	}
}
