package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

const testConfig = `[general]
log_level = "error"

[output]
format = "table"
color = false

[batch]
workers = 2
`

const testBatch = `requests:
  - id: first
    formula: quality.cpk
    input: {usl: 10, lsl: 4, mean: 7, stdDev: 1}
  - id: short
    formula: quality.moving_average
    input: {data: [1, 2, 3], window: 5, method: sma}
`

type result struct {
	code   int
	stdout string
	stderr string
}

// execute runs the command line against an isolated configuration
func execute(t *testing.T, args ...string) result {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, name := range []string{"RECHENWERK_CONFIG", "RECHENWERK_LOG_LEVEL", "RECHENWERK_LOG_FORMAT",
		"RECHENWERK_OUTPUT", "RECHENWERK_WORKERS", "RECHENWERK_FAIL_FAST"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cfgPath := filepath.Join(dir, "rechenwerk.toml")
	if err := os.WriteFile(cfgPath, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := run(root, append([]string{"--config", cfgPath}, args...), &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestList(t *testing.T) {
	res := execute(t, "list", "--domain", "quality")
	if res.code != mdwerror.ExitOK {
		t.Fatalf("code = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "quality.cpk") {
		t.Errorf("listing misses quality.cpk:\n%s", res.stdout)
	}
	if strings.Contains(res.stdout, "electronics.") {
		t.Errorf("listing not filtered by domain:\n%s", res.stdout)
	}

	res = execute(t, "list", "--domain", "astrology")
	if res.code != mdwerror.ExitUsage {
		t.Errorf("unknown domain code = %d, want %d", res.code, mdwerror.ExitUsage)
	}
	if !strings.Contains(res.stderr, "unknown domain") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestDescribe(t *testing.T) {
	res := execute(t, "describe", "electronics.ohms_law")
	if res.code != mdwerror.ExitOK {
		t.Fatalf("code = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "selected by solveFor") {
		t.Errorf("describe output misses variants:\n%s", res.stdout)
	}

	if res := execute(t, "describe"); res.code != mdwerror.ExitUsage {
		t.Errorf("missing argument code = %d, want %d", res.code, mdwerror.ExitUsage)
	}
}

func TestEval(t *testing.T) {
	res := execute(t, "eval", "quality.cpk", "-o", "json",
		"--set", "usl=10", "--set", "lsl=4", "--set", "mean=7", "--set", "stdDev=1")
	if res.code != mdwerror.ExitOK {
		t.Fatalf("code = %d, stderr = %s", res.code, res.stderr)
	}

	var outcome struct {
		Status string             `json:"status"`
		Result map[string]float64 `json:"result"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &outcome); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if outcome.Status != "ok" || outcome.Result["cpk"] != 1 {
		t.Errorf("outcome = %+v", outcome)
	}
}

func TestEvalExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "not computable",
			args: []string{"eval", "quality.moving_average", "--set", "data=[1,2,3]", "--set", "window=5", "--set", "method=sma"},
			want: mdwerror.ExitRejected,
		},
		{
			name: "invalid record",
			args: []string{"eval", "quality.cpk", "--set", "usl=ten"},
			want: mdwerror.ExitRejected,
		},
		{
			name: "unknown formula",
			args: []string{"eval", "quality.nothing"},
			want: mdwerror.ExitUsage,
		},
		{
			name: "malformed set",
			args: []string{"eval", "quality.cpk", "--set", "usl"},
			want: mdwerror.ExitUsage,
		},
		{
			name: "missing input file",
			args: []string{"eval", "quality.cpk", "--input", "/nonexistent/input.yaml"},
			want: mdwerror.ExitFailure,
		},
		{
			name: "invalid output format",
			args: []string{"eval", "quality.cpk", "-o", "xml"},
			want: mdwerror.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			if res.code != tt.want {
				t.Errorf("code = %d, want %d (stderr %q)", res.code, tt.want, res.stderr)
			}
		})
	}
}

func TestEvalErrorMessages(t *testing.T) {
	res := execute(t, "eval", "quality.cpk", "--set", "usl")
	if !strings.Contains(res.stderr, "expected key=value") || !strings.Contains(res.stderr, "--help") {
		t.Errorf("malformed set stderr = %q, want expected form and usage hint", res.stderr)
	}

	res = execute(t, "eval", "quality.cpk", "--input", "/nonexistent/input.yaml")
	if !strings.Contains(res.stderr, "read /nonexistent/input.yaml") || strings.Contains(res.stderr, "--help") {
		t.Errorf("missing input stderr = %q, want read failure without usage hint", res.stderr)
	}
}

func TestEvalInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	content := `{"usl": 10, "lsl": 4, "mean": 7, "stdDev": 1}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, "eval", "quality.cpk", "--input", path, "--set", "mean=8")
	if res.code != mdwerror.ExitOK {
		t.Fatalf("code = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.HasPrefix(res.stdout, "quality.cpk  ok\n") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(testBatch), 0o644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, "batch", path)
	if res.code != mdwerror.ExitRejected {
		t.Fatalf("code = %d, want %d (stderr %s)", res.code, mdwerror.ExitRejected, res.stderr)
	}
	if !strings.Contains(res.stdout, "2 requests: 1 ok, 1 not computable") {
		t.Errorf("summary missing:\n%s", res.stdout)
	}

	if res := execute(t, "batch", path, "--workers", "0"); res.code != mdwerror.ExitUsage {
		t.Errorf("zero workers code = %d, want %d", res.code, mdwerror.ExitUsage)
	}
}

func TestCheck(t *testing.T) {
	res := execute(t, "check", "-o", "json")
	if res.code != mdwerror.ExitOK {
		t.Fatalf("code = %d, stdout = %s, stderr = %s", res.code, res.stdout, res.stderr)
	}

	var report struct {
		Status string `json:"status"`
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if report.Status != "healthy" || len(report.Checks) != 3 {
		t.Errorf("report = %+v", report)
	}
}

func TestVersion(t *testing.T) {
	res := execute(t, "version")
	if res.code != mdwerror.ExitOK {
		t.Fatalf("code = %d, stderr = %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "rechenwerk") {
		t.Errorf("stdout = %q", res.stdout)
	}
}
