package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewChecker(t *testing.T) {
	checker := NewChecker("test-checker", func(ctx context.Context) CheckResult {
		return CheckResult{
			Status:  StatusHealthy,
			Message: "test passed",
		}
	})

	if checker.Name() != "test-checker" {
		t.Errorf("Name() = %v, want test-checker", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
	if result.Message != "test passed" {
		t.Errorf("Message = %v, want 'test passed'", result.Message)
	}
}

func TestRegistry_Check(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
		{"unknown", []Status{StatusHealthy, StatusUnknown}, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("1.0.0")
			for i, s := range tt.statuses {
				status := s
				r.RegisterFunc(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return CheckResult{Status: status}
				})
			}

			report := r.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Errorf("len(Checks) = %d, want %d", len(report.Checks), len(tt.statuses))
			}
			if report.Version != "1.0.0" {
				t.Errorf("Version = %q", report.Version)
			}
		})
	}
}

func TestRegistry_CheckSortedAndNamed(t *testing.T) {
	r := NewRegistry("1.0.0")
	for _, name := range []string{"reference", "catalog", "config"} {
		r.RegisterFunc(name, func(ctx context.Context) CheckResult {
			return CheckResult{Status: StatusHealthy}
		})
	}

	report := r.Check(context.Background())
	want := []string{"catalog", "config", "reference"}
	for i, name := range want {
		if report.Checks[i].Name != name {
			t.Errorf("Checks[%d].Name = %q, want %q", i, report.Checks[i].Name, name)
		}
	}
}

func TestRegistry_CheckRunsConcurrently(t *testing.T) {
	r := NewRegistry("1.0.0")
	var running, peak atomic.Int32
	for _, name := range []string{"a", "b", "c"} {
		r.RegisterFunc(name, func(ctx context.Context) CheckResult {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			running.Add(-1)
			return Healthy("", "")
		})
	}

	r.Check(context.Background())
	if peak.Load() < 2 {
		t.Errorf("peak concurrency = %d, want at least 2", peak.Load())
	}
}

func TestRegistry_CheckWithTimeout(t *testing.T) {
	r := NewRegistry("1.0.0")
	release := make(chan struct{})
	defer close(release)
	r.RegisterFunc("slow", func(ctx context.Context) CheckResult {
		<-release
		return Healthy("slow", "")
	})

	report := r.CheckWithTimeout(10 * time.Millisecond)
	if report.Status != StatusUnknown {
		t.Errorf("Status = %v, want unknown", report.Status)
	}
	if report.Checks[0].Name != "slow" {
		t.Errorf("Name = %q, want slow", report.Checks[0].Name)
	}
}

func TestRegistry_Register_Replaces(t *testing.T) {
	r := NewRegistry("1.0.0")
	r.RegisterFunc("x", func(ctx context.Context) CheckResult { return Unhealthy("x", "first") })
	r.RegisterFunc("x", func(ctx context.Context) CheckResult { return Healthy("x", "second") })

	report := r.Check(context.Background())
	if len(report.Checks) != 1 || report.Checks[0].Message != "second" {
		t.Errorf("Checks = %+v", report.Checks)
	}
}

func TestReport_ExitCode(t *testing.T) {
	if code := (&Report{Status: StatusHealthy}).ExitCode(); code != 0 {
		t.Errorf("healthy ExitCode() = %d, want 0", code)
	}
	if code := (&Report{Status: StatusDegraded}).ExitCode(); code != 1 {
		t.Errorf("degraded ExitCode() = %d, want 1", code)
	}
}
