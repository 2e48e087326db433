// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     health
// Description: Self checks run concurrently and summarized in a report
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
)

// Status represents the outcome of a check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// CheckResult represents the result of a single check
type CheckResult struct {
	Name     string                 `json:"name" yaml:"name"`
	Status   Status                 `json:"status" yaml:"status"`
	Message  string                 `json:"message,omitempty" yaml:"message,omitempty"`
	Duration time.Duration          `json:"-" yaml:"-"`
	Details  map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Checker is an interface for checks
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// NamedCheckFunc wraps a check function with a name
type NamedCheckFunc struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &NamedCheckFunc{name: name, fn: fn}
}

// Name returns the checker name
func (c *NamedCheckFunc) Name() string {
	return c.name
}

// Check runs the check
func (c *NamedCheckFunc) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}

// Registry manages multiple checkers
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	version  string
}

// NewRegistry creates a new check registry
func NewRegistry(version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		version:  version,
	}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function to the registry
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Check runs all checks concurrently and returns the overall status. Results
// are sorted by name. A check still running when ctx ends is reported
// unknown.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			results[i] = run(ctx, c)
		}(i, checker)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	report := &Report{Version: r.version, Status: StatusHealthy, Checks: results}
	for _, result := range results {
		report.Status = worse(report.Status, result.Status)
	}
	return report
}

func run(ctx context.Context, c Checker) CheckResult {
	done := make(chan CheckResult, 1)
	start := time.Now()
	go func() {
		done <- c.Check(ctx)
	}()

	var result CheckResult
	select {
	case result = <-done:
	case <-ctx.Done():
		result = CheckResult{Status: StatusUnknown, Message: ctx.Err().Error()}
	}
	result.Duration = time.Since(start)
	if result.Name == "" {
		result.Name = c.Name()
	}
	if result.Status == "" {
		result.Status = StatusUnknown
	}
	return result
}

func rank(s Status) int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	case StatusUnknown:
		return 2
	default:
		return 3
	}
}

func worse(a, b Status) Status {
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// CheckWithTimeout runs all checks with a timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report represents the overall check report
type Report struct {
	Version string        `json:"version" yaml:"version"`
	Status  Status        `json:"status" yaml:"status"`
	Checks  []CheckResult `json:"checks" yaml:"checks"`
}

// Healthy reports whether every check passed
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// ExitCode returns 0 for a healthy report and the failure code otherwise
func (r *Report) ExitCode() int {
	if r.Healthy() {
		return mdwerror.ExitOK
	}
	return mdwerror.ExitFailure
}

// String returns a string representation of the report
func (r *Report) String() string {
	return fmt.Sprintf("Version: %s, Status: %s, Checks: %d", r.Version, r.Status, len(r.Checks))
}

// Healthy returns a passing result
func Healthy(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusHealthy, Message: message}
}

// Unhealthy returns a failing result
func Unhealthy(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusUnhealthy, Message: message}
}
