// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     batch
// Description: Concurrent evaluation of many formula requests
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package batch

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/msto63/rechenwerk/pkg/core/cache"
	"github.com/msto63/rechenwerk/pkg/formula"
	"golang.org/x/sync/errgroup"
)

// Status classifies the outcome of one request
type Status string

// Outcome statuses
const (
	StatusOK            Status = "ok"
	StatusNotComputable Status = "not_computable"
	StatusInvalid       Status = "invalid"
	StatusError         Status = "error"
	StatusCancelled     Status = "cancelled"
)

// Evaluator evaluates a raw input record with the formula named by id.
// *catalog.Registry satisfies it.
type Evaluator interface {
	Evaluate(id string, raw interface{}) (interface{}, error)
}

// Request names a formula and its raw input
type Request struct {
	ID      string                 `json:"id,omitempty" yaml:"id,omitempty" toml:"id"`
	Formula string                 `json:"formula" yaml:"formula" toml:"formula"`
	Input   map[string]interface{} `json:"input" yaml:"input" toml:"input"`
}

// Outcome is the result of one request. Result is set only for StatusOK.
type Outcome struct {
	ID       string        `json:"id" yaml:"id"`
	Formula  string        `json:"formula" yaml:"formula"`
	Status   Status        `json:"status" yaml:"status"`
	Result   interface{}   `json:"result,omitempty" yaml:"result,omitempty"`
	Code     string        `json:"code,omitempty" yaml:"code,omitempty"`
	Reason   string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Field    string        `json:"field,omitempty" yaml:"field,omitempty"`
	Duration time.Duration `json:"-" yaml:"-"`
}

// OK reports whether the request produced a result
func (o Outcome) OK() bool {
	return o.Status == StatusOK
}

// Config for the Runner
type Config struct {
	Workers   int  // Maximum concurrent evaluations (default: runtime.NumCPU())
	FailFast  bool // Stop dispatching after the first outcome that is not ok
	CacheSize int  // Results kept for repeated requests; 0 disables the cache
	Logger    *log.Logger
}

// DefaultConfig returns the default runner configuration
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Runner evaluates requests with a bounded number of goroutines
type Runner struct {
	evaluator Evaluator
	workers   int
	failFast  bool
	cache     *cache.Cache
	logger    *log.Logger
}

// NewRunner creates a runner. A nil evaluator uses the default catalog.
func NewRunner(evaluator Evaluator, cfg Config) *Runner {
	if evaluator == nil {
		evaluator = catalog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.GetDefault()
	}
	r := &Runner{
		evaluator: evaluator,
		workers:   cfg.Workers,
		failFast:  cfg.FailFast,
		logger:    cfg.Logger.WithField("component", "batch"),
	}
	if cfg.CacheSize > 0 {
		r.cache = cache.New(cache.Config{MaxItems: cfg.CacheSize})
	}
	return r
}

// CacheStats reports result cache hits and misses. Both are zero when the
// cache is disabled.
func (r *Runner) CacheStats() (hits, misses int64) {
	if r.cache == nil {
		return 0, 0
	}
	hits, misses, _ = r.cache.Stats()
	return hits, misses
}

// errStopped ends the errgroup when fail fast triggers
var errStopped = errors.New("batch stopped after failed request")

// Run evaluates every request and returns one outcome per request in
// request order. Requests that never started are marked cancelled. The
// error is nil when every request ran; otherwise it is a CANCELLED error
// after fail fast or a cancelled context, or TIMEOUT when the context
// deadline passed.
func (r *Runner) Run(ctx context.Context, requests []Request) ([]Outcome, error) {
	outcomes := make([]Outcome, len(requests))
	for i, req := range requests {
		id := req.ID
		if id == "" {
			id = uuid.NewString()
		}
		outcomes[i] = Outcome{
			ID:      id,
			Formula: req.Formula,
			Status:  StatusCancelled,
			Reason:  "not started",
		}
	}

	timer := r.logger.StartTimer("batch run").
		WithField("requests", len(requests)).
		WithField("workers", r.workers)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	for i := range requests {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}
			outcomes[i] = r.evaluate(requests[i], outcomes[i].ID)
			if r.failFast && !outcomes[i].OK() {
				return errStopped
			}
			return nil
		})
	}
	waitErr := group.Wait()

	summary := Summarize(outcomes)
	timer.WithField("ok", summary.OK).
		WithField("cancelled", summary.Cancelled).
		StopWithResult(summary.OK == summary.Total, nil)

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return outcomes, mdwerrors.NewErrorBuilder(mdwerrors.ModuleBatch).
			Operation("run").
			Message("batch deadline exceeded").
			Cause(ctx.Err()).
			Code(mdwerror.CodeTimeout).
			Detail("cancelled", summary.Cancelled).
			Build()
	case ctx.Err() != nil || errors.Is(waitErr, errStopped):
		cause := ctx.Err()
		if cause == nil {
			cause = waitErr
		}
		return outcomes, mdwerrors.NewErrorBuilder(mdwerrors.ModuleBatch).
			Operation("run").
			Message("batch cancelled").
			Cause(cause).
			Code(mdwerror.CodeCancelled).
			Detail("cancelled", summary.Cancelled).
			Build()
	}
	return outcomes, nil
}

// Evaluate runs a single request on the calling goroutine
func (r *Runner) Evaluate(req Request) Outcome {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	return r.evaluate(req, id)
}

func (r *Runner) evaluate(req Request, id string) Outcome {
	logger := r.logger.WithRequestID(id).WithFormula(req.Formula)
	timer := logger.StartTimer("evaluate")

	outcome := Outcome{ID: id, Formula: req.Formula}
	result, cached, err := r.call(req)
	if cached {
		timer.WithField("cached", true)
	}
	if err != nil {
		coded := catalog.Coded(err)
		outcome.Status = statusFor(coded.Code())
		outcome.Code = coded.Code().String()
		outcome.Reason = reasonOf(coded)
		if field, ok := coded.Detail("field"); ok {
			outcome.Field, _ = field.(string)
		}
		timer.WithField("status", string(outcome.Status))
	} else {
		outcome.Status = StatusOK
		outcome.Result = result
	}
	outcome.Duration = timer.Stop()
	return outcome
}

// call evaluates req, reusing an earlier result for an equal request when
// the cache is enabled. Formula failures are cached like results; other
// errors are not.
func (r *Runner) call(req Request) (result interface{}, cached bool, err error) {
	if r.cache == nil {
		result, err = r.evaluator.Evaluate(req.Formula, req.Input)
		return result, false, err
	}
	key, ok := cache.Key(req.Formula, req.Input)
	if !ok {
		result, err = r.evaluator.Evaluate(req.Formula, req.Input)
		return result, false, err
	}

	entry, hit := r.cache.GetOrSet(key, func() cache.Entry {
		value, err := r.evaluator.Evaluate(req.Formula, req.Input)
		return cache.Entry{Value: value, Err: err}
	}, cacheable)
	return entry.Value, hit, entry.Err
}

// cacheable keeps results and deterministic formula rejections. The catalog
// returns rejections as coded errors, a bare evaluator as *formula.Failure.
func cacheable(entry cache.Entry) bool {
	if entry.Err == nil {
		return true
	}
	if _, isFailure := formula.AsFailure(entry.Err); isFailure {
		return true
	}
	switch mdwerror.GetCode(entry.Err) {
	case mdwerror.CodeNotComputable, mdwerror.CodeUnknownUnit,
		mdwerror.CodeUnknownVariant, mdwerror.CodeInvalidShape:
		return true
	}
	return false
}

func statusFor(code mdwerror.Code) Status {
	switch code {
	case mdwerror.CodeNotComputable, mdwerror.CodeUnknownUnit:
		return StatusNotComputable
	case mdwerror.CodeInvalidShape, mdwerror.CodeUnknownVariant, mdwerror.CodeNotFound:
		return StatusInvalid
	default:
		return StatusError
	}
}

func reasonOf(err *mdwerror.Error) string {
	if reason, ok := err.Detail("reason"); ok {
		if s, isString := reason.(string); isString && s != "" {
			return s
		}
	}
	return err.Message()
}

// Summary counts outcomes per status
type Summary struct {
	Total         int `json:"total" yaml:"total"`
	OK            int `json:"ok" yaml:"ok"`
	NotComputable int `json:"notComputable" yaml:"notComputable"`
	Invalid       int `json:"invalid" yaml:"invalid"`
	Failed        int `json:"failed" yaml:"failed"`
	Cancelled     int `json:"cancelled" yaml:"cancelled"`
}

// Summarize counts outcomes per status
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case StatusOK:
			s.OK++
		case StatusNotComputable:
			s.NotComputable++
		case StatusInvalid:
			s.Invalid++
		case StatusCancelled:
			s.Cancelled++
		default:
			s.Failed++
		}
	}
	return s
}

// ExitCode returns the process exit code for a finished batch: failures
// outrank rejected input, which outranks success.
func (s Summary) ExitCode() int {
	switch {
	case s.Failed > 0 || s.Cancelled > 0:
		return mdwerror.ExitFailure
	case s.NotComputable > 0 || s.Invalid > 0:
		return mdwerror.ExitRejected
	default:
		return mdwerror.ExitOK
	}
}
