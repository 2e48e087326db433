// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     catalog
// Description: Registry of formulas keyed by domain-qualified id
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package catalog

import (
	"errors"
	"strings"
	"sync"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Registry holds formulas under their lowercased id
type Registry struct {
	formulas map[string]formula.Formula
	logger   *log.Logger
	mutex    sync.RWMutex
}

// Options configures a Registry
type Options struct {
	Logger *log.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &Registry{
		formulas: make(map[string]formula.Formula),
		logger:   opts.Logger.WithField("component", "catalog"),
	}
}

// Register adds formulas. It stops at the first id that is already present
// and returns a DUPLICATE_ENTRY error for it.
func (r *Registry) Register(formulas ...formula.Formula) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, f := range formulas {
		key := strings.ToLower(f.ID())
		if _, exists := r.formulas[key]; exists {
			r.logger.Error("Formula registered twice", log.Formula(f.ID()))
			return mdwerrors.DuplicateFormula(f.ID())
		}
		r.formulas[key] = f

		r.logger.Trace("Formula registered", log.Fields{
			"formula":    f.ID(),
			"inputCount": len(f.Inputs),
			"tagged":     f.Union != nil,
		})
	}
	return nil
}

// Len returns the number of registered formulas
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.formulas)
}

// All returns every formula sorted by id
func (r *Registry) All() []formula.Formula {
	r.mutex.RLock()
	all := make([]formula.Formula, 0, len(r.formulas))
	for _, f := range r.formulas {
		all = append(all, f)
	}
	r.mutex.RUnlock()

	return slicex.SortBy(all, func(a, b formula.Formula) bool { return a.ID() < b.ID() })
}

// Domains returns the sorted, distinct domain names
func (r *Registry) Domains() []string {
	seen := make(map[string]bool)
	var domains []string
	for _, f := range r.All() {
		if !seen[f.Domain] {
			seen[f.Domain] = true
			domains = append(domains, f.Domain)
		}
	}
	return domains
}

// ByDomain returns the formulas of one domain sorted by id. The domain is
// matched without regard to case.
func (r *Registry) ByDomain(domain string) []formula.Formula {
	return slicex.Filter(r.All(), func(f formula.Formula) bool {
		return strings.EqualFold(f.Domain, domain)
	})
}

// Lookup finds a formula by id without regard to case. A bare name such as
// "cpk" resolves when exactly one domain defines it.
func (r *Registry) Lookup(id string) (formula.Formula, error) {
	key := strings.ToLower(strings.TrimSpace(id))

	r.mutex.RLock()
	f, ok := r.formulas[key]
	r.mutex.RUnlock()
	if ok {
		return f, nil
	}

	if key != "" && !strings.Contains(key, ".") {
		matches := slicex.Filter(r.All(), func(f formula.Formula) bool {
			return strings.ToLower(f.Name) == key
		})
		if len(matches) == 1 {
			return matches[0], nil
		}
	}
	return formula.Formula{}, mdwerrors.FormulaNotFound(id)
}

// Evaluate looks up id and evaluates raw. Formula failures are returned as
// coded errors carrying the formula, reason and field as details.
func (r *Registry) Evaluate(id string, raw interface{}) (interface{}, error) {
	f, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}

	result, err := f.Evaluate(raw)
	if err != nil {
		coded := Coded(err)
		r.logger.Debug("Formula rejected input", log.Fields{
			"formula": f.ID(),
			"code":    coded.Code().String(),
			"reason":  coded.Message(),
		})
		return nil, coded
	}
	return result, nil
}

// Coded converts a formula failure into a coded foundation error. Errors
// that are already coded are returned unchanged; anything else is wrapped
// as an internal error.
func Coded(err error) *mdwerror.Error {
	if err == nil {
		return nil
	}

	f, ok := formula.AsFailure(err)
	if !ok {
		var coded *mdwerror.Error
		if errors.As(err, &coded) {
			return coded
		}
		return mdwerror.Wrap(err, "evaluate").WithCode(mdwerror.CodeInternal)
	}

	var coded *mdwerror.Error
	switch f.Code {
	case mdwerror.CodeUnknownUnit:
		coded = mdwerrors.UnknownUnit(f.Formula, f.Field, f.Value)
	case mdwerror.CodeUnknownVariant:
		coded = mdwerrors.UnknownVariant(f.Formula, f.Field, f.Value)
	case mdwerror.CodeInvalidShape:
		coded = mdwerrors.InvalidShape(f.Formula, f)
	default:
		coded = mdwerrors.NotComputable(f.Formula, f.Field, f.Reason)
	}
	return coded.WithDetails(map[string]interface{}{
		"formula": f.Formula,
		"field":   f.Field,
		"reason":  f.Reason,
	})
}
