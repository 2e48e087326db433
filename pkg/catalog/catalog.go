package catalog

import (
	"sync"

	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/pkg/formula"
	"github.com/msto63/rechenwerk/pkg/formula/automotive"
	"github.com/msto63/rechenwerk/pkg/formula/battery"
	"github.com/msto63/rechenwerk/pkg/formula/chemical"
	"github.com/msto63/rechenwerk/pkg/formula/construction"
	"github.com/msto63/rechenwerk/pkg/formula/electronics"
	"github.com/msto63/rechenwerk/pkg/formula/environmental"
	"github.com/msto63/rechenwerk/pkg/formula/food"
	"github.com/msto63/rechenwerk/pkg/formula/logistics"
	"github.com/msto63/rechenwerk/pkg/formula/machining"
	"github.com/msto63/rechenwerk/pkg/formula/metal"
	"github.com/msto63/rechenwerk/pkg/formula/quality"
	"github.com/msto63/rechenwerk/pkg/formula/utility"
)

// Sources lists the Formulas function of every domain package
var Sources = []func() []formula.Formula{
	automotive.Formulas,
	battery.Formulas,
	chemical.Formulas,
	construction.Formulas,
	electronics.Formulas,
	environmental.Formulas,
	food.Formulas,
	logistics.Formulas,
	machining.Formulas,
	metal.Formulas,
	quality.Formulas,
	utility.Formulas,
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Build creates a registry holding the formulas of every source
func Build(opts Options) (*Registry, error) {
	r := New(opts)
	for _, source := range Sources {
		if err := r.Register(source()...); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("Catalog built", log.Int("formulaCount", r.Len()))
	return r, nil
}

// Default returns the shared registry of all domains. Duplicate ids are a
// programming error and panic.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Build(Options{})
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// All returns every formula of the default registry sorted by id
func All() []formula.Formula {
	return Default().All()
}

// Domains returns the sorted domain names of the default registry
func Domains() []string {
	return Default().Domains()
}

// ByDomain returns the formulas of one domain of the default registry
func ByDomain(domain string) []formula.Formula {
	return Default().ByDomain(domain)
}

// Lookup finds a formula in the default registry
func Lookup(id string) (formula.Formula, error) {
	return Default().Lookup(id)
}

// Evaluate runs a formula of the default registry
func Evaluate(id string, raw interface{}) (interface{}, error) {
	return Default().Evaluate(id, raw)
}
