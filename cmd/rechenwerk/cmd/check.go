package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/msto63/rechenwerk/pkg/core/health"
	"github.com/msto63/rechenwerk/pkg/core/version"
	"github.com/spf13/cobra"
)

// domainCount is the number of formula domains the catalog ships
const domainCount = 12

// referenceCase is a formula evaluation with a known result
type referenceCase struct {
	formula string
	input   map[string]interface{}
	field   string
	want    float64
}

var referenceCases = []referenceCase{
	{"quality.cpk", map[string]interface{}{"usl": 10, "lsl": 4, "mean": 7, "stdDev": 1}, "cpk", 1},
	{"quality.statistics", map[string]interface{}{"data": []interface{}{2, 4, 4, 4, 5, 5, 7, 9}}, "stdDev", 2},
	{"electronics.ohms_law", map[string]interface{}{"solveFor": "power", "voltage": 12, "current": 2}, "power", 24},
	{"electronics.ohms_law", map[string]interface{}{"solveFor": "resistance", "voltage": 9, "current": 3}, "resistance", 3},
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run self checks",
		Long: `Verifies the configuration, the formula catalog and a set of reference
evaluations. Exits 1 when any check fails.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := health.NewRegistry(version.Library)
			registry.RegisterFunc("config", a.checkConfig)
			registry.RegisterFunc("catalog", checkCatalog)
			registry.RegisterFunc("reference", a.checkReference)

			report := registry.CheckWithTimeout(10 * time.Second)
			for _, c := range report.Checks {
				a.logger.Debug("Check finished", log.Fields{
					"check":    c.Name,
					"status":   string(c.Status),
					"duration": c.Duration.String(),
				})
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.Health(report); err != nil {
				return err
			}
			if code := report.ExitCode(); code != 0 {
				return &resultError{code: code}
			}
			return nil
		},
	}
}

func (a *app) checkConfig(ctx context.Context) health.CheckResult {
	if err := a.cfg.Validate(); err != nil {
		return health.Unhealthy("config", err.Error())
	}
	source := a.cfg.Path
	if source == "" {
		source = "defaults"
	}
	result := health.Healthy("config", "loaded from "+source)
	result.Details = map[string]interface{}{"output": a.cfg.Output.Format, "workers": a.cfg.Batch.Workers}
	return result
}

func checkCatalog(ctx context.Context) health.CheckResult {
	registry, err := catalog.Build(catalog.Options{})
	if err != nil {
		return health.Unhealthy("catalog", err.Error())
	}
	domains := registry.Domains()
	if len(domains) != domainCount {
		return health.Unhealthy("catalog", fmt.Sprintf("%d domains, want %d", len(domains), domainCount))
	}
	result := health.Healthy("catalog", fmt.Sprintf("%d formulas in %d domains", registry.Len(), len(domains)))
	result.Details = map[string]interface{}{"domains": strings.Join(domains, ",")}
	return result
}

func (a *app) checkReference(ctx context.Context) health.CheckResult {
	requests := make([]batch.Request, len(referenceCases))
	for i, rc := range referenceCases {
		requests[i] = batch.Request{ID: fmt.Sprintf("ref-%d", i+1), Formula: rc.formula, Input: rc.input}
	}

	runner := batch.NewRunner(catalog.Default(), batch.Config{Logger: a.logger})
	outcomes, err := runner.Run(ctx, requests)
	if err != nil {
		return health.CheckResult{Status: health.StatusUnknown, Message: err.Error()}
	}

	var failed []string
	for i, o := range outcomes {
		rc := referenceCases[i]
		got, ok := numberField(o.Result, rc.field)
		if !o.OK() || !ok || math.Abs(got-rc.want) > 1e-9 {
			failed = append(failed, fmt.Sprintf("%s %s", rc.formula, rc.field))
		}
	}
	if len(failed) > 0 {
		return health.Unhealthy("reference", "mismatch: "+strings.Join(failed, ", "))
	}
	return health.Healthy("reference", fmt.Sprintf("%d reference evaluations match", len(outcomes)))
}

// numberField reads a numeric field of a result by its JSON name
func numberField(result interface{}, field string) (float64, bool) {
	content, err := json.Marshal(result)
	if err != nil {
		return 0, false
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(content, &fields); err != nil {
		return 0, false
	}
	n, ok := fields[field].(float64)
	return n, ok
}
