package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	fconfig "github.com/msto63/rechenwerk/foundation/core/config"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers  int
		failFast bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate a batch file",
		Long: `Evaluates every request of a batch file concurrently. The file holds a
requests list of {id, formula, input} records as YAML, JSON or TOML
([[requests]] tables); "-" reads YAML or JSON from stdin. Outcomes are
written in file order.

Examples:
  rechenwerk batch jobs.yaml
  rechenwerk batch jobs.toml --workers 8 --fail-fast -o json`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := loadRequests(cmd, args[0])
			if err != nil {
				return err
			}

			cfg := a.cfg.Batch
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return usageError(cmd, "--workers must be at least 1")
				}
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.FailFast = failFast
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if cfg.Timeout.Duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Timeout.Duration)
				defer cancel()
			}

			runner := batch.NewRunner(catalog.Default(), batch.Config{
				Workers:   cfg.Workers,
				FailFast:  cfg.FailFast,
				CacheSize: cfg.CacheSize,
				Logger:    a.logger,
			})
			outcomes, runErr := runner.Run(ctx, requests)
			if hits, _ := runner.CacheStats(); hits > 0 {
				a.logger.Info("Reused cached results", log.Int("hits", int(hits)))
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.Batch(outcomes); err != nil {
				return err
			}
			if runErr != nil {
				a.logger.Warn("Batch ended early", log.Err(runErr))
				return runErr
			}
			if code := batch.Summarize(outcomes).ExitCode(); code != 0 {
				return &resultError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent evaluations (default: batch.workers from config)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop after the first request that is not ok")
	return cmd
}

func loadRequests(cmd *cobra.Command, path string) ([]batch.Request, error) {
	if path != "-" {
		return batch.LoadFile(path)
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, mdwerrors.IOFailed(mdwerrors.ModuleCLI, "read", "stdin", err)
	}
	return batch.Decode(content, fconfig.FormatYAML)
}
