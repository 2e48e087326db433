package cmd

import (
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/internal/render"
	"github.com/msto63/rechenwerk/internal/tui"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive formula browser",
		Long: `Opens the terminal formula browser. Pick a formula from the list, edit
its input record as YAML and evaluate it.

Navigation:
  Enter     - Select formula
  /         - Filter formulas
  Ctrl+E    - Evaluate input
  Ctrl+R    - Reset input to the template
  Tab       - Next pane
  Esc       - Previous pane
  Ctrl+C    - Quit`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas := catalog.All()
			if domain != "" {
				formulas = catalog.ByDomain(domain)
			}

			return tui.Run(tui.Config{
				Formulas: formulas,
				Runner:   batch.NewRunner(catalog.Default(), batch.Config{Workers: 1, Logger: a.logger}),
				Output:   render.OptionsFromConfig(a.cfg.Output),
				Logger:   a.logger,
			})
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "only list formulas of this domain")
	return cmd
}
