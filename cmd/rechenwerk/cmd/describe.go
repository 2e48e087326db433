package cmd

import (
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <formula>",
		Short: "Show the inputs of a formula",
		Long: `Shows the summary, the input fields or union variants and an input
template of a formula.

Examples:
  rechenwerk describe quality.cpk
  rechenwerk describe electronics.ohms_law -o yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Describe(f)
		},
	}
}
