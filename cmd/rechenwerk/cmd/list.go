package cmd

import (
	"strings"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List formulas",
		Long: `Lists all formulas, or the formulas of one domain.

Examples:
  rechenwerk list
  rechenwerk list --domain quality
  rechenwerk list -o json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas := catalog.All()
			if domain != "" {
				formulas = catalog.ByDomain(domain)
				if len(formulas) == 0 {
					return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
						Operation("list").
						Messagef("unknown domain %q (known: %s)", domain, strings.Join(catalog.Domains(), ", ")).
						Code(mdwerror.CodeNotFound).
						Detail("domain", domain).
						Build()
				}
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Formulas(formulas)
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "only list formulas of this domain")
	return cmd
}
