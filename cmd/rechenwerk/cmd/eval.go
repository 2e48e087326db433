package cmd

import (
	"io"
	"strings"

	fconfig "github.com/msto63/rechenwerk/foundation/core/config"
	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/internal/batch"
	"github.com/msto63/rechenwerk/pkg/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		inputFile string
		sets      []string
	)

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a formula",
		Long: `Evaluates one formula. The input record is read from a YAML, JSON or
TOML file (--input, "-" for stdin) and/or built from key=value pairs
(--set). Values are parsed as YAML scalars, so numbers, strings and
lists such as [1,2,3] work; dotted keys create nested records.

Examples:
  rechenwerk eval quality.cpk --set usl=10 --set lsl=4 --set mean=7 --set stdDev=1
  rechenwerk eval electronics.ohms_law --set solveFor=power --set voltage=12 --set current=2
  rechenwerk eval quality.statistics --set data=[2,4,4,4,5,5,7,9] -o json
  rechenwerk eval metal.weight --input plate.yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			record, err := readRecord(cmd, inputFile)
			if err != nil {
				return err
			}
			if err := applySets(cmd, record, sets); err != nil {
				return err
			}

			runner := batch.NewRunner(catalog.Default(), batch.Config{Workers: 1, Logger: a.logger})
			outcome := runner.Evaluate(batch.Request{Formula: f.ID(), Input: record})

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.Outcome(outcome); err != nil {
				return err
			}
			if !outcome.OK() {
				return &resultError{code: mdwerror.Code(outcome.Code).ExitCode()}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input record file (YAML, JSON or TOML; - for stdin)")
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "set an input field, key=value (repeatable)")
	return cmd
}

// readRecord loads the input record. Stdin is read as YAML, which also
// accepts JSON.
func readRecord(cmd *cobra.Command, path string) (map[string]interface{}, error) {
	switch path {
	case "":
		return make(map[string]interface{}), nil
	case "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, mdwerrors.IOFailed(mdwerrors.ModuleCLI, "read", "stdin", err)
		}
		record, err := fconfig.DecodeRecord(content, fconfig.FormatYAML)
		if err != nil {
			return nil, mdwerrors.DecodeFailed(mdwerrors.ModuleCLI, "stdin", err)
		}
		return record, nil
	default:
		record, err := fconfig.LoadRecord(path)
		if err != nil {
			if mdwerror.HasCode(err, mdwerror.CodeNotFound) || mdwerror.HasCode(err, mdwerror.CodeIOError) {
				return nil, mdwerrors.IOFailed(mdwerrors.ModuleCLI, "read", path, err)
			}
			return nil, mdwerrors.DecodeFailed(mdwerrors.ModuleCLI, path, err)
		}
		return record, nil
	}
}

// applySets parses key=value pairs into record
func applySets(cmd *cobra.Command, record map[string]interface{}, sets []string) error {
	for _, set := range sets {
		key, raw, found := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "set", set, "key=value")
		}
		value, err := parseValue(raw)
		if err != nil {
			return usageError(cmd, "--set "+key+": "+err.Error())
		}
		fconfig.SetNested(record, key, value)
	}
	return nil
}

// parseValue reads a YAML scalar or flow collection. An empty value is the
// empty string.
func parseValue(raw string) (interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	var value interface{}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}
	return value, nil
}
