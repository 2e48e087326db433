package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	mdwerror "github.com/msto63/rechenwerk/foundation/core/error"
	mdwerrors "github.com/msto63/rechenwerk/foundation/core/errors"
	"github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/internal/render"
	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/msto63/rechenwerk/pkg/core/logging"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation
type app struct {
	cfgFile      string
	outputFormat string
	verbose      bool

	cfg    *config.Config
	logger *log.Logger
	logOut io.Writer
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rechenwerk",
		Short: "rechenwerk - numeric formula engine",
		Long: `rechenwerk evaluates engineering, quality and business formulas.

Formulas are addressed by domain-qualified ids such as quality.cpk or
electronics.ohms_law. Inputs are records given as YAML, JSON or TOML
files or as key=value pairs.

Domains:
  automotive, battery, chemical, construction, electronics, environmental,
  food, logistics, machining, metal, quality, utility

Exit codes:
  0   success
  1   failure (I/O, configuration, internal)
  2   not computable or invalid input record
  64  usage error or unknown formula`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "", "output format: table, json, yaml or toml")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err.Error())
	})

	rootCmd.AddCommand(
		newListCmd(a),
		newDescribeCmd(a),
		newEvalCmd(a),
		newBatchCmd(a),
		newTUICmd(a),
		newCheckCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return run(NewRootCommand(), os.Args[1:], os.Stderr)
}

func run(rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return mdwerror.ExitOK
	}

	var result *resultError
	if errors.As(err, &result) {
		return result.code
	}
	printError(stderr, err)
	return mdwerror.ExitCode(err)
}

// setup loads the configuration and installs the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.outputFormat != "" {
		cfg.Output.Format = a.outputFormat
		if err := cfg.Validate(); err != nil {
			return usageError(cmd, fmt.Sprintf("invalid --output %q", a.outputFormat))
		}
	}
	a.cfg = cfg

	logCfg := logging.FromConfig(config.AppName, cfg.General, a.verbose)
	logCfg.Output = a.logOut
	a.logger = logging.Install(logCfg)
	a.logger.Debug("Configuration loaded", log.Fields{
		"path":   cfg.Path,
		"output": cfg.Output.Format,
	})
	return nil
}

// renderer creates a renderer for the command's standard output
func (a *app) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	return render.New(cmd.OutOrStdout(), render.OptionsFromConfig(a.cfg.Output))
}

// resultError ends a command whose output was written but whose result was
// not successful. It carries the exit code and is not printed.
type resultError struct {
	code int
}

func (e *resultError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func usageError(cmd *cobra.Command, message string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(cmd.Name()).
		Message(message).
		Code(mdwerror.CodeInvalidInput).
		Build()
}

// usageArgs wraps a cobra argument check so violations exit as usage errors
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(cmd, err.Error()+"\n\nUsage: "+cmd.UseLine())
		}
		return nil
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if mdwerrors.IsModuleError(err, mdwerrors.ModuleCLI) && mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		fmt.Fprintln(w, "Run 'rechenwerk --help' for usage.")
	}
}
