// Command sparsedemo drives the matrix package from the command line: it runs
// the built-in self-test suite or YAML scenario files and prints the results.
//
//	sparsedemo selftest
//	sparsedemo run scenarios/float-demo.yaml --color
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/sparsemat/internal/scenario"
	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerFactory builds the logger once flags are parsed.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// productionLogger is the default factory: zap production config, debug level
// when verbose.
func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// app holds the global flags and the logger shared by subcommands.
type app struct {
	verbose   bool
	colorize  bool
	newLogger loggerFactory
	logger    *zap.Logger
}

// printOptions translates CLI flags into matrix print options.
func (a *app) printOptions() []matrix.PrintOption {
	if !a.colorize {
		return nil
	}
	c := color.New(color.FgGreen, color.Bold)
	c.EnableColor() // --color means always, even when piped

	return []matrix.PrintOption{matrix.WithHighlight(c)}
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{newLogger: newLogger}

	rootCmd := &cobra.Command{
		Use:           "sparsedemo",
		Short:         "Exercise the sparse matrix container",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.logger, err = a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.colorize, "color", false, "highlight stored cells in dumps")

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in demonstration checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scenario.SelfTest(cmd.OutOrStdout(), a.logger, scenario.Builtin(), a.printOptions()...)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]...",
		Short: "Load and run YAML scenario files",
		Long: `Each file describes a float64 matrix (rows, cols, default), the entries
to add in order, an optional predicate for evaluate, and optional expectations
(values in traversal order, len, count). Files run in the order given; the
first failure stops the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				sc, err := scenario.Load(path)
				if err != nil {
					return err
				}
				if _, err := scenario.Run(sc, cmd.OutOrStdout(), a.logger, a.printOptions()...); err != nil {
					return err
				}
			}

			return nil
		},
	}

	rootCmd.AddCommand(selftestCmd, runCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd(productionLogger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
