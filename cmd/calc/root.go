package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
)

type options struct {
	precision int32
	group     bool
	verbose   bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	defaults, err := config.Load()
	if err != nil {
		defaults = config.Default()
	}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Left-to-right decimal calculator",
		Long: `Calc evaluates flat expressions with exact decimal arithmetic.

Operators are applied strictly in the order they are entered, so
"3 + 2 * 4" is 20. Use + - * / (or the glyphs + − × ÷) between operands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision < 0 {
				return fmt.Errorf("--precision must not be negative, got %d", opts.precision)
			}
			if opts.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				opts.logger = logger
			}
			calculator.DivisionPrecision = opts.precision
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().Int32Var(&opts.precision, "precision", defaults.DivisionPrecision, "Fractional digits kept by division")
	rootCmd.PersistentFlags().BoolVar(&opts.group, "group", false, "Group integer digits in thousands")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(newEvalCmd(opts), newReplCmd(opts))

	return rootCmd
}
