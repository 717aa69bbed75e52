package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/core"
	"wolfram-ca/internal/logging"
)

const logLevelFlag = "log-level"

// newRootCmd builds the ca command. seed supplies the lattice seed for each run.
func newRootCmd(stdout, stderr io.Writer, seed func() int64) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ca SIZE GENERATIONS [RULE]",
		Short: "Print the evolution of a one-dimensional elementary cellular automaton",
		Long: `ca seeds SIZE cells at random, bounded by a dead cell on each side, and
prints GENERATIONS states evolved under the given Wolfram rule number.
Live cells are drawn as '*', dead cells as a space.

Options must precede SIZE. Every later argument is positional, so negative
numbers are read as values.`,
		Example: "  ca 50 10 126\n  ca --log-level=debug 20 5 30",
		Args:    cobra.ArbitraryArgs,
		// Positional values may be negative numbers, which pflag would take
		// for shorthand flags. Leading options are split off in RunE.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, help, err := splitOptions(cmd, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}

			levelName, err := cmd.Flags().GetString(logLevelFlag)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(levelName)
			if err != nil {
				return err
			}
			logger := logging.New(stderr, level)

			cfg, err := app.ParseArgs(positional)
			if err != nil {
				return err
			}
			return app.Simulate(cfg, seed(), stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().String(logLevelFlag, "warn", "Diagnostic log level on stderr (debug, info, warn, error)")
	return cmd
}

// splitOptions consumes the options in front of the first positional
// argument and returns the rest untouched. A "--" ends the options.
func splitOptions(cmd *cobra.Command, args []string) (positional []string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args[i+1:], help, nil
		case arg == "-h" || arg == "--help":
			help = true
		case arg == "--"+logLevelFlag:
			if i+1 == len(args) {
				return nil, false, fmt.Errorf("flag needs an argument: --%s", logLevelFlag)
			}
			i++
			if err := cmd.Flags().Set(logLevelFlag, args[i]); err != nil {
				return nil, false, err
			}
		case strings.HasPrefix(arg, "--"+logLevelFlag+"="):
			if err := cmd.Flags().Set(logLevelFlag, strings.TrimPrefix(arg, "--"+logLevelFlag+"=")); err != nil {
				return nil, false, err
			}
		default:
			return args[i:], help, nil
		}
	}
	return nil, help, nil
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr, core.ClockSeed)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, app.ErrUsage) {
			fmt.Fprintln(stdout, app.Usage)
			return 1
		}
		logging.New(stderr, slog.LevelError).Error("ca failed", "error", err)
		return 1
	}
	return 0
}
