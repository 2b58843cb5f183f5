package main

import (
	"fmt"
	"os"

	"github.com/geange/powerset"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "powerset",
		Short: "Determinize an NFA with the subset construction",
		Long: `powerset turns a nondeterministic finite automaton into the equivalent
deterministic one, keeps the states reachable from the start state, merges
parallel transitions and exports the result as a TikZ or DOT diagram.

Without a file argument the built-in four-state sample automaton is used.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Int("max-states", powerset.DefaultMaxStates, "Largest number of NFA states accepted")
	flags.String("acceptance", "substring", "Acceptance rule for composite states (substring|membership)")
	flags.String("log-level", "warn", "Log level (debug|info|warn|error)")
	flags.Bool("metrics", false, "Print collected metrics to stderr after the run")

	rootCmd.AddCommand(newExportCmd(), newDumpCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
