package main

import (
	"fmt"
	"os"

	"github.com/aretw0/typestate/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "typestate",
	Short: "typestate demonstrates compile-time and runtime state transitions",
	Long: `typestate walks a three-state machine (Initial -> Number or Text) twice:
once with a distinct static type per state, and once with a runtime tagged union
that can follow user input in a loop.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runOptions reads the persistent flags shared by the run commands.
func runOptions(cmd *cobra.Command, mode cli.Mode) cli.RunOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	stats, _ := cmd.Flags().GetBool("stats")
	noBanner, _ := cmd.Flags().GetBool("no-banner")
	return cli.RunOptions{
		Mode:     mode,
		Debug:    debug,
		Stats:    stats,
		NoBanner: noBanner,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		ErrOut:   cmd.ErrOrStderr(),
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().Bool("stats", false, "Print transition counters to stderr on exit")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Never print the banner")
}
