package main

import (
	"fmt"
	"os"

	"github.com/aretw0/typestate/internal/cli"
	"github.com/spf13/cobra"
)

// newRunCmd builds one command per demonstration mode.
func newRunCmd(mode cli.Mode, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(mode),
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := runOptions(cmd, mode)
			if cmd.Flags().Lookup("start") != nil {
				opts.Start, _ = cmd.Flags().GetString("start")
			}
			if err := cli.Execute(cmd.Context(), opts); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
	return cmd
}

var (
	demoCmd = newRunCmd(cli.ModeDemo,
		"Run every flow in sequence",
		`Runs the static transitions, both runtime branches, and then the loop until input ends.`)
	staticCmd = newRunCmd(cli.ModeStatic,
		"Run the compile-time transitions",
		`Transitions Initial to Text("hello") and Initial to Number(1234). Reads no input.`)
	branchCmd = newRunCmd(cli.ModeBranch,
		"Run the one-shot runtime branches",
		`Reads one line for each branching phase. A line that parses as an unsigned
32-bit integer becomes a Number, anything else becomes Text.`)
	loopCmd = newRunCmd(cli.ModeLoop,
		"Run the runtime transition loop",
		`Prints the current state and reads a line, forever. Numbers add to a Number
state (wrapping at 2^32) and replace a Text state; anything else becomes Text.
The loop ends when input is exhausted.`)
)

func init() {
	rootCmd.AddCommand(demoCmd, staticCmd, branchCmd, loopCmd)

	loopCmd.Flags().String("start", "", "Initial loop state, parsed like an input line (default Number(0))")

	// 'demo' is the default if no command is provided.
	rootCmd.Run = demoCmd.Run
}
