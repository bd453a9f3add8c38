package main

import (
	"fmt"
	"os"

	"github.com/aretw0/typestate/internal/cli"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Replay input lines through the loop and print each transition",
	Long: `Runs the loop over stdin without prompts and streams one record per transition,
as YAML documents or newline-delimited JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		start, _ := cmd.Flags().GetString("start")
		debug, _ := cmd.Flags().GetBool("debug")
		stats, _ := cmd.Flags().GetBool("stats")

		err := cli.Trace(cmd.Context(), cli.TraceOptions{
			Format: format,
			Start:  start,
			Debug:  debug,
			Stats:  stats,
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringP("format", "f", cli.FormatYAML, "Output format (yaml, json)")
	traceCmd.Flags().String("start", "", "Initial loop state, parsed like an input line (default Number(0))")
}
