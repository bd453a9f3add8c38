package main

import (
	"fmt"
	"os"

	"github.com/aretw0/typestate/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state machine visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the machine. Solid arcs are the static
transitions out of Initial; dotted arcs exist only in the runtime loop.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetString("start")
		replay, _ := cmd.Flags().GetStringArray("replay")

		if err := cli.Graph(cmd.OutOrStdout(), start, replay); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("start", "", "Initial loop state for the overlay")
	graphCmd.Flags().StringArray("replay", nil, "Input line to replay for the overlay (repeatable)")
}
