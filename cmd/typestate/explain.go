package main

import (
	"fmt"
	"os"

	"github.com/aretw0/typestate/internal/cli"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain which transitions the type system rejects, and why",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		if err := cli.Explain(cmd.OutOrStdout(), plain); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().Bool("plain", false, "Print the raw markdown instead of rendering it")
}
