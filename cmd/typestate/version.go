package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/typestate"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of typestate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "typestate version %s\n", strings.TrimSpace(typestate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
