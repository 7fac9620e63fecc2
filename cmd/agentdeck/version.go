package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/agentdeck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of agentdeck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agentdeck version %s\n", strings.TrimSpace(agentdeck.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
