package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/agentdeck/internal/cli"
)

var slidesCmd = &cobra.Command{
	Use:   "slides [dir]",
	Short: "List the slides of the deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListSlides(cmd.Context(), cmd.OutOrStdout(), sharedOptions(cmd, args))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check the deck for consistency",
	Long:  `Loads every slide and reports invalid kinds, duplicate ids, empty code slides and layout warnings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.Context(), cmd.OutOrStdout(), sharedOptions(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(slidesCmd)
	rootCmd.AddCommand(validateCmd)
}
