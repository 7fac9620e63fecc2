package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/agentdeck/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Present the deck in the terminal",
	Long: `Presents the deck full screen when attached to a terminal.
With --headless, or when stdin/stdout are not a terminal, slides are printed once on entry
and commands are read line by line (n, p, q, or a message on the live demo slide).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")
		return cli.Run(cmd.Context(), cli.RunOptions{
			Options:  sharedOptions(cmd, args),
			Headless: headless,
			Input:    cmd.InOrStdin(),
			Output:   cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner, prompts or styling)")

	// 'run' is the default when no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
