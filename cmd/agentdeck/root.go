package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/agentdeck/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "agentdeck",
	Short: "agentdeck presents a slide deck with a live agent demo",
	Long: `agentdeck presents a markdown slide deck in the terminal, over HTTP or as MCP tools.
One slide of the deck is a live demo where a Gemini model plans ([PLAN]) before it acts ([ACTION]).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory containing the slide deck (default: built-in deck)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default: agentdeck.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// sharedOptions reads the persistent flags. A positional argument stands in for --dir.
func sharedOptions(cmd *cobra.Command, args []string) cli.Options {
	dir, _ := cmd.Flags().GetString("dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		dir = args[0]
	}
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	return cli.Options{
		DeckDir:    dir,
		ConfigPath: configPath,
		Debug:      debug,
	}
}
