package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/agentdeck/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Start the HTTP server",
	Long: `Exposes the presentation as a JSON API with a Server-Sent Events stream of view changes.
Prometheus metrics are served at /metrics and the API description at /openapi.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.ServeOptions{Options: sharedOptions(cmd, args)}
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetInt("port")
			opts.Addr = fmt.Sprintf(":%d", port)
		}
		opts.MCPPort, _ = cmd.Flags().GetInt("mcp-port")
		return cli.Serve(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().Int("mcp-port", 0, "Also serve the MCP tools over SSE on this port")
}
