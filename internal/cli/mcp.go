package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/agentdeck/internal/logging"
	mcpAdapter "github.com/aretw0/agentdeck/pkg/adapters/mcp"
)

// MCPOptions configures the mcp command.
type MCPOptions struct {
	Options
	Transport string
	Port      int
}

// ServeMCP exposes the presentation as MCP tools.
// Logs always go to stderr so they never corrupt JSON-RPC on stdout.
func ServeMCP(ctx context.Context, opts MCPOptions) error {
	cfg, err := resolveConfig(opts.Options, os.LookupEnv)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Level(opts.Debug))
	slog.SetDefault(logger)
	log.SetOutput(os.Stderr)

	engine, err := createEngine(ctx, cfg, logger, opts.Debug)
	if err != nil {
		return err
	}
	defer engine.Close()
	engine.Start(ctx)

	srv := mcpAdapter.NewServer(engine)

	switch opts.Transport {
	case "", "stdio":
		logger.Info("Starting agentdeck MCP Server (Stdio)...")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting agentdeck MCP Server (SSE)", "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil {
			return err
		}
		logger.Info("MCP Server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", opts.Transport)
	}
}
