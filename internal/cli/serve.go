package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/agentdeck/internal/logging"
	httpAdapter "github.com/aretw0/agentdeck/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/agentdeck/pkg/adapters/mcp"
	"github.com/aretw0/agentdeck/pkg/observability"
)

// shutdownTimeout bounds the graceful stop of the HTTP server.
const shutdownTimeout = 5 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	Options
	// Addr overrides the configured listen address when set.
	Addr string
	// MCPPort also serves the MCP tools over SSE when positive.
	MCPPort int
}

// Serve exposes the presentation over HTTP until ctx is done.
func Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := resolveConfig(opts.Options, os.LookupEnv)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}

	logger := logging.NewJSON(os.Stderr, logging.Level(opts.Debug))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	engine, err := createEngine(ctx, cfg, logger, opts.Debug, metrics.Hooks())
	if err != nil {
		return err
	}
	defer engine.Close()
	engine.Start(ctx)

	g, ctx := errgroup.WithContext(ctx)

	api := httpAdapter.NewServer(engine,
		httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)
	api.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		logger.Info("HTTP server listening", "address", cfg.Addr, "deck", engine.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		logger.Info("HTTP server stopped gracefully")
		return nil
	})

	if opts.MCPPort > 0 {
		g.Go(func() error {
			return mcpAdapter.NewServer(engine).ServeSSE(ctx, opts.MCPPort)
		})
	}

	return g.Wait()
}
