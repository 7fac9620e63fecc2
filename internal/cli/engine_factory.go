package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/agentdeck"
	"github.com/aretw0/agentdeck/internal/config"
	"github.com/aretw0/agentdeck/pkg/adapters/gemini"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/observability"
)

// createEngine initializes an agentdeck engine with standard CLI conventions.
func createEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, debug bool, hooks ...domain.LifecycleHooks) (*agentdeck.Engine, error) {
	// 1. Agent backend. A missing key is reported on the first exchange.
	gen := gemini.New(ctx, cfg.APIKey,
		gemini.WithModel(cfg.Model),
		gemini.WithThinkingBudget(cfg.ThinkingBudget),
		gemini.WithLogger(logger),
	)

	// 2. Logger & Hooks
	if debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}

	engineOpts := []agentdeck.Option{
		agentdeck.WithLogger(logger),
		agentdeck.WithGenerator(gen),
		agentdeck.WithDebounce(cfg.Debounce),
		agentdeck.WithLifecycleHooks(observability.Combine(hooks...)),
	}
	if cfg.Greeting != nil {
		engineOpts = append(engineOpts, agentdeck.WithGreeting(*cfg.Greeting))
	}

	// 3. Initialize
	engine, err := agentdeck.New(cfg.DeckDir, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
