package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/agentdeck/internal/config"
)

// Options are the flags shared by every command.
type Options struct {
	// DeckDir is a directory of markdown slides. Empty means the built-in deck.
	DeckDir    string
	ConfigPath string
	Debug      bool
}

// resolveConfig layers the config file, the environment and the flags.
// Without --config, agentdeck.yaml is looked up in the deck directory and then
// in the working directory.
func resolveConfig(opts Options, lookup func(string) (string, bool)) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = findConfig(opts.DeckDir)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, fmt.Errorf("invalid environment: %w", err)
	}
	if opts.DeckDir != "" {
		cfg.DeckDir = opts.DeckDir
	}
	return cfg, nil
}

func findConfig(deckDir string) string {
	candidates := []string{config.DefaultFile}
	if deckDir != "" {
		candidates = append([]string{filepath.Join(deckDir, config.DefaultFile)}, candidates...)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
