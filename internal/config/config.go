// Package config resolves runtime settings from defaults, an optional
// agentdeck.yaml (or .json) file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFile           = "agentdeck.yaml"
	DefaultModel          = "gemini-2.5-flash"
	DefaultThinkingBudget = 1024
	DefaultDebounce       = 300 * time.Millisecond
	DefaultAddr           = ":8080"
)

// Environment variables read by ApplyEnv. The API key is looked up in order.
var (
	EnvAPIKeys  = []string{"GEMINI_API_KEY", "API_KEY"}
	EnvModel    = "AGENTDECK_MODEL"
	EnvDebounce = "AGENTDECK_DEBOUNCE"
	EnvDeckDir  = "AGENTDECK_DIR"
)

// Config holds every tunable of the presentation.
type Config struct {
	Model          string
	ThinkingBudget int32
	Debounce       time.Duration
	DeckDir        string
	Addr           string
	APIKey         string

	// Greeting overrides the demo's initial system entry when non-nil.
	// An empty string starts the transcript empty.
	Greeting *string
}

// fileConfig mirrors the on-disk layout.
type fileConfig struct {
	Model          string  `yaml:"model" json:"model"`
	ThinkingBudget *int32  `yaml:"thinking_budget" json:"thinking_budget"`
	Debounce       string  `yaml:"debounce" json:"debounce"`
	DeckDir        string  `yaml:"deck_dir" json:"deck_dir"`
	Addr           string  `yaml:"addr" json:"addr"`
	Greeting       *string `yaml:"greeting" json:"greeting"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model:          DefaultModel,
		ThinkingBudget: DefaultThinkingBudget,
		Debounce:       DefaultDebounce,
		Addr:           DefaultAddr,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// The API key is never read from the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.merge(fc); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func (c *Config) merge(fc fileConfig) error {
	if fc.Model != "" {
		c.Model = fc.Model
	}
	if fc.ThinkingBudget != nil {
		c.ThinkingBudget = *fc.ThinkingBudget
	}
	if fc.Debounce != "" {
		d, err := parseDebounce(fc.Debounce)
		if err != nil {
			return err
		}
		c.Debounce = d
	}
	if fc.DeckDir != "" {
		c.DeckDir = fc.DeckDir
	}
	if fc.Addr != "" {
		c.Addr = fc.Addr
	}
	if fc.Greeting != nil {
		c.Greeting = fc.Greeting
	}
	return nil
}

// ApplyEnv overrides settings from the environment. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, key := range EnvAPIKeys {
		if v, ok := lookup(key); ok && v != "" {
			c.APIKey = v
			break
		}
	}
	if v, ok := lookup(EnvModel); ok && v != "" {
		c.Model = v
	}
	if v, ok := lookup(EnvDeckDir); ok && v != "" {
		c.DeckDir = v
	}
	if v, ok := lookup(EnvDebounce); ok && v != "" {
		d, err := parseDebounce(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebounce, err)
		}
		c.Debounce = d
	}
	return nil
}

// parseDebounce accepts a Go duration ("300ms") or a bare number of milliseconds.
func parseDebounce(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.Atoi(s); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("debounce must not be negative: %d", ms)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid debounce %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("debounce must not be negative: %s", d)
	}
	return d, nil
}
