package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`
model: gemini-2.5-pro
thinking_budget: 0
debounce: 150ms
deck_dir: ./slides
greeting: ""
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, int32(0), cfg.ThinkingBudget)
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "./slides", cfg.DeckDir)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	require.NotNil(t, cfg.Greeting)
	assert.Empty(t, *cfg.Greeting)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentdeck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr": ":9090", "debounce": "500"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
}

func TestLoad_InvalidDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("debounce: soon\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{
		"API_KEY":            "fallback",
		"GEMINI_API_KEY":     "primary",
		"AGENTDECK_MODEL":    "m",
		"AGENTDECK_DEBOUNCE": "1s",
	}))
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.APIKey)
	assert.Equal(t, "m", cfg.Model)
	assert.Equal(t, time.Second, cfg.Debounce)

	cfg = Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{"API_KEY": "fallback"})))
	assert.Equal(t, "fallback", cfg.APIKey)

	cfg = Default()
	assert.Error(t, cfg.ApplyEnv(env(map[string]string{"AGENTDECK_DEBOUNCE": "-5"})))
}
