package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agentdeck/internal/config"
	"github.com/aretw0/agentdeck/internal/testutils"
	"github.com/aretw0/agentdeck/pkg/agent"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("model: gemini-test\ndebounce: 10ms\n"), 0644))

	cfg, err := resolveConfig(Options{DeckDir: dir}, env(map[string]string{
		"API_KEY":        "fallback",
		"GEMINI_API_KEY": "primary",
	}))
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", cfg.Model)
	assert.Equal(t, 10*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "primary", cfg.APIKey)
	assert.Equal(t, dir, cfg.DeckDir)
}

func TestResolveConfig_ExplicitPathAndEnvErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr": ":9999"}`), 0644))

	cfg, err := resolveConfig(Options{ConfigPath: path}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Empty(t, cfg.DeckDir)

	_, err = resolveConfig(Options{ConfigPath: path}, env(map[string]string{config.EnvDebounce: "soon"}))
	assert.ErrorContains(t, err, "invalid environment")
}

func TestCreateEngine_DefaultDeck(t *testing.T) {
	cfg := config.Default()
	cfg.Debounce = time.Millisecond

	engine, err := createEngine(context.Background(), cfg, createLogger(io.Discard, false), true)
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, "default", engine.Name)
	assert.Len(t, engine.Slides(), 12)
	assert.Equal(t, 0, engine.Render().Index)
}

func TestRun_Headless(t *testing.T) {
	t.Setenv(config.EnvDeckDir, "")
	t.Setenv(config.EnvDebounce, "1ms")

	var out bytes.Buffer
	err := Run(context.Background(), RunOptions{
		Headless: true,
		Input:    strings.NewReader("n\nq\n"),
		Output:   &out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[1 / 12]")
	assert.Contains(t, out.String(), "# Agentic Coding")
	assert.Contains(t, out.String(), "[2 / 12]")
	assert.NotContains(t, out.String(), "|___/", "no banner when headless")
}

func TestRun_HeadlessLogsMissingCredential(t *testing.T) {
	t.Setenv(config.EnvDeckDir, "")
	t.Setenv(config.EnvDebounce, "1ms")
	for _, key := range config.EnvAPIKeys {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	err := Run(context.Background(), RunOptions{
		Headless:  true,
		Input:     strings.NewReader(strings.Repeat("n\n", 8) + "hello\nq\n"),
		Output:    &out,
		ErrOutput: &errOut,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[system] "+agent.ErrorNotice)
	assert.Contains(t, errOut.String(), "API key is missing")
	assert.Contains(t, errOut.String(), "agent exchange failed")
	assert.NotContains(t, errOut.String(), "level=DEBUG", "debug logs need --debug")
}

func TestListSlides(t *testing.T) {
	t.Setenv(config.EnvDeckDir, "")

	var out bytes.Buffer
	require.NoError(t, ListSlides(context.Background(), &out, Options{}))
	assert.Contains(t, out.String(), "live-demo")
	assert.Contains(t, out.String(), "Agentic Coding")
}

func TestValidate(t *testing.T) {
	t.Setenv(config.EnvDeckDir, "")

	var out bytes.Buffer
	require.NoError(t, Validate(context.Background(), &out, Options{}))
	assert.Contains(t, out.String(), "Deck is valid! 12 slides")

	dir, _ := testutils.SetupTestRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("---\nkind: code\ntitle: Broken\n---\n"), 0644))

	out.Reset()
	err := Validate(context.Background(), &out, Options{DeckDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'broken': code slide has no code")
	assert.Contains(t, out.String(), "warning: deck has no live demo slide")
}

func TestServeMCP_UnknownTransport(t *testing.T) {
	t.Setenv(config.EnvDeckDir, "")
	err := ServeMCP(context.Background(), MCPOptions{Transport: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unknown transport")
}
