package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agentdeck/internal/runtime"
	"github.com/aretw0/agentdeck/internal/testutils"
	"github.com/aretw0/agentdeck/pkg/agent"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

func newTestModel(t *testing.T, deck *domain.Deck) (Model, *runtime.Shell, *testutils.ManualScheduler) {
	t.Helper()
	sched := &testutils.ManualScheduler{}
	gen := ports.GeneratorFunc(func(ctx context.Context, prompt, history string) (string, error) {
		return "[PLAN] inspect [ACTION] ls -la", nil
	})
	shell := runtime.NewShell(deck, gen,
		runtime.WithScheduler(sched),
		runtime.WithDemoOptions(agent.WithGreeting("")),
	)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		shell.Close()
	})

	m := New(ctx, shell, WithContentRenderer(func(md string) (string, error) { return md, nil }))
	return m, shell, sched
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Navigation(t *testing.T) {
	m, shell, sched := newTestModel(t, testutils.Deck(t, 3))
	assert.Contains(t, m.View(), "1 / 3")
	assert.Contains(t, m.View(), "# Slide 0")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, shell.Render().Transitioning)

	sched.Fire()
	m, _ = update(t, m, viewMsg(shell.Render()))
	assert.Contains(t, m.View(), "2 / 3")
	assert.Contains(t, m.View(), "# Slide 1")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	sched.Fire()
	m, _ = update(t, m, viewMsg(shell.Render()))
	assert.Equal(t, 2, shell.Render().Index)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	sched.Fire()
	assert.Equal(t, 1, shell.Render().Index)

	// Unmapped keys do nothing.
	_, _ = update(t, m, runes("x"))
	assert.False(t, shell.Render().Transitioning)
}

func TestModel_NavigationScrollsToTop(t *testing.T) {
	long := strings.Repeat("line\n\n", 60)
	deck, err := domain.NewDeck([]domain.Slide{
		{ID: "a", Kind: domain.KindStandard, Title: "A", Body: long},
		{ID: "b", Kind: domain.KindStandard, Title: "B", Body: long},
	})
	require.NoError(t, err)

	m, shell, sched := newTestModel(t, deck)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})

	m.body.SetYOffset(20)
	require.Equal(t, 20, m.body.YOffset)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, viewMsg(shell.Render()))
	assert.Equal(t, 20, m.body.YOffset, "kept while the old slide fades out")

	sched.Fire()
	m, _ = update(t, m, viewMsg(shell.Render()))
	assert.Equal(t, 0, m.body.YOffset)

	m.body.SetYOffset(20)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	sched.Fire()
	m, _ = update(t, m, viewMsg(shell.Render()))
	assert.Equal(t, 0, shell.Render().Index)
	assert.Equal(t, 0, m.body.YOffset)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, testutils.Deck(t, 2))

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_WatchClosedQuits(t *testing.T) {
	m, _, _ := newTestModel(t, testutils.Deck(t, 1))

	_, cmd := update(t, m, watchClosedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_DemoExchange(t *testing.T) {
	m, shell, _ := newTestModel(t, testutils.Deck(t, 2, 0))

	// Letters go to the input on the demo slide, q included.
	m, cmd := update(t, m, runes("q"))
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
	m, _ = update(t, m, runes("ls"))
	assert.Equal(t, "qls", m.input.Value())

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.input.Value())

	msg := cmd()
	require.Equal(t, submittedMsg{accepted: true}, msg)
	m, _ = update(t, m, msg)

	assert.Len(t, shell.Demo().Transcript(), 3)
	view := m.View()
	assert.Contains(t, view, "qls")
	assert.Contains(t, view, "Thinking Process")
	assert.Contains(t, view, "Action / Output")
}

func TestModel_DemoBlankSubmitIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, testutils.Deck(t, 1, 0))

	m, _ = update(t, m, runes("   "))
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestModel_DemoBusy(t *testing.T) {
	m, _, _ := newTestModel(t, testutils.Deck(t, 1, 0))

	v := m.view
	v.Demo = &domain.DemoSnapshot{Entries: []domain.Entry{domain.UserEntry("hi")}, Busy: true}
	m, _ = update(t, m, viewMsg(v))
	assert.Contains(t, m.View(), "Agent is reasoning...")

	m, _ = update(t, m, runes("again"))
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "no submit while busy")
}

func TestModel_DemoArrowsNeedEmptyInput(t *testing.T) {
	m, shell, _ := newTestModel(t, testutils.Deck(t, 2, 0))

	m, _ = update(t, m, runes("x"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, shell.Render().Transitioning)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Empty(t, m.input.Value())
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, shell.Render().Transitioning)
}

func TestModel_SuggestionsCycle(t *testing.T) {
	deck, err := domain.NewDeck([]domain.Slide{{
		ID:          "demo",
		Kind:        domain.KindDemo,
		Title:       "Live",
		Suggestions: []string{"list files", "write a test"},
	}})
	require.NoError(t, err)
	m, _, _ := newTestModel(t, deck)
	assert.Contains(t, m.View(), "Try: list files")

	tab := tea.KeyMsg{Type: tea.KeyTab}
	m, _ = update(t, m, tab)
	assert.Equal(t, "list files", m.input.Value())
	m, _ = update(t, m, tab)
	assert.Equal(t, "write a test", m.input.Value())
	m, _ = update(t, m, tab)
	assert.Equal(t, "list files", m.input.Value())
}

func TestModel_CodeSlide(t *testing.T) {
	deck, err := domain.NewDeck([]domain.Slide{{
		ID:    "code",
		Kind:  domain.KindCode,
		Title: "Loop",
		Code:  &domain.CodeSnippet{Language: "go", Code: "package main", Description: "entry point"},
	}})
	require.NoError(t, err)
	m, _, _ := newTestModel(t, deck)

	view := m.View()
	assert.Contains(t, view, "# Loop")
	assert.Contains(t, view, "package")
	assert.Contains(t, view, "entry point")
	assert.NotContains(t, view, "```", "code is highlighted outside the markdown")
}

func TestHighlightCode(t *testing.T) {
	assert.Contains(t, HighlightCode("fmt.Println(1)", "go"), "Println")
	assert.Contains(t, HighlightCode("plain words", "no-such-language"), "plain")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}
