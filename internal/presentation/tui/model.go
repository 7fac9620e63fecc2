package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
	"github.com/aretw0/agentdeck/pkg/runner"
)

const (
	headerHeight = 1
	footerHeight = 2
	demoChrome   = 5 // title, status, input and spacing around the transcript
	defaultWidth = 80
	defaultRows  = 24
)

// viewMsg carries a new view from the engine.
type viewMsg domain.View

// watchClosedMsg reports that the engine stopped publishing views.
type watchClosedMsg struct{}

// submittedMsg reports the end of a demo exchange.
type submittedMsg struct{ accepted bool }

// Option configures a Model.
type Option func(*Model)

// WithContentRenderer replaces the glamour renderer, mostly for tests.
func WithContentRenderer(r runner.ContentRenderer) Option {
	return func(m *Model) {
		m.render = r
		m.fixedRenderer = true
	}
}

// WithStyle sets the glamour style name ("dark", "light", "notty"). Empty means auto.
func WithStyle(style string) Option {
	return func(m *Model) {
		m.style = style
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// Model is the bubbletea model of the presentation.
type Model struct {
	ctx    context.Context
	engine ports.Presenter
	views  <-chan domain.View
	logger *slog.Logger

	keys   keyMap
	styles Styles
	help   help.Model

	render        runner.ContentRenderer
	fixedRenderer bool
	style         string

	view          domain.View
	width, height int
	suggestion    int
	quitting      bool

	body       viewport.Model
	transcript viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	progress   progress.Model
}

// New creates the model and subscribes to engine until ctx is done.
func New(ctx context.Context, engine ports.Presenter, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "Ask the agent to do something..."
	input.Prompt = "❯ "
	input.CharLimit = runner.MaxInputSize()
	input.Focus()

	m := Model{
		ctx:        ctx,
		engine:     engine,
		views:      engine.Watch(ctx),
		keys:       defaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		view:       engine.Render(),
		width:      defaultWidth,
		height:     defaultRows,
		body:       viewport.New(defaultWidth, defaultRows-headerHeight-footerHeight),
		transcript: viewport.New(defaultWidth, defaultRows-headerHeight-footerHeight-demoChrome),
		input:      input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.resize(m.width, m.height)
	return m
}

// Init starts listening for engine views.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForView(m.views), textinput.Blink, m.spinner.Tick)
}

func waitForView(views <-chan domain.View) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-views
		if !ok {
			return watchClosedMsg{}
		}
		return viewMsg(v)
	}
}

func submit(ctx context.Context, engine ports.Presenter, text string) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{accepted: engine.Submit(ctx, text)}
	}
}

// Update handles terminal and engine messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case viewMsg:
		m.apply(domain.View(msg))
		return m, waitForView(m.views)

	case watchClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case submittedMsg:
		if !msg.accepted {
			m.logger.Debug("demo submit rejected")
		}
		m.apply(m.engine.Render())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	demo := m.view.Slide.IsDemo()

	if msg.Type == tea.KeyCtrlC || (!demo && key.Matches(msg, m.keys.Quit)) {
		m.quitting = true
		return m, tea.Quit
	}

	if demo {
		return m.handleDemoKey(msg)
	}

	switch navigation(msg) {
	case domain.ActionAdvance:
		m.engine.Advance()
		return m, nil
	case domain.ActionRetreat:
		m.engine.Retreat()
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) handleDemoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text, err := runner.SanitizeInput(m.input.Value())
		if err != nil {
			m.logger.Warn("input rejected", "error", err)
			return m, nil
		}
		if strings.TrimSpace(text) == "" || m.busy() {
			return m, nil
		}
		m.input.Reset()
		return m, submit(m.ctx, m.engine, text)

	case key.Matches(msg, m.keys.Suggest):
		if sugs := m.view.Slide.Suggestions; len(sugs) > 0 {
			m.input.SetValue(sugs[m.suggestion%len(sugs)])
			m.input.CursorEnd()
			m.suggestion++
		}
		return m, nil

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	// Arrows navigate away from the demo only while the input is empty.
	if m.input.Value() == "" && msg.Type != tea.KeySpace {
		switch navigation(msg) {
		case domain.ActionAdvance:
			m.engine.Advance()
			return m, nil
		case domain.ActionRetreat:
			m.engine.Retreat()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply installs a new view and refreshes the scroll areas.
func (m *Model) apply(v domain.View) {
	old := m.view
	m.view = v

	landed := v.Visit != old.Visit
	if landed {
		m.suggestion = 0
		m.body.GotoTop()
	}
	m.refresh()

	if v.Demo != nil && (old.Demo == nil || len(v.Demo.Entries) != len(old.Demo.Entries) || landed) {
		m.transcript.GotoBottom()
	}
}

func (m *Model) busy() bool {
	return m.view.Demo != nil && m.view.Demo.Busy
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	if !m.fixedRenderer {
		r, err := NewRenderer(max(width-4, 20), m.style)
		if err != nil {
			m.logger.Warn("markdown renderer unavailable", "error", err)
		}
		m.render = r
	}

	bodyHeight := max(height-headerHeight-footerHeight, 1)
	m.body.Width = width
	m.body.Height = bodyHeight
	m.transcript.Width = width
	m.transcript.Height = max(bodyHeight-demoChrome, 1)
	m.input.Width = max(width-4, 10)
	m.progress.Width = max(width/3, 10)
	m.help.Width = width

	m.refresh()
}

func (m *Model) refresh() {
	if m.view.Demo != nil {
		m.transcript.SetContent(m.renderTranscript(m.view.Demo.Entries))
		return
	}
	m.body.SetContent(m.renderSlide(m.view.Slide))
}

// View draws the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var main string
	if m.view.Demo != nil {
		main = m.demoView()
	} else {
		main = m.body.View()
	}
	if m.view.Transitioning {
		main = m.styles.Faded.Render(main)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), main, m.footerView())
}

func (m Model) headerView() string {
	title := m.styles.Header.Render("agentdeck")
	kind := m.styles.Kind.Render(string(m.view.Slide.Kind))
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(kind), 0)
	return title + strings.Repeat(" ", gap) + kind
}

func (m Model) footerView() string {
	bindings := m.keys.ShortHelp()
	if m.view.Slide.IsDemo() {
		bindings = m.keys.demoHelp()
	}
	status := fmt.Sprintf("%s %s", runner.FormatPosition(m.view), m.progress.ViewAs(m.view.Progress))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Footer.Render(status),
		m.styles.Footer.Render(m.help.ShortHelpView(bindings)),
	)
}

func (m Model) demoView() string {
	var status string
	if m.busy() {
		status = m.spinner.View() + " Agent is reasoning..."
	} else if sugs := m.view.Slide.Suggestions; len(sugs) > 0 {
		status = m.styles.Suggestion.Render("Try: " + strings.Join(sugs, " · "))
	}

	title := m.view.Slide.Title
	if m.view.Slide.Subtitle != "" {
		title += " - " + m.view.Slide.Subtitle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		m.transcript.View(),
		status,
		m.input.View(),
	)
}

// renderSlide lays out a non-demo slide. Code snippets are highlighted apart
// from the markdown so they keep the chroma theme.
func (m Model) renderSlide(s domain.Slide) string {
	code := s.Code
	s.Code = nil
	out := m.markdown(runner.SlideMarkdown(s))

	if code != nil {
		block := HighlightCode(strings.TrimRight(code.Code, "\n"), code.Language)
		if code.Language != "" {
			block = m.styles.CodeBadge.Render(code.Language) + "\n" + block
		}
		out += m.styles.Code.Render(block) + "\n"
		if code.Description != "" {
			out += m.markdown(code.Description)
		}
	}
	return out
}

func (m Model) renderTranscript(entries []domain.Entry) string {
	width := max(m.width-4, 20)
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		label := m.styles.Label.Render(e.Label())
		var text string
		switch {
		case e.Speaker == domain.SpeakerUser:
			text = m.styles.User.Width(width).Render(e.Text)
		case e.Kind == domain.EntryThought:
			text = m.styles.Thought.Width(width).Render(e.Text)
		case e.Kind == domain.EntryAction:
			text = m.styles.Action.Width(width).Render(e.Text)
		default:
			text = m.styles.System.Width(width).Render(e.Text)
		}
		blocks = append(blocks, label+"\n"+text)
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) markdown(md string) string {
	if m.render == nil {
		return md
	}
	out, err := m.render(md)
	if err != nil {
		m.logger.Warn("render failed, falling back to markdown", "error", err)
		return md
	}
	return out
}
