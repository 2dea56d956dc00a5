package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"aelist/internal/domain"
	"aelist/internal/ui/logic"
	"aelist/internal/ui/views"
)

// Outcome is how the prompt ended
type Outcome int

const (
	// OutcomePending means the prompt is still waiting for input
	OutcomePending Outcome = iota
	// OutcomeConfirmed means the user pressed enter
	OutcomeConfirmed
	// OutcomeInterrupted means the prompt was interrupted, nothing is launched
	OutcomeInterrupted
)

// Options configures the prompt
type Options struct {
	Mode       domain.Mode
	SkipBanner bool
	DisplayCap int
}

// Model represents the UI state
type Model struct {
	index     *domain.Index
	selection *logic.Selection
	opts      Options
	log       zerolog.Logger

	input    textinput.Model
	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	pager    Pager

	width   int
	outcome Outcome
}

// NewModel creates the prompt over idx, filtered with the empty query
func NewModel(idx *domain.Index, opts Options, log zerolog.Logger) *Model {
	if opts.DisplayCap < 1 {
		opts.DisplayCap = logic.DefaultDisplayCap
	}

	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = logic.MaxQueryLen
	ti.Focus()

	return &Model{
		index:     idx,
		selection: logic.NewSelection(idx, opts.DisplayCap),
		opts:      opts,
		log:       log.With().Str("component", "ui").Logger(),
		input:     ti,
		keys:      newKeyMap(),
		help:      help.New(),
		renderer:  views.NewRenderer(),
	}
}

// SetProgram sets the program reference used to hand the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// SetPager replaces the pager
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case InterruptMsg:
		return m.interrupt()

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("pager failed")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Launch):
			m.outcome = OutcomeConfirmed
			if exe, ok := m.selection.Current(); ok {
				m.log.Info().Str("query", m.selection.Query()).Str("path", exe.Path).Msg("confirmed")
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Interrupt):
			return m.interrupt()
		case key.Matches(msg, m.keys.Help):
			return m, m.showPager(io.NopCloser(strings.NewReader(RenderHelpContent())))
		case key.Matches(msg, m.keys.List):
			return m, m.showPager(matchListReader(m.selection.Matching()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.selection.Update(m.input.Value())
	return m, cmd
}

func (m *Model) interrupt() (tea.Model, tea.Cmd) {
	m.outcome = OutcomeInterrupted
	m.log.Info().Msg("interrupted")
	return m, tea.Quit
}

// showPager returns a command that pages r and closes it afterwards
func (m *Model) showPager(r io.ReadCloser) tea.Cmd {
	if m.pager == nil {
		_ = r.Close()
		return nil
	}
	pager := m.pager
	return func() tea.Msg {
		defer r.Close()
		return pagerMsg{err: pager.Page(r)}
	}
}

// View renders the UI
func (m *Model) View() string {
	res := m.selection.Result()

	state := views.ViewState{
		Width:       m.width,
		Mode:        m.opts.Mode,
		SkipBanner:  m.opts.SkipBanner,
		Executables: m.index.Len(),
		Paths:       m.index.Paths,
		TotalSize:   m.index.TotalSize,
		MatchCount:  res.MatchCount,
		SelectedRow: -1,
		Query:       m.selection.Query(),
		Input:       m.input.View(),
	}
	if exe, ok := m.selection.Current(); ok {
		state.Selected = &exe
	}
	if m.opts.Mode == domain.ModeLong {
		state.Matches = make([]string, 0, len(res.Matches))
		for row, i := range res.Matches {
			state.Matches = append(state.Matches, m.index.At(i).Name)
			if i == res.Selected {
				state.SelectedRow = row
			}
		}
		state.Help = m.help.View(m.keys)
	}

	return m.renderer.Render(state)
}

// Options returns the options the prompt was created with
func (m *Model) Options() Options {
	return m.opts
}

// Outcome returns how the prompt ended
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Query returns the query typed so far
func (m *Model) Query() string {
	return m.selection.Query()
}

// Result returns the outcome of the last filter run
func (m *Model) Result() logic.Result {
	return m.selection.Result()
}

// Selected returns the executable to launch once the user confirmed
func (m *Model) Selected() (domain.Executable, bool) {
	if m.outcome != OutcomeConfirmed {
		return domain.Executable{}, false
	}
	return m.selection.Current()
}
