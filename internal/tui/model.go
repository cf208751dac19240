package tui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/hylla/tado/internal/app"
)

// Model adapts the list state machine to a bubbletea program.
type Model struct {
	state *app.State

	ready  bool
	width  int
	height int

	help help.Model
	keys keyMap

	theme     Theme
	altScreen bool
	showHelp  bool
	logger    app.Logger
	quitting  bool
}

// NewModel constructs a model driving state.
func NewModel(state *app.State, opts ...Option) Model {
	if state == nil {
		state = app.NewState(app.DefaultSeed())
	}
	h := help.New()
	h.ShowAll = false
	m := Model{
		state:     state,
		help:      h,
		keys:      newKeyMap(),
		theme:     DefaultTheme(),
		altScreen: true,
		showHelp:  true,
		logger:    app.NopLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// State returns the driven state.
func (m Model) State() *app.State {
	return m.state
}

// Quitting reports whether a quit key has been handled.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init returns no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if m.quitting {
			return m, nil
		}
		k := keyFromMsg(msg)
		out := app.HandleKey(m.state, k)
		m.logger.Debug("key handled", "key", k.String(), "command", string(out.Command), "changed", out.Changed)
		switch {
		case out.Quit:
			m.quitting = true
			m.logger.Info("quit requested", "state", m.state.Summary())
			return m, tea.Quit
		case out.Redraw:
			return m, tea.ClearScreen
		}
		return m, nil
	}
	return m, nil
}

// View paints the current frame.
func (m Model) View() tea.View {
	content := ""
	if !m.quitting {
		content = renderFrame(app.Project(m.state), frameOptions{
			theme:    m.theme,
			width:    m.width,
			height:   m.height,
			helpLine: m.helpLine(),
		})
	}
	v := tea.NewView(content)
	v.AltScreen = m.altScreen
	return v
}

// helpLine renders the short help for the current input state.
func (m Model) helpLine() string {
	if !m.showHelp {
		return ""
	}
	helpBubble := m.help
	helpBubble.ShowAll = false
	helpBubble.SetWidth(max(0, m.width-2))
	return helpBubble.View(m.keys.forMode(m.state.IsInputMode()))
}
