package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/hylla/tado/internal/app"
	"github.com/hylla/tado/internal/domain"
)

// recordingLogger captures logged messages.
type recordingLogger struct {
	messages []string
}

// Debug records msg.
func (l *recordingLogger) Debug(msg string, _ ...any) {
	l.messages = append(l.messages, msg)
}

// Info records msg.
func (l *recordingLogger) Info(msg string, _ ...any) {
	l.messages = append(l.messages, msg)
}

// TestModelAddItemFlow verifies text entry appends to Todo.
func TestModelAddItemFlow(t *testing.T) {
	m := loadReadyModel(t, NewModel(app.NewState(app.DefaultSeed())))
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "aqe x" {
		m = applyMsg(t, m, keyRune(r))
	}
	if !m.State().IsInputMode() {
		t.Fatal("expected input mode after a")
	}
	if got := m.State().DraftText(); got != "qe x" {
		t.Fatalf("DraftText() = %q, want %q", got, "qe x")
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.State().IsInputMode() {
		t.Fatal("expected navigation mode after enter")
	}
	todo := m.State().Collection(domain.TabTodo).Texts()
	if len(todo) != 4 || todo[3] != "qe " {
		t.Fatalf("unexpected todo texts %#v", todo)
	}
	if m.State().ActiveTab() != domain.TabDone {
		t.Fatalf("ActiveTab() = %v, want Done", m.State().ActiveTab())
	}
}

// TestModelMoveAndDelete verifies navigation keys reach the state machine.
func TestModelMoveAndDelete(t *testing.T) {
	m := loadReadyModel(t, NewModel(nil))
	m = applyMsg(t, m, keyRune('e'))
	m = applyMsg(t, m, keyRune(' '))
	if got := m.State().Collection(domain.TabDone).Texts(); len(got) != 3 || got[2] != "learning rust" {
		t.Fatalf("unexpected done texts %#v", got)
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	if got := m.State().Collection(domain.TabTodo).Texts(); len(got) != 1 || got[0] != "make a todo tui app" {
		t.Fatalf("unexpected todo texts %#v", got)
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.State().ActiveTab() != domain.TabDone {
		t.Fatalf("ActiveTab() = %v, want Done", m.State().ActiveTab())
	}
}

// TestModelQuitKey verifies q and ctrl+c produce a quit command.
func TestModelQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{keyRune('q'), {Code: 'c', Mod: tea.ModCtrl}} {
		m := NewModel(nil)
		updated, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit cmd for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", msg.String())
		}
		if !updated.(Model).Quitting() {
			t.Fatal("expected quitting model")
		}
	}
}

// TestModelQuitKeyIgnoredWhileTyping verifies q is text in input mode.
func TestModelQuitKeyIgnoredWhileTyping(t *testing.T) {
	m := applyMsg(t, NewModel(nil), keyRune('a'))
	updated, cmd := m.Update(keyRune('q'))
	if cmd != nil {
		t.Fatal("expected no command while typing")
	}
	if got := updated.(Model).State().DraftText(); got != "q" {
		t.Fatalf("DraftText() = %q, want q", got)
	}
}

// TestModelClearKey verifies c requests a screen clear without changing state.
func TestModelClearKey(t *testing.T) {
	m := NewModel(nil)
	before := m.State().Summary()
	updated, cmd := m.Update(keyRune('c'))
	if cmd == nil {
		t.Fatal("expected clear screen cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); ok {
		t.Fatal("clear must not quit")
	}
	if got := updated.(Model).State().Summary(); got != before {
		t.Fatalf("Summary() = %q, want %q", got, before)
	}
}

// TestModelLogsKeys verifies diagnostics reach the configured logger.
func TestModelLogsKeys(t *testing.T) {
	logger := &recordingLogger{}
	m := NewModel(nil, WithLogger(logger))
	m = applyMsg(t, m, keyRune('e'))
	_, _ = m.Update(keyRune('q'))
	joined := strings.Join(logger.messages, ",")
	if !strings.Contains(joined, "key handled") || !strings.Contains(joined, "quit requested") {
		t.Fatalf("unexpected log messages %#v", logger.messages)
	}
}

// TestModelViewOptions verifies view flags follow options.
func TestModelViewOptions(t *testing.T) {
	v := NewModel(nil).View()
	if v.Content == nil || !v.AltScreen {
		t.Fatal("expected alt screen view with content")
	}
	v = NewModel(nil, WithAltScreen(false)).View()
	if v.AltScreen {
		t.Fatal("expected inline view")
	}
}

// TestModelHelpLine verifies help follows the input state and can be hidden.
func TestModelHelpLine(t *testing.T) {
	m := loadReadyModel(t, NewModel(nil))
	if got := m.helpLine(); !strings.Contains(got, "quit") {
		t.Fatalf("expected navigation help, got %q", got)
	}
	m = applyMsg(t, m, keyRune('a'))
	if got := m.helpLine(); !strings.Contains(got, "cancel") || strings.Contains(got, "quit") {
		t.Fatalf("expected input help, got %q", got)
	}
	m = loadReadyModel(t, NewModel(nil, WithShowHelp(false)))
	if got := m.helpLine(); got != "" {
		t.Fatalf("expected hidden help, got %q", got)
	}
}

// TestRenderFrame verifies the painted frame content.
func TestRenderFrame(t *testing.T) {
	s := app.NewState(app.DefaultSeed())
	out := renderFrame(app.Project(s), frameOptions{theme: DefaultTheme(), width: 80, height: 20})
	for _, want := range []string{"[Todo]", "Done", "make a todo tui app", "> ", "todo 3 • done 2 • navigate"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in frame\n%s", want, out)
		}
	}
	if got := len(strings.Split(out, "\n")); got != 20 {
		t.Fatalf("expected 20 lines, got %d", got)
	}

	s.EnterInput()
	s.AppendDraft('h')
	out = renderFrame(app.Project(s), frameOptions{theme: DefaultTheme(), width: 80, height: 20})
	if !strings.Contains(out, "Input") || !strings.Contains(out, "h|") {
		t.Fatalf("expected overlay in frame\n%s", out)
	}
}

// TestRenderFrameEmpty verifies the empty marker.
func TestRenderFrameEmpty(t *testing.T) {
	s := app.NewState(app.Seed{})
	out := renderFrame(app.Project(s), frameOptions{theme: DefaultTheme()})
	if !strings.Contains(out, emptyListText) {
		t.Fatalf("expected empty marker\n%s", out)
	}
}

// TestThemeFromColors verifies blank colors keep defaults.
func TestThemeFromColors(t *testing.T) {
	def := DefaultTheme()
	theme := ThemeFromColors("", "9", " ")
	if theme.Accent != def.Accent || theme.Muted != def.Muted {
		t.Fatal("expected default accent and muted colors")
	}
	if theme.Highlight == def.Highlight {
		t.Fatal("expected overridden highlight color")
	}
}

// TestTextHelpers verifies truncation and line fitting.
func TestTextHelpers(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncateLeft("abcdef|", 4); got != "…ef|" {
		t.Fatalf("truncateLeft() = %q", got)
	}
	if got := fitLines("a\nb\nc", 2); got != "a\n…" {
		t.Fatalf("fitLines() = %q", got)
	}
	if got := fitLines("a", 3); got != "a\n\n" {
		t.Fatalf("fitLines() = %q", got)
	}
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp() = %d", got)
	}
}

// loadReadyModel applies a window size to m.
func loadReadyModel(t *testing.T, m Model) Model {
	t.Helper()
	return applyMsg(t, applyCmd(t, m, m.Init()), tea.WindowSizeMsg{Width: 100, Height: 30})
}

// applyMsg updates m with msg and drains the returned command.
func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	out, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", updated)
	}
	return applyCmd(t, out, cmd)
}

// applyCmd runs cmd and feeds its messages back into m.
func applyCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	out := m
	currentCmd := cmd
	for i := 0; i < 6 && currentCmd != nil; i++ {
		msg := currentCmd()
		updated, nextCmd := out.Update(msg)
		casted, ok := updated.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", updated)
		}
		out = casted
		currentCmd = nextCmd
	}
	return out
}

// keyRune builds a printable key press.
func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}
