package app

import "github.com/hylla/tado/internal/domain"

// Command names one resolved action of the input state machine.
type Command string

// CommandNone and related constants define every command the handler resolves.
const (
	CommandNone        Command = ""
	CommandQuit        Command = "quit"
	CommandTabNext     Command = "tab-next"
	CommandTabPrev     Command = "tab-prev"
	CommandSelectNext  Command = "select-next"
	CommandSelectPrev  Command = "select-prev"
	CommandMoveItem    Command = "move-item"
	CommandDeleteItem  Command = "delete-item"
	CommandClearScreen Command = "clear-screen"
	CommandEnterInput  Command = "enter-input"
	CommandBackspace   Command = "backspace"
	CommandInsertChar  Command = "insert-char"
	CommandCancelInput Command = "cancel-input"
	CommandConfirm     Command = "confirm-input"
)

// Outcome reports what one keystroke did to the state.
type Outcome struct {
	Command Command
	Changed bool
	Quit    bool
	Redraw  bool
}

// Binding pairs one navigation keystroke with its command.
type Binding struct {
	Key     domain.Key
	Command Command
}

// navigationBindings stores the fixed navigation-mode transition table in help order.
var navigationBindings = []Binding{
	{Key: domain.RuneKey('a'), Command: CommandEnterInput},
	{Key: domain.RuneKey('e'), Command: CommandSelectNext},
	{Key: domain.RuneKey('u'), Command: CommandSelectPrev},
	{Key: domain.NamedKey(domain.KeyTab), Command: CommandTabNext},
	{Key: domain.NamedKey(domain.KeyShiftTab), Command: CommandTabPrev},
	{Key: domain.RuneKey(' '), Command: CommandMoveItem},
	{Key: domain.NamedKey(domain.KeyBackspace), Command: CommandDeleteItem},
	{Key: domain.RuneKey('c'), Command: CommandClearScreen},
	{Key: domain.RuneKey('q'), Command: CommandQuit},
}

// navigationTable indexes navigationBindings by key.
var navigationTable = func() map[domain.Key]Command {
	out := make(map[domain.Key]Command, len(navigationBindings))
	for _, b := range navigationBindings {
		out[b.Key] = b.Command
	}
	return out
}()

// NavigationBindings returns the navigation-mode bindings in help order.
func NavigationBindings() []Binding {
	return append([]Binding(nil), navigationBindings...)
}

// ResolveCommand maps a keystroke to the command it triggers in the current mode
// without touching the state.
func ResolveCommand(s *State, key domain.Key) Command {
	if key.Kind == domain.KeyInterrupt {
		return CommandQuit
	}
	if s.IsInputMode() {
		switch {
		case key.Kind == domain.KeyBackspace:
			return CommandBackspace
		case key.Kind == domain.KeyEscape:
			return CommandCancelInput
		case key.Kind == domain.KeyEnter:
			return CommandConfirm
		case key.Printable():
			return CommandInsertChar
		default:
			return CommandNone
		}
	}
	return navigationTable[key]
}

// HandleKey applies one keystroke to the state and reports the outcome.
// While input mode is active, only backspace, printable characters, escape
// and enter are meaningful; command keys are typed into the draft.
func HandleKey(s *State, key domain.Key) Outcome {
	cmd := ResolveCommand(s, key)
	out := Outcome{Command: cmd}
	switch cmd {
	case CommandQuit:
		out.Quit = true
	case CommandClearScreen:
		out.Redraw = true
	case CommandTabNext:
		out.Changed = s.NextTab()
	case CommandTabPrev:
		out.Changed = s.PrevTab()
	case CommandSelectNext:
		out.Changed = s.SelectNext()
	case CommandSelectPrev:
		out.Changed = s.SelectPrev()
	case CommandMoveItem:
		_, out.Changed = s.MoveSelected()
	case CommandDeleteItem:
		_, out.Changed = s.DeleteSelected()
	case CommandEnterInput:
		out.Changed = s.EnterInput()
	case CommandBackspace:
		out.Changed = s.BackspaceDraft()
	case CommandInsertChar:
		out.Changed = s.AppendDraft(key.Rune)
	case CommandCancelInput:
		out.Changed = s.CancelInput()
	case CommandConfirm:
		_, out.Changed = s.ConfirmInput()
	}
	return out
}
