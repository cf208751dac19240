package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/hylla/tado/internal/app"
	"github.com/hylla/tado/internal/domain"
)

// terminal key codes recognized by toDomainKey.
const (
	keyCodeTab       = tea.KeyTab
	keyCodeEnter     = tea.KeyEnter
	keyCodeEscape    = tea.KeyEscape
	keyCodeBackspace = tea.KeyBackspace
	keyCodeSpace     = tea.KeySpace
)

// commandHelp stores the help description for each navigation command.
var commandHelp = map[app.Command]string{
	app.CommandEnterInput:  "add item",
	app.CommandSelectNext:  "next item",
	app.CommandSelectPrev:  "previous item",
	app.CommandTabNext:     "next tab",
	app.CommandTabPrev:     "previous tab",
	app.CommandMoveItem:    "move to other tab",
	app.CommandDeleteItem:  "delete item",
	app.CommandClearScreen: "redraw",
	app.CommandQuit:        "quit",
}

// keyMap holds help bindings for both input states.
type keyMap struct {
	navigation []key.Binding
	input      []key.Binding
	inputMode  bool
}

// newKeyMap builds help bindings from the fixed navigation table.
func newKeyMap() keyMap {
	bindings := app.NavigationBindings()
	nav := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		name := b.Key.String()
		nav = append(nav, key.NewBinding(key.WithKeys(name), key.WithHelp(name, commandHelp[b.Command])))
	}
	return keyMap{
		navigation: nav,
		input: []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to Todo")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
		},
	}
}

// forMode returns a copy of the key map describing the given input state.
func (k keyMap) forMode(inputMode bool) keyMap {
	k.inputMode = inputMode
	return k
}

// ShortHelp returns the bindings of the current input state.
func (k keyMap) ShortHelp() []key.Binding {
	if k.inputMode {
		return k.input
	}
	return k.navigation
}

// FullHelp returns navigation and input bindings as separate columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.navigation, k.input}
}

// toDomainKey translates a terminal key press into the core keystroke type.
func toDomainKey(code rune, text string, shift, ctrl, alt bool) domain.Key {
	switch {
	case ctrl && (code == 'c' || code == 'C'):
		return domain.NamedKey(domain.KeyInterrupt)
	case ctrl || alt:
		return domain.NamedKey(domain.KeyOther)
	}
	switch code {
	case keyCodeTab:
		if shift {
			return domain.NamedKey(domain.KeyShiftTab)
		}
		return domain.NamedKey(domain.KeyTab)
	case keyCodeEnter:
		return domain.NamedKey(domain.KeyEnter)
	case keyCodeEscape:
		return domain.NamedKey(domain.KeyEscape)
	case keyCodeBackspace:
		return domain.NamedKey(domain.KeyBackspace)
	case keyCodeSpace:
		return domain.RuneKey(' ')
	}
	runes := []rune(text)
	if len(runes) == 1 {
		return domain.RuneKey(runes[0])
	}
	return domain.NamedKey(domain.KeyOther)
}

// keyFromMsg translates a bubbletea key press into the core keystroke type.
func keyFromMsg(msg tea.KeyPressMsg) domain.Key {
	return toDomainKey(
		msg.Code,
		msg.Text,
		msg.Mod&tea.ModShift != 0,
		msg.Mod&tea.ModCtrl != 0,
		msg.Mod&tea.ModAlt != 0,
	)
}
