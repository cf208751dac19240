package domain

import (
	"fmt"
	"unicode"
)

// KeyKind classifies one abstract keystroke.
type KeyKind int

// KeyRune and related constants define the keystroke kinds the core understands.
const (
	KeyOther KeyKind = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyShiftTab
	// KeyInterrupt is the terminal interrupt (ctrl+c); it ends input like a closed source.
	KeyInterrupt
)

// keyKindNames stores display names for non-rune kinds.
var keyKindNames = map[KeyKind]string{
	KeyOther:     "other",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyShiftTab:  "shift+tab",
	KeyInterrupt: "ctrl+c",
}

// Key is one immutable keystroke event.
type Key struct {
	Kind KeyKind
	Rune rune
}

// RuneKey constructs a character keystroke.
func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// NamedKey constructs a non-character keystroke.
func NamedKey(kind KeyKind) Key {
	return Key{Kind: kind}
}

// Printable reports whether the key carries a printable character.
func (k Key) Printable() bool {
	return k.Kind == KeyRune && unicode.IsPrint(k.Rune)
}

// String returns a readable key name.
func (k Key) String() string {
	if k.Kind == KeyRune {
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	}
	if name, ok := keyKindNames[k.Kind]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k.Kind))
}
