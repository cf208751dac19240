package app

import "github.com/hylla/tado/internal/domain"

// KeySource produces keystrokes one at a time; any error ends input.
type KeySource interface {
	ReadKey() (domain.Key, error)
}

// Renderer paints one view model; it never feeds back into state.
type Renderer interface {
	Render(ViewModel) error
	Clear() error
}

// Logger receives structured runtime events.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
}

// nopLogger discards every event.
type nopLogger struct{}

// Debug discards the event.
func (nopLogger) Debug(string, ...any) {}

// Info discards the event.
func (nopLogger) Info(string, ...any) {}

// NopLogger returns a Logger that discards every event.
func NopLogger() Logger {
	return nopLogger{}
}
