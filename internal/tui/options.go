package tui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/hylla/tado/internal/app"
)

// Theme holds the colors used to paint a frame.
type Theme struct {
	Accent    color.Color
	Highlight color.Color
	Muted     color.Color
}

// Option configures a Model.
type Option func(*Model)

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:    lipgloss.Color("62"),
		Highlight: lipgloss.Color("3"),
		Muted:     lipgloss.Color("241"),
	}
}

// ThemeFromColors builds a theme from terminal color strings, keeping defaults for blanks.
func ThemeFromColors(accent, highlight, muted string) Theme {
	theme := DefaultTheme()
	theme.Accent = colorOr(accent, theme.Accent)
	theme.Highlight = colorOr(highlight, theme.Highlight)
	theme.Muted = colorOr(muted, theme.Muted)
	return theme
}

// colorOr parses value as a lipgloss color or returns fallback when blank.
func colorOr(value string, fallback color.Color) color.Color {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return lipgloss.Color(value)
}

// WithTheme sets the frame palette.
func WithTheme(theme Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithAltScreen toggles rendering on the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(m *Model) {
		m.altScreen = enabled
	}
}

// WithShowHelp toggles the bottom help line.
func WithShowHelp(enabled bool) Option {
	return func(m *Model) {
		m.showHelp = enabled
	}
}

// WithLogger routes per-key diagnostics to logger.
func WithLogger(logger app.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}
