package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/glamour"
)

// minWrapWidth bounds the glamour wrap width from below.
const minWrapWidth = 24

// markdownRenderer renders markdown for terminal output and recreates the renderer when wrap width changes.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render converts markdown input into ANSI-styled terminal text with the requested wrap width.
func (r *markdownRenderer) render(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}

	wrapWidth := width
	if wrapWidth < minWrapWidth {
		wrapWidth = minWrapWidth
	}

	if r.renderer == nil || r.width != wrapWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrapWidth),
		)
		if err != nil {
			return markdown
		}
		r.renderer = renderer
		r.width = wrapWidth
	}

	rendered, err := r.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(rendered, "\n")
}

// KeyReferenceMarkdown documents every key binding as markdown tables.
func KeyReferenceMarkdown() string {
	keys := newKeyMap()
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("## Navigation\n\n")
	writeBindingTable(&b, keys.navigation)
	b.WriteString("\n## Input\n\n")
	b.WriteString("Printable keys are appended to the draft. New items always land in **Todo**.\n\n")
	writeBindingTable(&b, keys.input)
	b.WriteString("\n`ctrl+c` quits from either mode.\n")
	return b.String()
}

// RenderKeyReference returns the key reference styled for a terminal of width columns.
func RenderKeyReference(width int) string {
	var r markdownRenderer
	return r.render(KeyReferenceMarkdown(), width)
}

// writeBindingTable appends a key/action table for bindings.
func writeBindingTable(b *strings.Builder, bindings []key.Binding) {
	b.WriteString("| Key | Action |\n")
	b.WriteString("| --- | --- |\n")
	for _, binding := range bindings {
		h := binding.Help()
		b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
	}
}
