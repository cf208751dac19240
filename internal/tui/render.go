package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/hylla/tado/internal/app"
	"github.com/hylla/tado/internal/domain"
)

// defaultFrameWidth is used before the first window size message.
const defaultFrameWidth = 60

// emptyListText marks a collection with no items.
const emptyListText = "(empty)"

// frameOptions carries presentation inputs for renderFrame.
type frameOptions struct {
	theme    Theme
	width    int
	height   int
	helpLine string
}

// renderFrame paints a view model: tab strip, item list, status, help and
// the centered input overlay when present.
func renderFrame(vm app.ViewModel, opts frameOptions) string {
	width := opts.width
	if width <= 0 {
		width = defaultFrameWidth
	}
	theme := opts.theme
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1).
		Width(max(4, width))

	tabs := box.Render(renderTabs(vm, theme))

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(vm.Title)
	list := box.BorderForeground(theme.Accent).Render(title + "\n" + renderItems(vm, theme, max(1, width-4)))

	status := muted.Render(fmt.Sprintf("todo %d • done %d • %s", vm.Counts[domain.TabTodo], vm.Counts[domain.TabDone], vm.Mode))

	sections := []string{tabs, list, status}
	if strings.TrimSpace(opts.helpLine) != "" {
		sections = append(sections, muted.Render(opts.helpLine))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	height := lipgloss.Height(content)
	if opts.height > 0 {
		height = opts.height
		content = fitLines(content, height)
	}

	if vm.Overlay != nil {
		content = overlayOnContent(content, renderOverlay(vm.Overlay, theme, width), width, height)
	}
	return content
}

// renderTabs renders the tab strip with the active label highlighted.
func renderTabs(vm app.ViewModel, theme Theme) string {
	active := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	inactive := lipgloss.NewStyle().Foreground(theme.Muted)
	parts := make([]string, 0, len(vm.Tabs))
	for _, tab := range vm.Tabs {
		if tab.Active {
			parts = append(parts, active.Render("["+tab.Label+"]"))
			continue
		}
		parts = append(parts, inactive.Render(" "+tab.Label+" "))
	}
	return strings.Join(parts, inactive.Render(" | "))
}

// renderItems renders list rows; done rows are struck through and italic,
// the selected row uses the highlight color.
func renderItems(vm app.ViewModel, theme Theme, maxWidth int) string {
	if len(vm.Items) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Italic(true).Render(emptyListText)
	}
	lines := make([]string, 0, len(vm.Items))
	for _, item := range vm.Items {
		style := lipgloss.NewStyle()
		if item.Done {
			style = style.Strikethrough(true).Italic(true)
		}
		prefix := "  "
		if item.Selected {
			style = style.Foreground(theme.Highlight).Bold(true)
			prefix = "> "
		}
		lines = append(lines, prefix+style.Render(truncate(item.Text, maxWidth-2)))
	}
	return strings.Join(lines, "\n")
}

// renderOverlay renders the modal input box.
func renderOverlay(overlay *app.OverlayView, theme Theme, width int) string {
	boxWidth := clamp(width*6/10, 16, max(16, width-4))
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(overlay.Title)
	body := truncateLeft(overlay.Text, boxWidth-4)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1).
		Width(boxWidth).
		Render(title + "\n" + body)
}

// clamp bounds v to the inclusive range [minV, maxV].
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// fitLines pads or truncates content to exactly maxLines lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent composes overlay centered above base.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centered := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
	overlayLayer := lipgloss.NewLayer(centered).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}

// truncateLeft keeps the tail of s so the cursor stays visible.
func truncateLeft(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[len(rs)-max:])
	}
	return "…" + string(rs[len(rs)-max+1:])
}
