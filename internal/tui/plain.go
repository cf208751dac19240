package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hylla/tado/internal/app"
)

// ErrNilWriter reports a plain renderer without an output.
var ErrNilWriter = errors.New("plain renderer writer is nil")

// frameSeparator divides consecutive frames in plain output.
const frameSeparator = "----"

// PlainRenderer writes frames as uncolored text for headless runs.
type PlainRenderer struct {
	w          io.Writer
	everyFrame bool
	frames     int
	clears     int
	last       *app.ViewModel
}

// NewPlainRenderer writes to w; when everyFrame is false only Flush writes.
func NewPlainRenderer(w io.Writer, everyFrame bool) *PlainRenderer {
	return &PlainRenderer{w: w, everyFrame: everyFrame}
}

// Render records vm and writes it when every frame is requested.
func (r *PlainRenderer) Render(vm app.ViewModel) error {
	if r.w == nil {
		return ErrNilWriter
	}
	r.frames++
	r.last = &vm
	if !r.everyFrame {
		return nil
	}
	return r.write(vm)
}

// Clear counts a screen clear and marks it in every-frame output.
func (r *PlainRenderer) Clear() error {
	if r.w == nil {
		return ErrNilWriter
	}
	r.clears++
	if !r.everyFrame {
		return nil
	}
	_, err := fmt.Fprintln(r.w, "(clear)")
	return err
}

// Flush writes the last frame when frames were not streamed.
func (r *PlainRenderer) Flush() error {
	if r.everyFrame || r.last == nil {
		return nil
	}
	if r.w == nil {
		return ErrNilWriter
	}
	return r.write(*r.last)
}

// Frames returns the number of rendered frames.
func (r *PlainRenderer) Frames() int {
	return r.frames
}

// Clears returns the number of screen clears.
func (r *PlainRenderer) Clears() int {
	return r.clears
}

// write emits one frame followed by the separator.
func (r *PlainRenderer) write(vm app.ViewModel) error {
	_, err := io.WriteString(r.w, PlainFrame(vm)+frameSeparator+"\n")
	return err
}

// PlainFrame formats vm as uncolored text. Done rows are wrapped in tildes
// and the selected row is prefixed with ">".
func PlainFrame(vm app.ViewModel) string {
	var b strings.Builder
	labels := make([]string, 0, len(vm.Tabs))
	for _, tab := range vm.Tabs {
		if tab.Active {
			labels = append(labels, "["+tab.Label+"]")
			continue
		}
		labels = append(labels, tab.Label)
	}
	b.WriteString(strings.Join(labels, " | "))
	b.WriteString("\n")
	b.WriteString("# " + vm.Title + "\n")
	if len(vm.Items) == 0 {
		b.WriteString("  " + emptyListText + "\n")
	}
	for _, item := range vm.Items {
		prefix := "  "
		if item.Selected {
			prefix = "> "
		}
		text := item.Text
		if item.Done {
			text = "~" + text + "~"
		}
		b.WriteString(prefix + text + "\n")
	}
	if vm.Overlay != nil {
		b.WriteString(vm.Overlay.Title + ": " + vm.Overlay.Text + "\n")
	}
	return b.String()
}
