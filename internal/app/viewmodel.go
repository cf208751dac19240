package app

import "github.com/hylla/tado/internal/domain"

// cursorMarker trails the draft text in the input overlay.
const cursorMarker = "|"

// overlayTitle labels the input overlay block.
const overlayTitle = "Input"

// TabView describes one entry of the tab strip.
type TabView struct {
	Label  string
	Active bool
}

// ItemView describes one rendered list row.
type ItemView struct {
	Text     string
	Done     bool
	Selected bool
}

// OverlayView describes the modal text-entry box.
type OverlayView struct {
	Title string
	Text  string
}

// ViewModel is the renderable description of one frame.
type ViewModel struct {
	Tabs      []TabView
	ActiveTab domain.TabIndex
	Title     string
	Items     []ItemView
	Overlay   *OverlayView
	Mode      string
	Counts    [domain.TabCount]int
}

// Project derives the view model from state without mutating it.
func Project(s *State) ViewModel {
	vm := ViewModel{
		Tabs:      make([]TabView, 0, domain.TabCount),
		ActiveTab: s.ActiveTab(),
		Title:     s.ActiveTab().Label(),
		Mode:      "navigate",
	}
	for _, tab := range domain.Tabs() {
		vm.Tabs = append(vm.Tabs, TabView{Label: tab.Label(), Active: tab == s.ActiveTab()})
		vm.Counts[tab] = s.Collection(tab).Len()
	}

	active := s.ActiveCollection()
	selected, hasSelection := s.Selection()
	done := s.ActiveTab() == domain.TabDone
	vm.Items = make([]ItemView, 0, active.Len())
	for idx, item := range active.Items() {
		vm.Items = append(vm.Items, ItemView{
			Text:     item.Text(),
			Done:     done,
			Selected: hasSelection && idx == selected,
		})
	}

	if s.IsInputMode() {
		vm.Mode = "input"
		vm.Overlay = &OverlayView{
			Title: overlayTitle,
			Text:  s.DraftText() + cursorMarker,
		}
	}
	return vm
}
