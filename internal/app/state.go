package app

import (
	"fmt"

	"github.com/hylla/tado/internal/domain"
)

// Seed holds the initial item texts for both collections.
type Seed struct {
	Todo []string
	Done []string
}

// DefaultSeed returns the sample items shown on first launch.
func DefaultSeed() Seed {
	return Seed{
		Todo: []string{"make a todo tui app", "learning rust", "make a cup of tea"},
		Done: []string{"read a rust manual", "read arch linux wiki"},
	}
}

// State is the single mutable record of the application.
// Selection is only meaningful while the active collection is non-empty.
type State struct {
	collections [domain.TabCount]domain.Collection
	activeTab   domain.TabIndex
	selection   int
	inputMode   bool
	draft       []rune
}

// NewState constructs the startup state from seed items.
func NewState(seed Seed) *State {
	s := &State{activeTab: domain.TabTodo}
	s.collections[domain.TabTodo] = domain.NewCollection(domain.ItemsFromTexts(seed.Todo)...)
	s.collections[domain.TabDone] = domain.NewCollection(domain.ItemsFromTexts(seed.Done)...)
	return s
}

// ActiveTab returns the displayed tab.
func (s *State) ActiveTab() domain.TabIndex {
	return s.activeTab
}

// ActiveCollection returns a copy of the displayed collection.
func (s *State) ActiveCollection() domain.Collection {
	return s.collections[s.activeTab].Clone()
}

// Collection returns a copy of the collection for tab.
func (s *State) Collection(tab domain.TabIndex) domain.Collection {
	if !tab.Valid() {
		return domain.Collection{}
	}
	return s.collections[tab].Clone()
}

// TotalItems returns the item count across both collections.
func (s *State) TotalItems() int {
	total := 0
	for _, c := range s.collections {
		total += c.Len()
	}
	return total
}

// Selection returns the selected index and false when nothing is selectable.
func (s *State) Selection() (int, bool) {
	if s.collections[s.activeTab].Empty() {
		return 0, false
	}
	return s.selection, true
}

// SelectedItem returns the highlighted item of the active collection.
func (s *State) SelectedItem() (domain.Item, bool) {
	idx, ok := s.Selection()
	if !ok {
		return domain.Item{}, false
	}
	return s.collections[s.activeTab].At(idx)
}

// IsInputMode reports whether keystrokes edit the draft.
func (s *State) IsInputMode() bool {
	return s.inputMode
}

// DraftText returns the pending input text.
func (s *State) DraftText() string {
	return string(s.draft)
}

// NextTab activates the following tab.
func (s *State) NextTab() bool {
	return s.switchTab(s.activeTab.Next())
}

// PrevTab activates the preceding tab.
func (s *State) PrevTab() bool {
	return s.switchTab(s.activeTab.Prev())
}

// switchTab activates tab and re-clamps the selection.
func (s *State) switchTab(tab domain.TabIndex) bool {
	changed := tab != s.activeTab
	s.activeTab = tab
	if s.clampSelection() {
		changed = true
	}
	return changed
}

// SelectNext moves the selection down, wrapping at the end.
func (s *State) SelectNext() bool {
	return s.stepSelection(1)
}

// SelectPrev moves the selection up, wrapping at the start.
func (s *State) SelectPrev() bool {
	return s.stepSelection(-1)
}

// stepSelection moves the selection by delta within the active collection.
func (s *State) stepSelection(delta int) bool {
	total := s.collections[s.activeTab].Len()
	if total == 0 {
		return false
	}
	next := wrapIndex(s.selection, delta, total)
	changed := next != s.selection
	s.selection = next
	return changed
}

// MoveSelected transfers the selected item to the end of the other collection.
func (s *State) MoveSelected() (domain.Item, bool) {
	active := &s.collections[s.activeTab]
	if active.Empty() {
		return domain.Item{}, false
	}
	item, err := active.RemoveAt(s.selection)
	if err != nil {
		s.clampSelection()
		return domain.Item{}, false
	}
	s.collections[s.activeTab.Other()].Append(item)
	s.clampSelection()
	return item, true
}

// DeleteSelected permanently removes the selected item.
func (s *State) DeleteSelected() (domain.Item, bool) {
	active := &s.collections[s.activeTab]
	if active.Empty() {
		return domain.Item{}, false
	}
	item, err := active.RemoveAt(s.selection)
	if err != nil {
		s.clampSelection()
		return domain.Item{}, false
	}
	s.clampSelection()
	return item, true
}

// EnterInput switches to input mode with an empty draft.
func (s *State) EnterInput() bool {
	changed := !s.inputMode || len(s.draft) > 0
	s.inputMode = true
	s.draft = s.draft[:0]
	return changed
}

// AppendDraft adds one character to the draft.
func (s *State) AppendDraft(r rune) bool {
	if !s.inputMode {
		return false
	}
	s.draft = append(s.draft, r)
	return true
}

// BackspaceDraft drops the last draft character.
func (s *State) BackspaceDraft() bool {
	if !s.inputMode || len(s.draft) == 0 {
		return false
	}
	s.draft = s.draft[:len(s.draft)-1]
	return true
}

// CancelInput leaves input mode and discards the draft.
func (s *State) CancelInput() bool {
	if !s.inputMode {
		return false
	}
	s.inputMode = false
	s.draft = s.draft[:0]
	return true
}

// ConfirmInput appends the draft as a new item to the Todo collection.
// The destination is always Todo, whichever tab is displayed; check with
// product owners before routing it elsewhere.
func (s *State) ConfirmInput() (domain.Item, bool) {
	if !s.inputMode {
		return domain.Item{}, false
	}
	item := domain.NewItem(string(s.draft))
	s.collections[domain.TabTodo].Append(item)
	s.inputMode = false
	s.draft = s.draft[:0]
	// Adding to Todo never shrinks the active collection, so no clamp is needed.
	return item, true
}

// clampSelection restores the selection invariant for the active collection.
func (s *State) clampSelection() bool {
	total := s.collections[s.activeTab].Len()
	next := 0
	if total > 0 {
		next = clamp(s.selection, 0, total-1)
	}
	changed := next != s.selection
	s.selection = next
	return changed
}

// Summary returns a short one-line description for logs.
func (s *State) Summary() string {
	return fmt.Sprintf("tab=%s todo=%d done=%d input=%t",
		s.activeTab.Label(),
		s.collections[domain.TabTodo].Len(),
		s.collections[domain.TabDone].Len(),
		s.inputMode,
	)
}
