package domain

// TabIndex identifies one of the two fixed collections.
type TabIndex int

// TabTodo and related constants define the fixed tab set.
const (
	TabTodo TabIndex = iota
	TabDone
)

// TabCount is the number of fixed tabs.
const TabCount = 2

// tabLabels stores display labels in tab order.
var tabLabels = [TabCount]string{"Todo", "Done"}

// Tabs returns every tab index in display order.
func Tabs() []TabIndex {
	return []TabIndex{TabTodo, TabDone}
}

// Valid reports whether the index names a known tab.
func (t TabIndex) Valid() bool {
	return t >= 0 && int(t) < TabCount
}

// Label returns the display label for the tab.
func (t TabIndex) Label() string {
	if !t.Valid() {
		return ""
	}
	return tabLabels[t]
}

// Other returns the opposite tab of the two-tab pair (1 - index).
// With more than two tabs "other" would have to mean every remaining tab,
// and move-item would need an explicit destination policy.
func (t TabIndex) Other() TabIndex {
	return 1 - t
}

// Next returns the following tab, wrapping around.
func (t TabIndex) Next() TabIndex {
	return (t + 1) % TabCount
}

// Prev returns the preceding tab, wrapping around.
func (t TabIndex) Prev() TabIndex {
	return (t + TabCount - 1) % TabCount
}
