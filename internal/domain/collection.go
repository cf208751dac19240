package domain

// Collection is an ordered, index-addressable sequence of items.
type Collection struct {
	items []Item
}

// NewCollection constructs a collection holding a copy of items.
func NewCollection(items ...Item) Collection {
	return Collection{items: append([]Item(nil), items...)}
}

// Len returns the number of items.
func (c Collection) Len() int {
	return len(c.items)
}

// Empty reports whether the collection has no items.
func (c Collection) Empty() bool {
	return len(c.items) == 0
}

// At returns the item at idx.
func (c Collection) At(idx int) (Item, bool) {
	if idx < 0 || idx >= len(c.items) {
		return Item{}, false
	}
	return c.items[idx], true
}

// Items returns a copy of the items in order.
func (c Collection) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Clone returns a collection that shares no storage with c.
func (c Collection) Clone() Collection {
	return NewCollection(c.items...)
}

// Texts returns the item texts in order.
func (c Collection) Texts() []string {
	out := make([]string, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Text())
	}
	return out
}

// Append adds an item at the end.
func (c *Collection) Append(item Item) {
	c.items = append(c.items, item)
}

// RemoveAt removes and returns the item at idx.
func (c *Collection) RemoveAt(idx int) (Item, error) {
	if idx < 0 || idx >= len(c.items) {
		return Item{}, ErrIndexOutOfRange
	}
	item := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return item, nil
}

// InsertAt places item at idx, shifting later items; idx == Len appends.
func (c *Collection) InsertAt(idx int, item Item) error {
	if idx < 0 || idx > len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items = append(c.items, Item{})
	copy(c.items[idx+1:], c.items[idx:])
	c.items[idx] = item
	return nil
}
