package domain

// Item is one immutable line of text owned by a single collection.
type Item struct {
	text string
}

// NewItem constructs an item holding text verbatim; empty text is allowed.
func NewItem(text string) Item {
	return Item{text: text}
}

// Text returns the item text.
func (i Item) Text() string {
	return i.text
}

// String implements fmt.Stringer.
func (i Item) String() string {
	return i.text
}

// ItemsFromTexts builds items for each text in order.
func ItemsFromTexts(texts []string) []Item {
	out := make([]Item, 0, len(texts))
	for _, text := range texts {
		out = append(out, NewItem(text))
	}
	return out
}
