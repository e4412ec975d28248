package types

// Tag is a named label shared across all recipes. A tag may carry one
// optional Child tag, forming a chain of increasingly specific tags
// ("Dinner" -> "Italian"). The chain is persisted through the tags table's
// parent column, not through the recipe-tag link rows.
type Tag struct {
	Name  string `json:"name"`
	Child *Tag   `json:"child,omitempty"`
}

// Validate checks that the tag and every tag in its child chain are named.
func (t Tag) Validate() error {
	if t.Name == "" {
		return ErrInvalidName
	}
	if t.Child != nil {
		return t.Child.Validate()
	}
	return nil
}

// Chain returns the tag names from this tag down its child chain, in order.
func (t Tag) Chain() []string {
	names := []string{t.Name}
	for child := t.Child; child != nil; child = child.Child {
		names = append(names, child.Name)
	}
	return names
}
