package assemble

import "slices"

// List is the accumulating sequence handle of an open scope. It holds a
// back-reference to its owning scope; the scope holds no reference to
// any child opened against the list.
type List struct {
	items []string
	owner *Scope
}

func newList(initial []string, owner *Scope) *List {
	return &List{items: slices.Clone(initial), owner: owner}
}

// Append adds items to the end of the sequence.
func (l *List) Append(items ...string) {
	l.items = append(l.items, items...)
}

// Extend appends every element of items to the sequence.
func (l *List) Extend(items []string) {
	l.items = append(l.items, items...)
}

// Items returns a copy of the current sequence contents.
func (l *List) Items() []string {
	return slices.Clone(l.items)
}

// Len returns the number of accumulated items.
func (l *List) Len() int {
	return len(l.items)
}

// Owner returns the scope this list accumulates for, or nil for a
// free-standing list.
func (l *List) Owner() *Scope {
	return l.owner
}
