package conftree

// Leaf is a named string value owned by exactly one Node.
//
// Leaf performs no validation. Deciding whether a write is a change is the
// job of Node.SetLeaf.
type Leaf struct {
	name  string
	value string
}

// NewLeaf creates a detached leaf.
func NewLeaf(name, value string) *Leaf {
	return &Leaf{name: name, value: value}
}

// Name returns the leaf's name. It never changes after construction.
func (l *Leaf) Name() string { return l.name }

// Value returns the leaf's current value.
func (l *Leaf) Value() string { return l.value }

// SetValue overwrites the value unconditionally.
func (l *Leaf) SetValue(value string) { l.value = value }
