package conftree

import (
	"fmt"
	"slices"
	"strings"
)

// ChangeKind identifies the mutation described by a Change.
type ChangeKind int

const (
	// ChangeSet is a leaf created or overwritten.
	ChangeSet ChangeKind = iota + 1
	// ChangeUnset is a leaf removed.
	ChangeUnset
	// ChangeRemoveSection is a node removed with its whole subtree.
	ChangeRemoveSection
	// ChangeGraft is a prebuilt subtree attached.
	ChangeGraft
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSet:
		return "set"
	case ChangeUnset:
		return "unset"
	case ChangeRemoveSection:
		return "remove-section"
	case ChangeGraft:
		return "graft"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change describes one mutation applied through Config.
type Change struct {
	Kind ChangeKind
	Path string // dotted path of the leaf or node that changed

	// Old and New are leaf values. HadOld is false when the leaf was created.
	Old    string
	New    string
	HadOld bool
}

// Listener receives changes after they have been applied.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Config manages a tree through dotted paths and tracks whether it has been
// modified since the last ClearDirty. Listeners are called synchronously,
// in subscription order, only when the tree actually changed.
//
// Config is not safe for concurrent use.
type Config struct {
	root      *Node
	dirty     bool
	listeners []subscription
	nextID    int
}

// NewConfig creates a Config around a new empty root node.
func NewConfig(rootName string) *Config {
	return Wrap(NewNode(rootName))
}

// Wrap creates a Config that manages an existing tree. The tree starts clean.
func Wrap(root *Node) *Config {
	return &Config{root: root}
}

// Root returns the root node.
func (c *Config) Root() *Node { return c.root }

// Dirty reports whether the tree changed since creation or the last
// ClearDirty.
func (c *Config) Dirty() bool { return c.dirty }

// ClearDirty resets the dirty flag, typically after the tree was saved.
func (c *Config) ClearDirty() { c.dirty = false }

// Subscribe registers fn and returns a function that unregisters it.
func (c *Config) Subscribe(fn Listener) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(s subscription) bool { return s.id == id })
	}
}

// SplitPath splits a dotted path into segments.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(path, PathSeparator)
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

// Lookup returns the node at path, or nil if any segment is missing or the
// path is invalid. The empty path names the root.
func (c *Config) Lookup(path string) *Node {
	if path == "" {
		return c.root
	}
	segments, err := SplitPath(path)
	if err != nil {
		return nil
	}
	return descend(c.root, segments)
}

// Get returns the value of the leaf at path.
func (c *Config) Get(path string) (string, bool) {
	segments, err := SplitPath(path)
	if err != nil {
		return "", false
	}
	parent := descend(c.root, segments[:len(segments)-1])
	if parent == nil {
		return "", false
	}
	return parent.Leaf(segments[len(segments)-1])
}

// Set writes value to the leaf at path, creating intermediate nodes as
// needed, and reports whether the tree changed. Intermediate nodes are not
// created for a write that would be ignored anyway.
func (c *Config) Set(path, value string) (bool, error) {
	segments, err := SplitPath(path)
	if err != nil {
		return false, err
	}
	name := segments[len(segments)-1]

	parent := descend(c.root, segments[:len(segments)-1])
	if parent == nil {
		if strings.TrimSpace(value) == "" {
			return false, nil
		}
		parent = c.root
		for _, s := range segments[:len(segments)-1] {
			parent = parent.AddNode(s)
		}
	}

	old, hadOld := parent.Leaf(name)
	if !parent.SetLeaf(name, value) {
		return false, nil
	}
	c.changed(Change{Kind: ChangeSet, Path: path, Old: old, New: value, HadOld: hadOld})
	return true, nil
}

// Unset removes the leaf at path and reports whether it existed. Nodes left
// empty by the removal are pruned, up to but excluding the root.
func (c *Config) Unset(path string) (bool, error) {
	segments, err := SplitPath(path)
	if err != nil {
		return false, err
	}

	chain := make([]*Node, 1, len(segments))
	chain[0] = c.root
	for _, s := range segments[:len(segments)-1] {
		next := chain[len(chain)-1].Node(s)
		if next == nil {
			return false, nil
		}
		chain = append(chain, next)
	}

	parent := chain[len(chain)-1]
	old, _ := parent.Leaf(segments[len(segments)-1])
	if !parent.UnsetLeaf(segments[len(segments)-1]) {
		return false, nil
	}
	for i := len(chain) - 1; i > 0 && chain[i].IsEmpty(); i-- {
		chain[i-1].RemoveNode(chain[i])
	}

	c.changed(Change{Kind: ChangeUnset, Path: path, Old: old, HadOld: true})
	return true, nil
}

// RemoveSection removes the node at path together with its subtree and
// reports whether it existed.
func (c *Config) RemoveSection(path string) (bool, error) {
	segments, err := SplitPath(path)
	if err != nil {
		return false, err
	}
	parent := descend(c.root, segments[:len(segments)-1])
	if parent == nil {
		return false, nil
	}
	child := parent.Node(segments[len(segments)-1])
	if child == nil {
		return false, nil
	}
	parent.RemoveNode(child)
	c.changed(Change{Kind: ChangeRemoveSection, Path: path})
	return true, nil
}

// Graft attaches sub, an already built subtree, as a child of the node at
// path (the root when path is empty). Missing nodes along path are created.
//
// sub must not be reachable from any other node. Graft rejects the cases it
// can see: a sibling with the same name (ErrNodeExists) and sub sitting on
// the path itself (ErrCycle).
func (c *Config) Graft(path string, sub *Node) error {
	var segments []string
	if path != "" {
		var err error
		if segments, err = SplitPath(path); err != nil {
			return err
		}
	}

	// Check against the part of the path that already exists before
	// creating anything, so a rejected graft leaves the tree untouched.
	target, existing := c.root, 0
	for _, s := range segments {
		if target == sub {
			return fmt.Errorf("%w: %q", ErrCycle, sub.name)
		}
		next := target.Node(s)
		if next == nil {
			break
		}
		target = next
		existing++
	}
	if target == sub {
		return fmt.Errorf("%w: %q", ErrCycle, sub.name)
	}
	if existing == len(segments) && target.Node(sub.name) != nil {
		return fmt.Errorf("%w: %q under %q", ErrNodeExists, sub.name, path)
	}

	for _, s := range segments[existing:] {
		target = target.CreateNode(s)
	}
	target.attach(sub)

	c.changed(Change{Kind: ChangeGraft, Path: joinLeaf(path, sub.name)})
	return nil
}

// descend follows segments from n using name lookups only.
func descend(n *Node, segments []string) *Node {
	for _, s := range segments {
		if n = n.Node(s); n == nil {
			return nil
		}
	}
	return n
}

func (c *Config) changed(ch Change) {
	c.dirty = true
	// Listeners may unsubscribe while being notified.
	for _, s := range slices.Clone(c.listeners) {
		s.fn(ch)
	}
}
