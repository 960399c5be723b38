package conftree

import (
	"iter"
	"slices"
	"strings"
)

// Node is a named container of child nodes and leaves.
//
// The zero value is not usable; create nodes with NewNode or through a
// parent's AddNode and CreateNode.
type Node struct {
	name     string
	children []*Node
	leaves   []*Leaf
}

// NewNode creates an empty, detached node.
func NewNode(name string) *Node {
	return &Node{
		name:     name,
		children: make([]*Node, 0),
		leaves:   make([]*Leaf, 0),
	}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// ============================================================================
// Child nodes
// ============================================================================

// Node returns the first child named name, or nil if there is none.
func (n *Node) Node(name string) *Node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// AddNode returns the child named name, creating and appending it if it
// does not exist yet.
func (n *Node) AddNode(name string) *Node {
	if child := n.Node(name); child != nil {
		return child
	}
	return n.CreateNode(name)
}

// CreateNode appends a new child named name without checking for an
// existing one.
//
// The caller must guarantee that no child with this name exists. If one
// does, the tree ends up with two children of the same name and every
// name-based lookup keeps returning the older one.
func (n *Node) CreateNode(name string) *Node {
	child := NewNode(name)
	n.children = append(n.children, child)
	return child
}

// attach appends an already built node as a child. No name check, no
// ownership check: child must not be reachable from anywhere else.
// Reserved for Config.
func (n *Node) attach(child *Node) {
	n.children = append(n.children, child)
}

// RemoveNode removes child from this node's children. The comparison is by
// identity, not by name. Removing a node that is not a child is a no-op.
func (n *Node) RemoveNode(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// NodeCount returns the number of direct children.
func (n *Node) NodeCount() int { return len(n.children) }

// NodeAt returns the child at index i in insertion order.
// It panics with an *IndexError if i is outside [0, NodeCount()).
func (n *Node) NodeAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		panic(&IndexError{Kind: "node", Index: i, Count: len(n.children)})
	}
	return n.children[i]
}

// Nodes yields the direct children in insertion order.
// The children must not be modified while the sequence is being ranged over.
func (n *Node) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, child := range n.children {
			if !yield(child) {
				return
			}
		}
	}
}

// HasNodes reports whether the node has any children.
func (n *Node) HasNodes() bool { return len(n.children) > 0 }

// ============================================================================
// Leaves
// ============================================================================

// leaf returns the first leaf named name, or nil.
func (n *Node) leaf(name string) *Leaf {
	for _, l := range n.leaves {
		if l.name == name {
			return l
		}
	}
	return nil
}

// LeafEntry returns the leaf cell named name, or nil if there is none.
// Writing through the returned Leaf bypasses change reporting.
func (n *Node) LeafEntry(name string) *Leaf {
	return n.leaf(name)
}

// Leaf returns the value of the leaf named name and whether it exists.
func (n *Node) Leaf(name string) (string, bool) {
	l := n.leaf(name)
	if l == nil {
		return "", false
	}
	return l.value, true
}

// SetLeaf sets the leaf named name to value and reports whether the tree
// changed.
//
// When no such leaf exists, a blank value (empty after trimming whitespace)
// is ignored and a non-blank value creates the leaf. When the leaf exists,
// its value is overwritten unless it is already equal to value. Overwriting
// with a blank value is allowed: blank only means absent on creation.
func (n *Node) SetLeaf(name, value string) bool {
	l := n.leaf(name)
	if l == nil {
		if strings.TrimSpace(value) == "" {
			return false
		}
		n.leaves = append(n.leaves, NewLeaf(name, value))
		return true
	}
	if l.value == value {
		return false
	}
	l.SetValue(value)
	return true
}

// UnsetLeaf removes the leaf named name and reports whether it existed.
func (n *Node) UnsetLeaf(name string) bool {
	l := n.leaf(name)
	if l == nil {
		return false
	}
	n.leaves = slices.DeleteFunc(n.leaves, func(x *Leaf) bool { return x == l })
	return true
}

// LeafCount returns the number of leaves.
func (n *Node) LeafCount() int { return len(n.leaves) }

// LeafAt returns the leaf at index i in insertion order.
// It panics with an *IndexError if i is outside [0, LeafCount()).
func (n *Node) LeafAt(i int) *Leaf {
	if i < 0 || i >= len(n.leaves) {
		panic(&IndexError{Kind: "leaf", Index: i, Count: len(n.leaves)})
	}
	return n.leaves[i]
}

// Leaves yields the leaves in insertion order.
// The leaves must not be modified while the sequence is being ranged over.
func (n *Node) Leaves() iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		for _, l := range n.leaves {
			if !yield(l) {
				return
			}
		}
	}
}

// HasLeaves reports whether the node has any leaves.
func (n *Node) HasLeaves() bool { return len(n.leaves) > 0 }

// IsEmpty reports whether the node has neither children nor leaves.
func (n *Node) IsEmpty() bool { return len(n.children) == 0 && len(n.leaves) == 0 }
