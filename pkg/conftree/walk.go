package conftree

import "errors"

// SkipNode can be returned from a WalkFunc to skip the node's children.
var SkipNode = errors.New("conftree: skip node")

// WalkFunc is called for every node visited by Walk. path holds the names
// from the walk root (exclusive) down to n (inclusive); it is empty for the
// root. The slice is reused between calls and must be copied to be kept.
type WalkFunc func(path []string, n *Node) error

// Walk visits root and all of its descendants depth-first, in insertion
// order, parents before children.
func Walk(root *Node, fn WalkFunc) error {
	path := make([]string, 0, DefaultPathCapacity)
	err := walk(root, path, fn)
	if errors.Is(err, SkipNode) {
		return nil
	}
	return err
}

func walk(n *Node, path []string, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, child := range n.children {
		err := walk(child, append(path, child.name), fn)
		if errors.Is(err, SkipNode) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the number of levels in the tree rooted at n. A node with
// no children has depth 1.
func Depth(n *Node) int {
	maxChild := 0
	for _, child := range n.children {
		if d := Depth(child); d > maxChild {
			maxChild = d
		}
	}
	return maxChild + 1
}
