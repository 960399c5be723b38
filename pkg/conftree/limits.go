package conftree

import (
	"fmt"
	"strings"
)

// Limits bounds the size of a tree. A zero field disables that check.
// Limits never look at what a value contains, only at how big it is.
type Limits struct {
	// MaxChildren is the maximum number of children of a single node.
	MaxChildren int

	// MaxLeaves is the maximum number of leaves of a single node.
	MaxLeaves int

	// MaxNameLen is the maximum length of a node or leaf name in bytes.
	MaxNameLen int

	// MaxValueLen is the maximum length of a leaf value in bytes.
	MaxValueLen int

	// MaxDepth is the maximum number of levels, the root counting as one.
	MaxDepth int
}

// DefaultLimits returns limits suitable for application configuration files.
func DefaultLimits() Limits {
	return Limits{
		MaxChildren: DefaultMaxChildren,
		MaxLeaves:   DefaultMaxLeaves,
		MaxNameLen:  DefaultMaxNameLen,
		MaxValueLen: DefaultMaxValueLen,
		MaxDepth:    DefaultMaxDepth,
	}
}

// RelaxedLimits returns limits that allow large values and deep trees.
func RelaxedLimits() Limits {
	return Limits{
		MaxChildren: DefaultMaxChildren,
		MaxLeaves:   DefaultMaxLeaves,
		MaxNameLen:  DefaultMaxNameLen,
		MaxValueLen: RelaxedMaxValueLen,
		MaxDepth:    RelaxedMaxDepth,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxChildren: DefaultMaxChildren / StrictCountDivisor,
		MaxLeaves:   DefaultMaxLeaves / StrictCountDivisor,
		MaxNameLen:  StrictMaxNameLen,
		MaxValueLen: StrictMaxValueLen,
		MaxDepth:    StrictMaxDepth,
	}
}

// ValidationError reports the first limit a tree exceeded.
type ValidationError struct {
	Limit   string // name of the exceeded limit, e.g. "MaxDepth"
	Current int
	Maximum int
	Path    string // dotted path of the offending node or leaf, "" for the root
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("conftree: limit exceeded at '%s': %s is %d (max %d)",
			e.Path, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("conftree: limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// Validate checks the tree rooted at root against limits and returns a
// *ValidationError for the first violation found, depth-first.
func Validate(root *Node, limits Limits) error {
	return Walk(root, func(path []string, n *Node) error {
		at := strings.Join(path, PathSeparator)

		if len(path) > 0 {
			if err := check("MaxNameLen", len(n.name), limits.MaxNameLen, at); err != nil {
				return err
			}
		}
		// path excludes the root, so the node sits at level len(path)+1.
		if err := check("MaxDepth", len(path)+1, limits.MaxDepth, at); err != nil {
			return err
		}
		if err := check("MaxChildren", len(n.children), limits.MaxChildren, at); err != nil {
			return err
		}
		if err := check("MaxLeaves", len(n.leaves), limits.MaxLeaves, at); err != nil {
			return err
		}
		for _, l := range n.leaves {
			leafAt := joinLeaf(at, l.name)
			if err := check("MaxNameLen", len(l.name), limits.MaxNameLen, leafAt); err != nil {
				return err
			}
			if err := check("MaxValueLen", len(l.value), limits.MaxValueLen, leafAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func check(limit string, current, maximum int, path string) error {
	if maximum > 0 && current > maximum {
		return &ValidationError{Limit: limit, Current: current, Maximum: maximum, Path: path}
	}
	return nil
}

func joinLeaf(nodePath, leaf string) string {
	if nodePath == "" {
		return leaf
	}
	return nodePath + PathSeparator + leaf
}
