package conftree

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by the *IndexError that NodeAt and
	// LeafAt panic with.
	ErrIndexOutOfRange = errors.New("conftree: index out of range")

	// ErrInvalidPath is returned for empty paths or paths with empty segments.
	ErrInvalidPath = errors.New("conftree: invalid path")

	// ErrNodeExists is returned by Config.Graft when the target already has
	// a child with the grafted node's name.
	ErrNodeExists = errors.New("conftree: node already exists")

	// ErrCycle is returned by Config.Graft when the grafted node is already
	// on the path it would be attached under.
	ErrCycle = errors.New("conftree: graft would create a cycle")
)

// IndexError describes an out-of-range indexed access.
type IndexError struct {
	Kind  string // "node" or "leaf"
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("conftree: %s index %d out of range [0, %d)", e.Kind, e.Index, e.Count)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
