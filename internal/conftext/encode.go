package conftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/confkit/pkg/conftree"
)

// ErrUnencodableName is returned when a node or leaf name cannot be written
// in this format.
var ErrUnencodableName = errors.New("conftext: name cannot be encoded")

// EncodeOptions controls Encode.
type EncodeOptions struct {
	// OutputEncoding is one of "", "UTF-8", "UTF-16LE", "WINDOWS-1252".
	OutputEncoding string

	// WithBOM prefixes the output with a byte order mark (UTF-8 and UTF-16LE).
	WithBOM bool

	// LineEnding defaults to LF.
	LineEnding string
}

// Encode writes the tree rooted at root. The root's own name is not written.
// Leaves of the root come first, then every node with leaves, or with
// nothing at all, as a section, parents before children.
func Encode(root *conftree.Node, opts EncodeOptions) ([]byte, error) {
	eol := opts.LineEnding
	if eol == "" {
		eol = LF
	}

	var buf bytes.Buffer
	wroteAny := false

	err := conftree.Walk(root, func(path []string, n *conftree.Node) error {
		if len(path) > 0 {
			name := path[len(path)-1]
			if !validSectionName(name) {
				return fmt.Errorf("%w: node %q", ErrUnencodableName, name)
			}
			if !n.HasLeaves() && n.HasNodes() {
				return nil
			}
			if wroteAny {
				buf.WriteString(eol)
			}
			buf.WriteString(SectionOpen)
			buf.WriteString(strings.Join(path, SectionSeparator))
			buf.WriteString(SectionClose)
			buf.WriteString(eol)
			wroteAny = true
		}

		for l := range n.Leaves() {
			if !validLeafName(l.Name()) {
				return fmt.Errorf("%w: leaf %q", ErrUnencodableName, l.Name())
			}
			buf.WriteString(l.Name())
			buf.WriteString(" " + Assignment + " ")
			if needsQuoting(l.Value()) {
				buf.WriteString(quote(l.Value()))
			} else {
				buf.WriteString(l.Value())
			}
			buf.WriteString(eol)
			wroteAny = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return encodeOutput(buf.Bytes(), opts.OutputEncoding, opts.WithBOM)
}
