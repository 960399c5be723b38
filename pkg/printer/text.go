package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/confkit/pkg/conftree"
)

// printText prints a node in human-readable text format.
func (p *Printer) printText(n *conftree.Node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if _, err := fmt.Fprintf(p.writer, "%s[%s]\n", indent, n.Name()); err != nil {
		return err
	}

	if p.opts.PrintMetadata {
		fmt.Fprintf(p.writer, "%s  Nodes: %d, Leaves: %d\n", indent, n.NodeCount(), n.LeafCount())
	}

	if p.opts.ShowValues {
		leafIndent := strings.Repeat(" ", (depth+1)*p.opts.IndentSize)
		for l := range n.Leaves() {
			if _, err := fmt.Fprintf(p.writer, "%s%s = %s\n", leafIndent, l.Name(), strconv.Quote(l.Value())); err != nil {
				return err
			}
		}
	}

	if !p.descend(depth) {
		return nil
	}
	for child := range n.Nodes() {
		if err := p.printText(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
