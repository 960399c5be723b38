// Package printer renders configuration trees for people and scripts.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/confkit/internal/conftext"
	"github.com/joshuapare/confkit/internal/confyaml"
	"github.com/joshuapare/confkit/pkg/conftree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"

	// FormatConf outputs the sectioned text configuration format.
	FormatConf Format = "conf"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels below the printed node are shown
	// (0 = unlimited). Ignored by FormatConf and FormatYAML.
	// Default: 0
	MaxDepth int

	// ShowValues includes leaves in the output.
	// Default: true
	ShowValues bool

	// PrintMetadata includes child and leaf counts.
	// Default: false
	PrintMetadata bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		ShowValues:    true,
		PrintMetadata: false,
	}
}

// Printer writes formatted trees to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(cfg.Lookup("window"))
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print renders n and, depending on the options, its subtree.
func (p *Printer) Print(n *conftree.Node) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(n)
	case FormatConf:
		out, err := conftext.Encode(n, conftext.EncodeOptions{})
		if err != nil {
			return err
		}
		_, err = p.writer.Write(out)
		return err
	case FormatYAML:
		out, err := confyaml.Encode(n)
		if err != nil {
			return err
		}
		_, err = p.writer.Write(out)
		return err
	case FormatText, "":
		return p.printText(n, 0)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// PrintLeaf prints a single leaf value followed by a newline.
func (p *Printer) PrintLeaf(n *conftree.Node, name string) error {
	value, ok := n.Leaf(name)
	if !ok {
		return fmt.Errorf("leaf %q not found", name)
	}
	if p.opts.Format == FormatJSON {
		return p.printLeafJSON(name, value)
	}
	_, err := fmt.Fprintln(p.writer, value)
	return err
}

// descend reports whether children of a node at depth should be printed.
func (p *Printer) descend(depth int) bool {
	return p.opts.MaxDepth == 0 || depth < p.opts.MaxDepth
}
