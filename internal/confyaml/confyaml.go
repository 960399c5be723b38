// Package confyaml reads and writes configuration trees as YAML.
//
// A mapping becomes a node, a scalar becomes a leaf. Document order is kept
// in both directions. Sequences, aliases and merge keys have no tree
// equivalent and are rejected.
package confyaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/confkit/pkg/conftree"
)

const (
	// IndentSize is the number of spaces per mapping level in Encode output.
	IndentSize = 2

	tagNull = "!!null"
	tagStr  = "!!str"
)

var (
	// ErrUnsupportedKind is returned for YAML constructs other than
	// mappings and scalars.
	ErrUnsupportedKind = errors.New("confyaml: unsupported yaml construct")

	// ErrNameCollision is returned by Encode when two entries of one node
	// would produce the same mapping key.
	ErrNameCollision = errors.New("confyaml: duplicate key")
)

// Decode parses data into root, merging with its existing content.
func Decode(data []byte, root *conftree.Node) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("confyaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil
	}

	top := doc.Content[0]
	switch {
	case top.Kind == yaml.MappingNode:
		return decodeMapping(top, root, nil)
	case top.Kind == yaml.ScalarNode && top.Tag == tagNull:
		return nil
	default:
		return fmt.Errorf("%w: top level %s at line %d", ErrUnsupportedKind, kindName(top.Kind), top.Line)
	}
}

func decodeMapping(m *yaml.Node, n *conftree.Node, path []string) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: %s key at line %d", ErrUnsupportedKind, kindName(k.Kind), k.Line)
		}
		name := k.Value
		childPath := append(path, name)

		switch v.Kind {
		case yaml.MappingNode:
			if err := decodeMapping(v, n.AddNode(name), childPath); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if v.Tag == tagNull {
				continue
			}
			n.SetLeaf(name, v.Value)
		default:
			return fmt.Errorf("%w: %s at '%s' (line %d)",
				ErrUnsupportedKind, kindName(v.Kind), strings.Join(childPath, conftree.PathSeparator), v.Line)
		}
	}
	return nil
}

// Encode writes the tree rooted at root as a YAML mapping. Each node lists
// its leaves first, then its children, both in insertion order. Values are
// always written as strings.
func Encode(root *conftree.Node) ([]byte, error) {
	m, err := encodeNode(root, nil)
	if err != nil {
		return nil, err
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{m}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(IndentSize)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("confyaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("confyaml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeNode(n *conftree.Node, path []string) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	keys := make(map[string]bool, n.LeafCount()+n.NodeCount())

	claim := func(name string) error {
		if keys[name] {
			return fmt.Errorf("%w: %q under '%s'", ErrNameCollision, name, strings.Join(path, conftree.PathSeparator))
		}
		keys[name] = true
		return nil
	}

	for l := range n.Leaves() {
		if err := claim(l.Name()); err != nil {
			return nil, err
		}
		m.Content = append(m.Content, scalar(l.Name()), scalar(l.Value()))
	}
	for child := range n.Nodes() {
		if err := claim(child.Name()); err != nil {
			return nil, err
		}
		cm, err := encodeNode(child, append(path, child.Name()))
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, scalar(child.Name()), cm)
	}
	return m, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: s}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
