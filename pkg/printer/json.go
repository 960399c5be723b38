package printer

import (
	"encoding/json"

	"github.com/joshuapare/confkit/pkg/conftree"
)

// jsonNode represents a node in JSON format.
type jsonNode struct {
	Name      string     `json:"name"`
	NodeCount *int       `json:"node_count,omitempty"`
	LeafCount *int       `json:"leaf_count,omitempty"`
	Leaves    []jsonLeaf `json:"leaves,omitempty"`
	Nodes     []jsonNode `json:"nodes,omitempty"`
}

// jsonLeaf represents a leaf in JSON format.
type jsonLeaf struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// printJSON prints a node and its subtree as one JSON document.
func (p *Printer) printJSON(n *conftree.Node) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(p.buildJSON(n, 0))
}

func (p *Printer) buildJSON(n *conftree.Node, depth int) jsonNode {
	out := jsonNode{Name: n.Name()}

	if p.opts.PrintMetadata {
		nodes, leaves := n.NodeCount(), n.LeafCount()
		out.NodeCount = &nodes
		out.LeafCount = &leaves
	}

	if p.opts.ShowValues {
		for l := range n.Leaves() {
			out.Leaves = append(out.Leaves, jsonLeaf{Name: l.Name(), Value: l.Value()})
		}
	}

	if p.descend(depth) {
		for child := range n.Nodes() {
			out.Nodes = append(out.Nodes, p.buildJSON(child, depth+1))
		}
	}
	return out
}

// printLeafJSON prints a single leaf as a JSON object.
func (p *Printer) printLeafJSON(name, value string) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonLeaf{Name: name, Value: value})
}
