// Package conftree provides a mutable, in-memory tree of configuration data.
//
// A tree is made of nodes (named sub-trees) and leaves (named string values).
// Every node exclusively owns its children and its leaves, and no node holds
// a reference to its parent, so a tree can never contain a cycle as long as
// a node is only ever attached to one parent.
//
// # Names
//
// Nodes and leaves are identified by a single path segment, compared exactly
// and case-sensitively. Child names and leaf names live in separate
// namespaces: a node may hold both a child "window" and a leaf "window".
// Lookups return the first match in insertion order.
//
// # Creating nodes
//
// There are two ways to create a child:
//
//	child := node.AddNode("window")    // returns the existing child if any
//	child := node.CreateNode("window") // always appends a new child
//
// CreateNode skips the duplicate check. It exists for readers that can prove
// no same-named child exists at that level, for example while populating a
// node they created themselves from a format without duplicate keys. Calling
// it when a same-named child is present silently produces two children with
// that name and the second one is unreachable by name.
//
// # Change reporting
//
// SetLeaf and UnsetLeaf report whether they changed the tree. The tree never
// emits events on its own; callers use the returned flag to mark their
// configuration dirty or notify listeners. Config does exactly that on top of
// a root node:
//
//	cfg := conftree.NewConfig("root")
//	cfg.Subscribe(func(c conftree.Change) { log.Println(c.Path, c.New) })
//	changed, err := cfg.Set("window.width", "800")
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Mutating a node while
// ranging over Nodes or Leaves is undefined.
package conftree
