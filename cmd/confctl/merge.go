package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/pkg/conftree"
)

var mergeFrom string

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVar(&mergeFrom, "from", formatAuto, "Format of the merged files (auto, text, yaml)")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <file> <overlay>...",
		Short: "Merge one or more files into a configuration",
		Long: `The merge command applies the leaves of each overlay file to the target,
in order. Later files win. Sections missing from the target are copied over
whole. The target is only rewritten when something changed.

Example:
  confctl merge app.conf defaults.conf
  confctl merge app.yaml base.yaml local.conf --from auto`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	target, overlays := args[0], args[1:]

	printVerbose("Merging into: %s\n", target)
	doc, err := loadDocument(target, format, true)
	if err != nil {
		return err
	}

	changes := 0
	unsubscribe := doc.cfg.Subscribe(func(ch conftree.Change) {
		changes++
		printVerbose("%s %s\n", ch.Kind, ch.Path)
	})
	defer unsubscribe()

	for _, path := range overlays {
		src, err := loadDocument(path, mergeFrom, false)
		if err != nil {
			return err
		}
		if err := mergeInto(doc.cfg, src.cfg.Root()); err != nil {
			return fmt.Errorf("failed to merge %s: %w", path, err)
		}
	}

	if doc.cfg.Dirty() {
		if err := doc.save(); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":     target,
			"overlays": overlays,
			"changes":  changes,
		})
	}
	if changes == 0 {
		printInfo("unchanged\n")
		return nil
	}
	printInfo("merged %d file(s), %d change(s)\n", len(overlays), changes)
	return nil
}

// mergeInto copies the leaves under src into dst. Nodes that dst lacks are
// detached from src and grafted whole.
func mergeInto(dst *conftree.Config, src *conftree.Node) error {
	type graft struct {
		parent []string
		node   *conftree.Node
	}
	var grafts []graft

	err := conftree.Walk(src, func(path []string, n *conftree.Node) error {
		if len(path) > 0 && strings.Contains(path[len(path)-1], conftree.PathSeparator) {
			return fmt.Errorf("%w: node name %q", conftree.ErrInvalidPath, path[len(path)-1])
		}
		joined := strings.Join(path, conftree.PathSeparator)
		if len(path) > 0 && dst.Lookup(joined) == nil {
			grafts = append(grafts, graft{parent: append([]string(nil), path[:len(path)-1]...), node: n})
			return conftree.SkipNode
		}
		for l := range n.Leaves() {
			if strings.Contains(l.Name(), conftree.PathSeparator) {
				return fmt.Errorf("%w: leaf name %q", conftree.ErrInvalidPath, l.Name())
			}
			leafPath := l.Name()
			if joined != "" {
				leafPath = joined + conftree.PathSeparator + leafPath
			}
			if _, err := dst.Set(leafPath, l.Value()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	srcCfg := conftree.Wrap(src)
	for _, g := range grafts {
		parentPath := strings.Join(g.parent, conftree.PathSeparator)
		srcCfg.Lookup(parentPath).RemoveNode(g.node)
		if err := dst.Graft(parentPath, g.node); err != nil {
			return err
		}
	}
	return nil
}
