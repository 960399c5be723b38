package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/pkg/printer"
)

var (
	treeDepth    int
	treeNoValues bool
	treeMeta     bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeNoValues, "no-values", false, "Hide leaves")
	cmd.Flags().BoolVar(&treeMeta, "meta", false, "Show node and leaf counts")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Display tree structure",
		Long: `The tree command displays the configuration tree, or the subtree
at path.

Example:
  confctl tree app.conf
  confctl tree app.conf window --depth 1
  confctl tree app.yaml --no-values --meta`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	filePath := args[0]
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	printVerbose("Opening: %s\n", filePath)
	doc, err := loadDocument(filePath, format, false)
	if err != nil {
		return err
	}

	n := doc.cfg.Lookup(path)
	if n == nil {
		return fmt.Errorf("%w: %s", errPathNotFound, path)
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowValues = !treeNoValues
	opts.PrintMetadata = treeMeta
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).Print(n)
}
