package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/pkg/conftree"
)

var unsetSection bool

func init() {
	rootCmd.AddCommand(newSetCmd())

	cmd := newUnsetCmd()
	cmd.Flags().BoolVar(&unsetSection, "section", false, "Remove the node at path with everything below it")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set a leaf value",
		Long: `The set command stores a value at the given path, creating missing
nodes on the way. The file is created if it does not exist, and is only
rewritten when something changed. A blank value never creates new nodes.

Example:
  confctl set app.conf theme dark
  confctl set app.conf window.position.x 10
  confctl set app.yaml plugins.git.enabled true`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <file> <path>",
		Short: "Remove a leaf or a section",
		Long: `The unset command removes the leaf at the given path. Nodes left
empty by the removal are removed too. With --section the path names a node,
which is removed together with its subtree.

Example:
  confctl unset app.conf window.position.x
  confctl unset app.conf window --section`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnset(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	filePath, path, value := args[0], args[1], args[2]
	return edit(filePath, path, true, func(cfg *conftree.Config) error {
		_, err := cfg.Set(path, value)
		return err
	})
}

func runUnset(args []string) error {
	filePath, path := args[0], args[1]
	return edit(filePath, path, false, func(cfg *conftree.Config) error {
		var err error
		if unsetSection {
			_, err = cfg.RemoveSection(path)
		} else {
			_, err = cfg.Unset(path)
		}
		return err
	})
}

// edit loads filePath, applies fn and saves the file if the config became
// dirty.
func edit(filePath, path string, allowMissing bool, fn func(*conftree.Config) error) error {
	printVerbose("Opening: %s\n", filePath)
	doc, err := loadDocument(filePath, format, allowMissing)
	if err != nil {
		return err
	}

	var changes []conftree.Change
	unsubscribe := doc.cfg.Subscribe(func(ch conftree.Change) {
		changes = append(changes, ch)
		printVerbose("%s %s\n", ch.Kind, ch.Path)
	})
	defer unsubscribe()

	if err := fn(doc.cfg); err != nil {
		return fmt.Errorf("failed to update %s: %w", path, err)
	}

	updated := doc.cfg.Dirty()
	if updated {
		if err := doc.save(); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":    filePath,
			"path":    path,
			"changed": updated,
			"changes": len(changes),
		})
	}
	if updated {
		printInfo("updated %s\n", path)
	} else {
		printInfo("unchanged\n")
	}
	return nil
}
