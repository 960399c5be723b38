package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/internal/browse"
)

func init() {
	rootCmd.AddCommand(newBrowseCmd())
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a configuration interactively",
		Long: `The browse command opens an interactive tree browser in the terminal.
Use the arrow keys to move and expand nodes, y to copy the selected path and
q to quit.

Example:
  confctl browse app.conf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(args)
		},
	}
	return cmd
}

var errNotTerminal = errors.New("browse needs an interactive terminal")

func runBrowse(args []string) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return errNotTerminal
	}
	doc, err := loadDocument(args[0], format, false)
	if err != nil {
		return err
	}
	return browse.Run(filepath.Base(doc.path), doc.cfg.Root())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
