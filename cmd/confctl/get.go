package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print a leaf value",
		Long: `The get command prints the value of the leaf at the given path.

Example:
  confctl get app.conf theme
  confctl get app.conf window.width
  confctl get app.yaml window.width --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath, path := args[0], args[1]

	printVerbose("Opening: %s\n", filePath)
	doc, err := loadDocument(filePath, format, false)
	if err != nil {
		return err
	}

	value, ok := doc.cfg.Get(path)
	if !ok {
		return fmt.Errorf("%w: %s", errPathNotFound, path)
	}

	if jsonOut {
		return printJSON(map[string]string{"path": path, "value": value})
	}
	fmt.Println(value)
	return nil
}
