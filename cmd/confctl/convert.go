package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/internal/fileio"
)

var (
	convertFrom string
	convertTo   string
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertFrom, "from", formatAuto, "Input format (auto, text, yaml)")
	cmd.Flags().StringVar(&convertTo, "to", formatAuto, "Output format (auto, text, yaml)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert between file formats",
		Long: `The convert command reads a configuration file and writes the same
tree in another format. Formats are picked from the file extensions unless
--from or --to is given. Use "-" as output to write to stdout.

Example:
  confctl convert app.conf app.yaml
  confctl convert app.yaml app.conf --encoding UTF-16LE
  confctl convert legacy.cfg - --to yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	inPath, outPath := args[0], args[1]

	printVerbose("Opening: %s\n", inPath)
	doc, err := loadDocument(inPath, convertFrom, false)
	if err != nil {
		return err
	}

	to, err := resolveFormat(outPath, convertTo)
	if err != nil {
		return err
	}
	data, err := encodeTree(doc.cfg.Root(), to)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	if outPath == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := fileio.WriteAtomic(outPath, data, doc.perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	printInfo("wrote %s (%s)\n", outPath, to)
	return nil
}
