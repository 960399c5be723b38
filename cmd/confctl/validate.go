package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/pkg/conftree"
)

var (
	validateStrict  bool
	validateRelaxed bool
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().BoolVar(&validateStrict, "strict", false, "Use the strict limits preset")
	cmd.Flags().BoolVar(&validateRelaxed, "relaxed", false, "Use the relaxed limits preset")
	cmd.MarkFlagsMutuallyExclusive("strict", "relaxed")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check syntax and structural limits",
		Long: `The validate command parses a configuration file and checks the tree
against structural limits: children and leaves per node, name and value
lengths, and nesting depth.

Example:
  confctl validate app.conf
  confctl validate app.conf --strict
  confctl validate app.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	filePath := args[0]

	limits, preset := conftree.DefaultLimits(), "default"
	switch {
	case validateStrict:
		limits, preset = conftree.StrictLimits(), "strict"
	case validateRelaxed:
		limits, preset = conftree.RelaxedLimits(), "relaxed"
	}
	printVerbose("Validating %s with %s limits\n", filePath, preset)

	doc, err := loadDocument(filePath, format, false)
	if err == nil {
		err = conftree.Validate(doc.cfg.Root(), limits)
	}

	if jsonOut {
		result := map[string]any{
			"file":   filePath,
			"limits": preset,
			"valid":  err == nil,
		}
		if err != nil {
			result["error"] = err.Error()
		}
		if jerr := printJSON(result); jerr != nil {
			return jerr
		}
		return err
	}

	if err != nil {
		return err
	}
	printInfo("%s: valid\n", filePath)
	return nil
}
