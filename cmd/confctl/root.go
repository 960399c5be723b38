package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/internal/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	format   string
	encoding string
	debug    bool

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "confctl",
	Short: "Inspect and edit hierarchical configuration files",
	Long: `confctl reads, edits, converts and validates configuration trees
stored as sectioned text files or YAML. Paths are dot separated: "window.width"
names the leaf "width" of the node "window".`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		closer, err := logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug})
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		closeLog = closer
		logger.Debug("confctl start", "command", cmd.Name(), "args", args)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&format, "format", formatAuto, "File format (auto, text, yaml)")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "", "Text encoding (UTF-8, UTF-16LE, WINDOWS-1252)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to ~/.confkit/logs")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
