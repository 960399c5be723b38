package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/internal/logger"
	"github.com/joshuapare/confkit/pkg/printer"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file> [path]",
		Short: "Print a value or subtree whenever the file changes",
		Long: `The watch command prints the tree, the subtree at path, or the leaf at
path, and prints it again each time the file is saved with different
content. Stop with Ctrl+C.

Example:
  confctl watch app.conf
  confctl watch app.conf window.width`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, args)
		},
	}
	return cmd
}

func runWatch(ctx context.Context, args []string) error {
	filePath := args[0]
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	w, err := newWatcher(filePath, format)
	if err != nil {
		return err
	}
	defer w.Close()

	var last []byte
	show := func(doc *document) error {
		out, err := renderPath(doc, path)
		if err != nil {
			out = []byte(fmt.Sprintf("%v\n", err))
		}
		if bytes.Equal(out, last) {
			return nil
		}
		last = out
		_, err = os.Stdout.Write(out)
		return err
	}

	doc, err := loadDocument(filePath, format, false)
	if err != nil {
		return err
	}
	if err := show(doc); err != nil {
		return err
	}
	return w.run(ctx, show)
}

// renderPath renders the leaf at path, or the node at path as a tree.
func renderPath(doc *document, path string) ([]byte, error) {
	var buf bytes.Buffer
	p := printer.New(&buf, printer.DefaultOptions())
	if path != "" {
		if value, ok := doc.cfg.Get(path); ok {
			buf.WriteString(value + "\n")
			return buf.Bytes(), nil
		}
	}
	n := doc.cfg.Lookup(path)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", errPathNotFound, path)
	}
	if err := p.Print(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// watcher reloads a document whenever its file is written. The directory
// is watched rather than the file so that atomic saves, which replace the
// file, keep being seen.
type watcher struct {
	path   string
	format string
	fsw    *fsnotify.Watcher
}

func newWatcher(path, formatFlag string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &watcher{path: path, format: formatFlag, fsw: fsw}, nil
}

func (w *watcher) Close() error { return w.fsw.Close() }

// run calls fn with each reloaded document until ctx is done. Files that
// fail to load are reported and skipped.
func (w *watcher) run(ctx context.Context, fn func(*document) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("watch: event", "path", event.Name, "op", event.Op.String())

			doc, err := loadDocument(w.path, w.format, false)
			if err != nil {
				logger.Warn("watch: reload failed", "path", w.path, "error", err)
				printError("%v\n", err)
				continue
			}
			if err := fn(doc); err != nil {
				return err
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: watcher error", "error", err)
		}
	}
}
