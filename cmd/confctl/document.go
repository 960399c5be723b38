package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/confkit/internal/conftext"
	"github.com/joshuapare/confkit/internal/confyaml"
	"github.com/joshuapare/confkit/internal/fileio"
	"github.com/joshuapare/confkit/internal/logger"
	"github.com/joshuapare/confkit/pkg/conftree"
)

const (
	formatAuto = "auto"
	formatText = "text"
	formatYAML = "yaml"

	defaultFilePerm = 0o644
)

var errPathNotFound = errors.New("path not found")

// document is a configuration file loaded into a Config.
type document struct {
	path   string
	format string
	perm   fs.FileMode
	cfg    *conftree.Config
}

// resolveFormat maps a --format value and a file name to formatText or
// formatYAML.
func resolveFormat(path, flag string) (string, error) {
	switch strings.ToLower(flag) {
	case "", formatAuto:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return formatYAML, nil
		}
		return formatText, nil
	case formatText, "conf", "ini":
		return formatText, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be auto, text, or yaml)", flag)
	}
}

// rootName names the tree after the file, without its extension.
func rootName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// loadDocument reads path in the given format. With allowMissing, a file
// that does not exist yet yields an empty document.
func loadDocument(path, formatFlag string, allowMissing bool) (*document, error) {
	f, err := resolveFormat(path, formatFlag)
	if err != nil {
		return nil, err
	}
	doc := &document{
		path:   path,
		format: f,
		perm:   defaultFilePerm,
		cfg:    conftree.NewConfig(rootName(path)),
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && allowMissing:
		printVerbose("%s does not exist, starting empty\n", path)
		return doc, nil
	case err != nil:
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	doc.perm = info.Mode().Perm()

	data, release, err := fileio.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer release()

	logger.Debug("load", "path", path, "format", f, "size", len(data))
	switch f {
	case formatYAML:
		err = confyaml.Decode(data, doc.cfg.Root())
	default:
		err = conftext.Decode(data, doc.cfg.Root(), conftext.DecodeOptions{InputEncoding: encoding})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// encodeTree renders root in the given format.
func encodeTree(root *conftree.Node, f string) ([]byte, error) {
	if f == formatYAML {
		return confyaml.Encode(root)
	}
	return conftext.Encode(root, conftext.EncodeOptions{OutputEncoding: encoding})
}

// save writes the document back to its file and clears the dirty flag.
func (d *document) save() error {
	data, err := encodeTree(d.cfg.Root(), d.format)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.path, err)
	}
	if err := fileio.WriteAtomic(d.path, data, d.perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	logger.Debug("save", "path", d.path, "format", d.format, "size", len(data))
	d.cfg.ClearDirty()
	return nil
}
