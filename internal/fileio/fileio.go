// Package fileio provides the file access used by confctl: mapped reads and
// atomic, durable writes.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic replaces path with data. The data is written to a temporary
// file in the same directory, synced to stable storage and renamed over
// path, so readers see either the old or the new content.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("fileio: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("fileio: write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("fileio: chmod %s: %w", tmpName, err)
	}
	if err := datasync(tmp); err != nil {
		return fmt.Errorf("fileio: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fileio: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fileio: rename to %s: %w", path, err)
	}
	committed = true
	return nil
}
