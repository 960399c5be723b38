//go:build !linux && !freebsd && !darwin && !windows

package fileio

import "os"

func datasync(f *os.File) error {
	return f.Sync()
}
