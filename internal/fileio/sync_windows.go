//go:build windows

package fileio

import (
	"os"

	"golang.org/x/sys/windows"
)

// datasync flushes file data and metadata with FlushFileBuffers.
func datasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
