//go:build linux || freebsd

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

// datasync flushes file data to disk.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
func datasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
