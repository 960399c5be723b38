//go:build darwin

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

// datasync flushes file data to the physical disk with F_FULLFSYNC, falling
// back to fsync on file systems that do not support it.
func datasync(f *os.File) error {
	if _, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(int(f.Fd()))
}
