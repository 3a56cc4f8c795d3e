//go:build !windows

package preflight

import "golang.org/x/sys/unix"

// platformCheckWritable asks the kernel whether the current user may create
// entries in dir, without touching the file system.
func platformCheckWritable(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
