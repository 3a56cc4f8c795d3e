//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package plog

import (
	"os"

	"golang.org/x/sys/unix"
)

// colorSupported reports whether f is attached to a terminal.
func colorSupported(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlReadTermios)
	return err == nil
}
