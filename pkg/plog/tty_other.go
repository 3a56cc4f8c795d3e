//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package plog

import "os"

func colorSupported(_ *os.File) bool { return false }
