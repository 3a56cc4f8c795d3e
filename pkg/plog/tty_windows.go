//go:build windows

package plog

import (
	"os"

	"golang.org/x/sys/windows"
)

// colorSupported reports whether f is a console and, if so, switches on ANSI
// escape processing so the color sequences are rendered instead of printed.
func colorSupported(f *os.File) bool {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
