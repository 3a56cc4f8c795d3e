//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package plog

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
