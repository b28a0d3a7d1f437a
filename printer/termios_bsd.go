//go:build darwin || freebsd || netbsd || openbsd

package printer

import (
	"golang.org/x/sys/unix"
)

const ioctlReadTermios = unix.TIOCGETA
