//go:build linux || darwin || freebsd || netbsd || openbsd

package printer

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlReadTermios)
	return err == nil
}

// Size returns the column and row count of the terminal behind f.
func Size(f *os.File) (cols, rows int, err error) {
	sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}

	return int(sz.Col), int(sz.Row), nil
}
