//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package printer

import (
	"errors"
	"os"
)

var errNoTerminal = errors.New("printer: terminal size unavailable on this platform")

func IsTerminal(f *os.File) bool {
	return false
}

func Size(f *os.File) (cols, rows int, err error) {
	return 0, 0, errNoTerminal
}
