// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// TermWidth returns the number of columns of the terminal referenced by the
// given file, or 0 if file is not a terminal.
func TermWidth(file *os.File) int {
	_, col := WinSize(file)
	if col < 0 {
		return 0
	}
	return col
}

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
