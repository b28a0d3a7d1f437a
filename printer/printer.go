// Package printer writes rendered grids out: as text lines, or as a stream of
// frames to websocket clients.
package printer

import (
	"bufio"
	"io"
)

// Lines joins each row of a rendered matrix into a string.
func Lines(matrix [][]rune) []string {
	lines := make([]string, len(matrix))

	for i, row := range matrix {
		lines[i] = string(row)
	}

	return lines
}

// Print writes the matrix to w, one row per line, top to bottom.
func Print(w io.Writer, matrix [][]rune) error {
	b := bufio.NewWriter(w)

	for _, row := range matrix {
		for _, r := range row {
			if _, err := b.WriteRune(r); err != nil {
				return err
			}
		}
		if err := b.WriteByte('\n'); err != nil {
			return err
		}
	}

	return b.Flush()
}
