package main

import (
	"fmt"
)

type ListEntry struct {
	Glyph rune
	Label string
}

func (e ListEntry) String() string {
	return fmt.Sprintf("%c %s", e.Glyph, e.Label)
}
