package exhibit

import (
	"unicode/utf8"
)

// Block is a sparse set of cells. Positions it does not hold are left
// untouched when it is blitted.
type Block struct {
	Cells map[Point]rune
}

func NewBlock() Block {
	b := Block{}
	b.Cells = make(map[Point]rune)
	return b
}

// BlockFromLines builds a block from rows of text, skipping every occurrence
// of transparent.
func BlockFromLines(lines []string, transparent rune) Block {
	b := NewBlock()

	for y, line := range lines {
		var x int
		for _, r := range line {
			if r != transparent && r != utf8.RuneError {
				if p, ok := wide(x, y); ok {
					b.Cells[p] = r
				}
			}
			x++
		}
	}

	return b
}

func (b Block) Set(pos Point, r rune) {
	b.Cells[pos] = r
}

func (b Block) Len() int {
	return len(b.Cells)
}

func (b Block) Blit(target Target, offset Point) {
	for p, r := range b.Cells {
		plot(target, r, int(p.X)+int(offset.X), int(p.Y)+int(offset.Y))
	}
}
