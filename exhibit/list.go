package exhibit

import (
	"fmt"
	"math"
)

type ListEntry interface {
	fmt.Stringer
}

// List draws one entry per row, Width cells wide. Entries longer than Width
// are cut off on the side away from the alignment. With Border set the list
// is framed in Style and the frame adds one cell on every side.
type List struct {
	Width      uint16
	Style      Style
	Border     bool
	RightAlign bool

	list [][]rune
}

func (l *List) AddEntry(entry ListEntry) {
	l.list = append(l.list, []rune(entry.String()))
}

func (l *List) SetEntries(entries []string) {
	l.list = make([][]rune, 0, len(entries))

	for _, e := range entries {
		l.list = append(l.list, []rune(e))
	}
}

func (l *List) Len() int {
	return len(l.list)
}

// Size returns the number of cells the list covers, border included.
func (l *List) Size() (width, height int) {
	width, height = int(l.Width), len(l.list)
	if l.Border {
		width += 2
		height += 2
	}

	return width, height
}

func (l *List) Blit(target Target, offset Point) {
	ox, oy := int(offset.X), int(offset.Y)

	if l.Border {
		w, h := l.Size()
		Frame{
			Style:  l.Style,
			Width:  uint16(min(w, math.MaxUint16)),
			Height: uint16(min(h, math.MaxUint16)),
		}.Blit(target, offset)
		ox++
		oy++
	}

	size := int(l.Width)
	for y, row := range l.list {
		length := len(row)

		for x := 0; x < size; x++ {
			i := x
			if l.RightAlign {
				i = x - (size - length)
			}

			c := ' '
			if i >= 0 && i < length {
				c = row[i]
			}

			plot(target, c, ox+x, oy+y)
		}
	}
}
