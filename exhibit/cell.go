package exhibit

type Cell struct {
	Pos   Point
	Value rune
}

// Diff returns the cells of next that differ from prev, in row order. Cells
// that prev does not cover are always reported.
func Diff(prev, next [][]rune) []Cell {
	c := make([]Cell, 0)

	for y, row := range next {
		for x, r := range row {
			if y < len(prev) && x < len(prev[y]) && prev[y][x] == r {
				continue
			}

			p, ok := wide(x, y)
			if !ok {
				continue
			}
			c = append(c, Cell{Pos: p, Value: r})
		}
	}

	return c
}
