package exhibit

import (
	"math"
)

const (
	// MaxSpan is the largest width or height a Grid may have.
	MaxSpan = math.MaxInt16

	minCoord = math.MinInt16
)

// Grid is a fixed size character buffer. Every write goes through Draw,
// which silently drops coordinates outside [0,width)x[0,height).
//
// A Grid is both a Target and a Drawable, so grids can be blitted into other
// grids to build sub windows.
type Grid struct {
	width  int16
	height int16
	cells  []rune
}

// NewGrid returns a grid filled with spaces.
func NewGrid(width, height int) (*Grid, error) {
	return NewGridWithFill(width, height, ' ')
}

func NewGridWithFill(width, height int, fill rune) (*Grid, error) {
	if width < 0 || width > MaxSpan {
		err := &ConstructionError{Dimension: "width", Value: width}
		Logger().Debug("grid rejected", "width", width, "height", height, "err", err)
		return nil, err
	}
	if height < 0 || height > MaxSpan {
		err := &ConstructionError{Dimension: "height", Value: height}
		Logger().Debug("grid rejected", "width", width, "height", height, "err", err)
		return nil, err
	}

	g := &Grid{
		width:  int16(width),
		height: int16(height),
		cells:  make([]rune, width*height),
	}
	g.Fill(fill)

	return g, nil
}

func (g *Grid) Width() int {
	return int(g.width)
}

func (g *Grid) Height() int {
	return int(g.height)
}

// Fill overwrites every cell with brush.
func (g *Grid) Fill(brush rune) {
	for i := range g.cells {
		g.cells[i] = brush
	}
}

// At returns the cell at pos. ok is false outside the grid.
func (g *Grid) At(pos Point) (r rune, ok bool) {
	if !g.contains(pos) {
		return 0, false
	}

	return g.cells[int(pos.Y)*int(g.width)+int(pos.X)], true
}

// Render returns a copy of the grid, one slice per row.
func (g *Grid) Render() [][]rune {
	rows := make([][]rune, g.height)
	w := int(g.width)

	for y := range rows {
		rows[y] = make([]rune, w)
		copy(rows[y], g.cells[y*w:(y+1)*w])
	}

	return rows
}

func (g *Grid) contains(pos Point) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g *Grid) Draw(brush rune, pos Point) {
	if g.contains(pos) {
		g.cells[int(pos.Y)*int(g.width)+int(pos.X)] = brush
	}
}

// DrawSquare draws the outline of a width x height rectangle whose top left
// corner is pos. Corners are drawn once. Non-positive sizes draw nothing.
func (g *Grid) DrawSquare(brush rune, pos Point, width, height int16) {
	if width <= 0 || height <= 0 {
		return
	}

	x0, y0 := int(pos.X), int(pos.Y)
	x1, y1 := x0+int(width)-1, y0+int(height)-1

	for x := x0; x <= x1; x++ {
		plot(g, brush, x, y0)
		plot(g, brush, x, y1)
	}

	for y := y0 + 1; y < y1; y++ {
		plot(g, brush, x0, y)
		plot(g, brush, x1, y)
	}
}

// DrawFilledSquare fills a width x height rectangle whose top left corner is
// pos. Non-positive sizes draw nothing.
func (g *Grid) DrawFilledSquare(brush rune, pos Point, width, height int16) {
	x0, y0 := int(pos.X), int(pos.Y)

	for y := y0; y < y0+int(height); y++ {
		for x := x0; x < x0+int(width); x++ {
			plot(g, brush, x, y)
		}
	}
}

func (g *Grid) DrawCircle(brush rune, pos Point, radius uint16) {
	traceCircle(radius, octants(g, brush, pos))
}

func (g *Grid) DrawFilledCircle(brush rune, pos Point, radius uint16) {
	traceCircle(radius, spans(g, brush, pos))
}

// Blit copies every cell of the grid onto target, translated by offset.
// Clipping is left to the target.
func (g *Grid) Blit(target Target, offset Point) {
	w := int(g.width)
	ox, oy := int(offset.X), int(offset.Y)

	for i, r := range g.cells {
		plot(target, r, i%w+ox, i/w+oy)
	}
}
