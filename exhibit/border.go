package exhibit

const (
	Light = Style(iota)
	Double
	Heavy
	Rounded
	LightDashed
	HeavyDashed
)

const (
	TopLeft = Box(iota)
	TopRight
	BottomLeft
	BottomRight
	Horizontal
	Vertical
	VerticalRight
	VerticalLeft
	HorizontalDown
	HorizontalUp
	Intersect
)

type Style int
type Box int

var light = []rune{'┌', '┐', '└', '┘', '─', '│', '├', '┤', '┬', '┴', '┼'}

var double = []rune{'╔', '╗', '╚', '╝', '═', '║', '╠', '╣', '╦', '╩', '╬'}

var heavy = []rune{'┏', '┓', '┗', '┛', '━', '┃', '┣', '┫', '┳', '┻', '╋'}

var rounded = []rune{'╭', '╮', '╰', '╯', '─', '│', '├', '┤', '┬', '┴', '┼'}

var lightDashed = []rune{'┌', '┐', '└', '┘', '┄', '┆', '├', '┤', '┬', '┴', '┼'}

var heavyDashed = []rune{'┏', '┓', '┗', '┛', '┅', '┇', '┣', '┫', '┳', '┻', '╋'}

// BorderRune returns the glyph for part c of a border drawn in style s, or a
// space when either is unknown.
func BorderRune(c Box, s Style) rune {
	if c < 0 || int(c) >= len(light) {
		return ' '
	}

	switch s {
	case Light:
		return light[c]
	case Double:
		return double[c]
	case Heavy:
		return heavy[c]
	case Rounded:
		return rounded[c]
	case LightDashed:
		return lightDashed[c]
	case HeavyDashed:
		return heavyDashed[c]
	default:
		return ' '
	}
}

// Frame draws a border box. It holds no cells of its own.
type Frame struct {
	Style  Style
	Width  uint16
	Height uint16
}

func NewFrame(style Style, width, height uint16) Frame {
	return Frame{Style: style, Width: width, Height: height}
}

// Blit draws the corners first, in the order top left, top right, bottom
// left, bottom right, then the edges between them. When the box is narrower
// or shorter than two cells the later corners overwrite the earlier ones.
func (f Frame) Blit(target Target, pos Point) {
	x0, y0 := int(pos.X), int(pos.Y)
	x1, y1 := x0+int(f.Width)-1, y0+int(f.Height)-1

	plot(target, BorderRune(TopLeft, f.Style), x0, y0)
	plot(target, BorderRune(TopRight, f.Style), x1, y0)
	plot(target, BorderRune(BottomLeft, f.Style), x0, y1)
	plot(target, BorderRune(BottomRight, f.Style), x1, y1)

	h := BorderRune(Horizontal, f.Style)
	for x := x0 + 1; x < x1; x++ {
		plot(target, h, x, y0)
		plot(target, h, x, y1)
	}

	v := BorderRune(Vertical, f.Style)
	for y := y0 + 1; y < y1; y++ {
		plot(target, v, x0, y)
		plot(target, v, x1, y)
	}
}
