package exhibit

// Target receives primitive draws. Implementations drop writes that fall
// outside their clip rectangle.
type Target interface {
	Draw(brush rune, pos Point)
	DrawSquare(brush rune, pos Point, width, height int16)
	DrawFilledSquare(brush rune, pos Point, width, height int16)
	DrawCircle(brush rune, pos Point, radius uint16)
	DrawFilledCircle(brush rune, pos Point, radius uint16)
}

// Drawable is anything that can paint itself onto a Target at an offset.
type Drawable interface {
	Blit(target Target, offset Point)
}

// plot draws at an int coordinate, dropping it when no int16 Point can hold it.
func plot(t Target, brush rune, x, y int) {
	if p, ok := wide(x, y); ok {
		t.Draw(brush, p)
	}
}

// DrawableFunc adapts a function to the Drawable interface.
type DrawableFunc func(target Target, offset Point)

func (f DrawableFunc) Blit(target Target, offset Point) {
	f(target, offset)
}
