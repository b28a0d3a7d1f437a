package exhibit

// Window is a framed sub window. Header and Content are rendered into
// interior grids first, so nothing they draw can land on or beyond the frame.
type Window struct {
	Style  Style
	Width  uint16
	Height uint16

	// Title is centred on the top edge when the window is wide enough.
	Title string
	// Fill is the interior background, a space when zero.
	Fill rune

	// Header gets the first interior row, followed by a divider.
	Header  Drawable
	Content Drawable
}

func (w Window) Blit(target Target, pos Point) {
	x0, y0 := int(pos.X), int(pos.Y)
	x1 := x0 + int(w.Width) - 1
	iw, ih := int(w.Width)-2, int(w.Height)-2

	fill := w.Fill
	if fill == 0 {
		fill = ' '
	}

	top := y0 + 1
	if w.Header != nil && ih >= 2 {
		w.pane(target, w.Header, fill, x0+1, top, iw, 1)
		top += 2
		ih -= 2
	}
	w.pane(target, w.Content, fill, x0+1, top, iw, ih)

	Frame{Style: w.Style, Width: w.Width, Height: w.Height}.Blit(target, pos)

	if top > y0+1 {
		y := y0 + 2
		plot(target, BorderRune(VerticalRight, w.Style), x0, y)
		for x := x0 + 1; x < x1; x++ {
			plot(target, BorderRune(Horizontal, w.Style), x, y)
		}
		plot(target, BorderRune(VerticalLeft, w.Style), x1, y)
	}

	w.title(target, x0, y0)
}

// pane renders d into a w x h grid and copies that grid to (x, y).
func (w Window) pane(target Target, d Drawable, fill rune, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	g, err := NewGridWithFill(width, height, fill)
	if err != nil {
		Logger().Debug("window pane skipped", "width", width, "height", height, "err", err)
		return
	}

	if d != nil {
		d.Blit(g, Origin)
	}

	if p, ok := wide(x, y); ok {
		g.Blit(target, p)
	}
}

func (w Window) title(target Target, x0, y0 int) {
	if w.Title == "" || w.Width <= 4 {
		return
	}

	title := []rune(w.Title)
	if limit := int(w.Width) - 4; len(title) > limit {
		title = title[:limit]
	}

	x := x0 + (int(w.Width)-len(title)-2)/2
	plot(target, ' ', x, y0)
	for i, r := range title {
		plot(target, r, x+1+i, y0)
	}
	plot(target, ' ', x+1+len(title), y0)
}
