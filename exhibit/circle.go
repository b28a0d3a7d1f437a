package exhibit

// traceCircle walks one octant of a circle of the given radius with the
// midpoint algorithm, handing each sample to fn. Callers mirror the samples
// into the other seven octants.
func traceCircle(radius uint16, fn func(x, y int)) {
	r := int(radius)
	if r > MaxSpan {
		r = MaxSpan
	}

	x, y := 0, r
	d := 3 - 2*r

	fn(x, y)
	for x <= y {
		x++
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}

		// A zero radius steps past the centre.
		if y < 0 {
			return
		}
		fn(x, y)
	}
}

func mirror(t Target, brush rune, cx, cy, x, y int) {
	plot(t, brush, cx+x, cy+y)
	plot(t, brush, cx-x, cy+y)
	plot(t, brush, cx+x, cy-y)
	plot(t, brush, cx-x, cy-y)
	plot(t, brush, cx+y, cy+x)
	plot(t, brush, cx-y, cy+x)
	plot(t, brush, cx+y, cy-x)
	plot(t, brush, cx-y, cy-x)
}

// octants draws each sample in all eight octants.
func octants(t Target, brush rune, center Point) func(x, y int) {
	cx, cy := int(center.X), int(center.Y)

	return func(x, y int) {
		mirror(t, brush, cx, cy, x, y)
	}
}

// spans turns each sample into the run from the diagonal out to the arc, in
// all eight octants, which together cover the disc.
func spans(t Target, brush rune, center Point) func(x, y int) {
	cx, cy := int(center.X), int(center.Y)

	return func(x, y int) {
		for sub := min(x, y); sub <= y; sub++ {
			mirror(t, brush, cx, cy, x, sub)
		}
	}
}
