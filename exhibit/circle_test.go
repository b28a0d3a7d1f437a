package exhibit

import (
	"testing"
)

func TestTraceCircle(t *testing.T) {
	tests := []struct {
		radius uint16
		want   [][2]int
	}{
		{0, [][2]int{{0, 0}}},
		{1, [][2]int{{0, 1}, {1, 0}}},
		{2, [][2]int{{0, 2}, {1, 2}, {2, 1}}},
		{5, [][2]int{{0, 5}, {1, 5}, {2, 4}, {3, 3}, {4, 2}}},
	}

	for _, tt := range tests {
		var got [][2]int
		traceCircle(tt.radius, func(x, y int) {
			got = append(got, [2]int{x, y})
		})

		if len(got) != len(tt.want) {
			t.Fatalf("radius %d: samples = %v, want %v", tt.radius, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("radius %d: sample %d = %v, want %v", tt.radius, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTraceCircleClampsRadius(t *testing.T) {
	var first [2]int
	var n int
	traceCircle(65535, func(x, y int) {
		if n == 0 {
			first = [2]int{x, y}
		}
		n++
	})

	if first != [2]int{0, MaxSpan} {
		t.Errorf("first sample = %v, want [0 %d]", first, MaxSpan)
	}
}

func TestCircleSymmetry(t *testing.T) {
	for _, r := range []uint16{0, 1, 2, 3, 7, 12} {
		g := newGrid(t, 41, 41, '.')
		c := Pt(20, 20)
		g.DrawCircle('o', c, r)

		m := marked(g, 'o')
		if len(m) == 0 {
			t.Fatalf("radius %d: nothing drawn", r)
		}

		for p := range m {
			dx, dy := p.X-c.X, p.Y-c.Y
			for _, q := range []Point{
				{c.X + dx, c.Y - dy}, {c.X - dx, c.Y + dy}, {c.X - dx, c.Y - dy},
				{c.X + dy, c.Y + dx}, {c.X + dy, c.Y - dx}, {c.X - dy, c.Y + dx}, {c.X - dy, c.Y - dx},
			} {
				if !m[q] {
					t.Errorf("radius %d: %v marked but reflection %v is not", r, p, q)
				}
			}
		}
	}
}

func TestFilledCircleContainsOutline(t *testing.T) {
	for r := uint16(0); r <= 20; r++ {
		hollow := newGrid(t, 45, 45, '.')
		hollow.DrawCircle('o', Pt(22, 22), r)

		filled := newGrid(t, 45, 45, '.')
		filled.DrawFilledCircle('o', Pt(22, 22), r)

		disc := marked(filled, 'o')
		for p := range marked(hollow, 'o') {
			if !disc[p] {
				t.Errorf("radius %d: outline cell %v not filled", r, p)
			}
		}
	}
}

func TestFilledCircleHasNoHoles(t *testing.T) {
	for r := int16(1); r <= 15; r++ {
		g := newGrid(t, 41, 41, '.')
		g.DrawFilledCircle('o', Pt(20, 20), uint16(r))

		// Every row of a disc is one unbroken run through the centre column.
		for y, row := range g.Render() {
			first, last := -1, -1
			for x, c := range row {
				if c == 'o' {
					if first < 0 {
						first = x
					}
					last = x
				}
			}
			if first < 0 {
				continue
			}
			for x := first; x <= last; x++ {
				if row[x] != 'o' {
					t.Errorf("radius %d: hole at (%d,%d)", r, x, y)
				}
			}
			if first > 20 || last < 20 {
				t.Errorf("radius %d: row %d misses the centre column", r, y)
			}
		}
	}
}

func TestCircleShapes(t *testing.T) {
	tests := []struct {
		name   string
		filled bool
		radius uint16
		want   []string
	}{
		{"filled zero", true, 0, []string{
			".....",
			".....",
			"..o..",
			".....",
			".....",
		}},
		{"hollow zero", false, 0, []string{
			".....",
			".....",
			"..o..",
			".....",
			".....",
		}},
		{"hollow one", false, 1, []string{
			".....",
			"..o..",
			".o.o.",
			"..o..",
			".....",
		}},
		{"filled one", true, 1, []string{
			".....",
			"..o..",
			".ooo.",
			"..o..",
			".....",
		}},
		{"hollow two", false, 2, []string{
			".ooo.",
			"o...o",
			"o...o",
			"o...o",
			".ooo.",
		}},
		{"filled two", true, 2, []string{
			".ooo.",
			"ooooo",
			"ooooo",
			"ooooo",
			".ooo.",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(t, 5, 5, '.')
			if tt.filled {
				g.DrawFilledCircle('o', Pt(2, 2), tt.radius)
			} else {
				g.DrawCircle('o', Pt(2, 2), tt.radius)
			}

			assertRows(t, g, tt.want)
		})
	}
}

func TestCircleClipsAtEdges(t *testing.T) {
	g := newGrid(t, 5, 5, '.')
	g.DrawFilledCircle('o', Pt(0, 0), 2)
	g.DrawCircle('x', Pt(MaxSpan, minCoord), 30000)

	assertRows(t, g, []string{
		"ooo..",
		"ooo..",
		"oo...",
		".....",
		".....",
	})
}
