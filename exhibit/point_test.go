package exhibit

import (
	"testing"
)

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want Point
	}{
		{"origin", Origin, Pt(3, 4), Pt(3, 4)},
		{"mixed signs", Pt(5, -2), Pt(-7, 9), Pt(-2, 7)},
		{"identity", Pt(-8, 8), Origin, Pt(-8, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.q); got != tt.want {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
			if got := tt.p.AddXY(tt.q.X, tt.q.Y); got != tt.want {
				t.Errorf("%v.AddXY(%d, %d) = %v, want %v", tt.p, tt.q.X, tt.q.Y, got, tt.want)
			}
		})
	}
}

func TestWide(t *testing.T) {
	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{MaxSpan, minCoord, true},
		{MaxSpan + 1, 0, false},
		{0, minCoord - 1, false},
	}

	for _, tt := range tests {
		p, ok := wide(tt.x, tt.y)
		if ok != tt.ok {
			t.Errorf("wide(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
		if ok && (int(p.X) != tt.x || int(p.Y) != tt.y) {
			t.Errorf("wide(%d, %d) = %v", tt.x, tt.y, p)
		}
	}
}
