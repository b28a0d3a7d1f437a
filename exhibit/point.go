package exhibit

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X int16
	Y int16
}

// Origin is the top left cell.
var Origin = Point{}

func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) AddXY(x, y int16) Point {
	return Point{X: p.X + x, Y: p.Y + y}
}

// wide converts a coordinate computed with int intermediates back to a Point.
// ok is false when either component falls outside the int16 range, in which
// case the coordinate lies outside every grid.
func wide(x, y int) (Point, bool) {
	if x < minCoord || x > MaxSpan || y < minCoord || y > MaxSpan {
		return Point{}, false
	}

	return Point{X: int16(x), Y: int16(y)}, true
}
