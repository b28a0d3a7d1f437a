package exhibit

import (
	"github.com/shopspring/decimal"
)

// Meter is a one row gauge showing Value as a share of Max.
type Meter struct {
	Value decimal.Decimal
	Max   decimal.Decimal
	Width uint16

	Fill  rune
	Empty rune
}

// Filled returns how many of the Width cells are drawn with Fill, rounded
// half away from zero and clamped to [0, Width].
func (m Meter) Filled() int {
	if m.Max.Sign() <= 0 || m.Value.Sign() <= 0 {
		return 0
	}
	if m.Value.GreaterThanOrEqual(m.Max) {
		return int(m.Width)
	}

	n := m.Value.Mul(decimal.New(int64(m.Width), 0)).
		Div(m.Max).
		Round(0).
		IntPart()

	return int(n)
}

func (m Meter) Blit(target Target, pos Point) {
	filled := m.Filled()
	x0, y := int(pos.X), int(pos.Y)

	for i := 0; i < int(m.Width); i++ {
		r := m.Empty
		if i < filled {
			r = m.Fill
		}

		plot(target, r, x0+i, y)
	}
}
