package geometry

import (
	"math"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

var halfPieBase = map[domain.Orientation]float64{
	domain.South: 0,
	domain.West:  90,
	domain.North: 180,
	domain.East:  270,
}

var quarterPieBase = map[domain.Orientation]float64{
	domain.SouthEast: 0,
	domain.SouthWest: 90,
	domain.NorthWest: 180,
	domain.NorthEast: 270,
}

// HalfPieStartAngle returns where a half pie starts drawing.
// Counter-clockwise pies start at the other end of the half circle.
func HalfPieStartAngle(o domain.Orientation, d domain.Direction) (float64, error) {
	return startAngle(halfPieBase, o, d, domain.HalfPieMaxAngle, "half pies use east, west, north or south")
}

// QuarterPieStartAngle returns where a quarter pie starts drawing.
func QuarterPieStartAngle(o domain.Orientation, d domain.Direction) (float64, error) {
	return startAngle(quarterPieBase, o, d, domain.QuarterPieMaxAngle, "quarter pies use a diagonal orientation")
}

func startAngle(table map[domain.Orientation]float64, o domain.Orientation, d domain.Direction, sweep float64, msg string) (float64, error) {
	base, ok := table[o]
	if !ok {
		return 0, domain.NewValidationError("orientation", o.String(), msg, domain.ErrUnsupportedOrientation)
	}
	if err := checkCircular(d); err != nil {
		return 0, err
	}
	if d == domain.CounterClockwise {
		return math.Mod(base+sweep, 360), nil
	}
	return base, nil
}
