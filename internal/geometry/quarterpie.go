package geometry

import (
	"math"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// quarterPie is a quarter circle whose round side faces a diagonal orientation.
type quarterPie struct{}

var quarterPieArc = arc{maxAngle: domain.QuarterPieMaxAngle}

func (quarterPie) Kind() domain.Kind { return domain.KindQuarterPie }

func (quarterPie) Validate(cfg Config) error {
	if err := quarterPieArc.validate(cfg); err != nil {
		return err
	}
	_, err := QuarterPieStartAngle(cfg.Orientation, cfg.Direction)
	return err
}

func (quarterPie) PreferredSize(cfg Config) domain.Size {
	return domain.Size{Width: cfg.Radius, Height: cfg.Radius}
}

func (q quarterPie) Layout(cfg Config, bounds domain.Size) (Layout, error) {
	if err := q.Validate(cfg); err != nil {
		return Layout{}, err
	}
	b, err := resolveBounds(q, cfg, bounds)
	if err != nil {
		return Layout{}, err
	}
	start, _ := QuarterPieStartAngle(cfg.Orientation, cfg.Direction)

	r := cfg.Radius
	if r == 0 {
		r = math.Min(b.Width, b.Height)
	}

	// West-facing pies keep their corner on the right, north-facing ones at the bottom.
	west := cfg.Orientation == domain.NorthWest || cfg.Orientation == domain.SouthWest
	north := cfg.Orientation == domain.NorthWest || cfg.Orientation == domain.NorthEast

	center := domain.Point{X: b.Width/2 - r/2, Y: b.Height/2 - r/2}
	hole := domain.Point{X: center.X - holeCorrection, Y: center.Y - holeCorrection}
	if west {
		center.X = b.Width/2 + r/2
		hole.X = center.X + holeCorrection
	}
	if north {
		center.Y = b.Height/2 + r/2
		hole.Y = center.Y + holeCorrection
	}

	l := quarterPieArc.layout(domain.KindQuarterPie, cfg, b, center, r, start)
	l.HoleCenter = hole
	l.Sweep = sweepSign(cfg.Direction) * domain.QuarterPieMaxAngle

	l.LabelHAlign = domain.AlignStart
	if west {
		l.LabelHAlign = domain.AlignEnd
	}
	l.LabelVAlign = domain.AlignBelow
	if north {
		l.LabelVAlign = domain.AlignAbove
	}
	return l, nil
}

func (quarterPie) Value(progress, old, absoluteTarget, span float64, l Layout) float64 {
	return quarterPieArc.value(progress, old, absoluteTarget, span)
}

func (quarterPie) Primitives(current float64, l Layout) domain.DrawSpec {
	return quarterPieArc.partialSpec(current, l)
}

func (quarterPie) DisplayValue(current, span float64, _ Layout) float64 {
	return quarterPieArc.displayValue(current, span)
}
