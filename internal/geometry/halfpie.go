package geometry

import (
	"math"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// halfPie is a half circle whose round side faces its orientation.
type halfPie struct{}

var halfPieArc = arc{maxAngle: domain.HalfPieMaxAngle}

func (halfPie) Kind() domain.Kind { return domain.KindHalfPie }

func (halfPie) Validate(cfg Config) error {
	if err := halfPieArc.validate(cfg); err != nil {
		return err
	}
	_, err := HalfPieStartAngle(cfg.Orientation, cfg.Direction)
	return err
}

func (halfPie) PreferredSize(cfg Config) domain.Size {
	r := cfg.Radius
	if cfg.Orientation == domain.East || cfg.Orientation == domain.West {
		return domain.Size{Width: r, Height: r * 2}
	}
	return domain.Size{Width: r * 2, Height: r}
}

func (h halfPie) Layout(cfg Config, bounds domain.Size) (Layout, error) {
	if err := h.Validate(cfg); err != nil {
		return Layout{}, err
	}
	b, err := resolveBounds(h, cfg, bounds)
	if err != nil {
		return Layout{}, err
	}
	start, _ := HalfPieStartAngle(cfg.Orientation, cfg.Direction)

	halfW, halfH := b.Width/2, b.Height/2
	horizontal := cfg.Orientation == domain.East || cfg.Orientation == domain.West

	r := cfg.Radius
	if r == 0 {
		if horizontal {
			r = math.Min(b.Width, halfH)
		} else {
			r = math.Min(halfW, b.Height)
		}
	}

	center := domain.Point{X: halfW, Y: halfH}
	hole := center
	switch cfg.Orientation {
	case domain.East:
		center.X = halfW - r/2
		hole = domain.Point{X: center.X - holeCorrection, Y: center.Y}
	case domain.West:
		center.X = halfW + r/2
		hole = domain.Point{X: center.X + holeCorrection, Y: center.Y}
	case domain.North:
		center.Y = halfH + r/2
		hole = domain.Point{X: center.X, Y: center.Y + holeCorrection}
	case domain.South:
		center.Y = halfH - r/2
		hole = domain.Point{X: center.X, Y: center.Y - holeCorrection}
	}

	l := halfPieArc.layout(domain.KindHalfPie, cfg, b, center, r, start)
	l.HoleCenter = hole
	l.Sweep = sweepSign(cfg.Direction) * domain.HalfPieMaxAngle

	switch cfg.Orientation {
	case domain.East:
		l.LabelHAlign = domain.AlignStart
	case domain.West:
		l.LabelHAlign = domain.AlignEnd
	case domain.North:
		l.LabelVAlign = domain.AlignAbove
	case domain.South:
		l.LabelVAlign = domain.AlignBelow
	}
	return l, nil
}

func (halfPie) Value(progress, old, absoluteTarget, span float64, l Layout) float64 {
	return halfPieArc.value(progress, old, absoluteTarget, span)
}

func (halfPie) Primitives(current float64, l Layout) domain.DrawSpec {
	return halfPieArc.partialSpec(current, l)
}

func (halfPie) DisplayValue(current, span float64, _ Layout) float64 {
	return halfPieArc.displayValue(current, span)
}
