package geometry

import (
	"math"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// pie sweeps a full circle from a configurable start angle; the value is the swept angle.
type pie struct{}

var pieArc = arc{maxAngle: domain.PieMaxAngle}

func (pie) Kind() domain.Kind { return domain.KindPie }

func (pie) Validate(cfg Config) error {
	if err := pieArc.validate(cfg); err != nil {
		return err
	}
	if cfg.StartAngle < 0 || cfg.StartAngle >= domain.PieMaxAngle || math.IsNaN(cfg.StartAngle) {
		return domain.NewValidationError("start_angle", cfg.StartAngle, "must be in [0, 360)", domain.ErrInvalidAngle)
	}
	return nil
}

func (pie) PreferredSize(cfg Config) domain.Size {
	return domain.Size{Width: cfg.Radius * 2, Height: cfg.Radius * 2}
}

func (p pie) Layout(cfg Config, bounds domain.Size) (Layout, error) {
	if err := p.Validate(cfg); err != nil {
		return Layout{}, err
	}
	b, err := resolveBounds(p, cfg, bounds)
	if err != nil {
		return Layout{}, err
	}

	center := domain.Point{X: b.Width / 2, Y: b.Height / 2}
	radius := cfg.Radius
	if radius == 0 {
		radius = math.Min(center.X, center.Y)
	}
	return pieArc.layout(domain.KindPie, cfg, b, center, radius, cfg.StartAngle), nil
}

func (pie) Value(progress, old, absoluteTarget, span float64, l Layout) float64 {
	return pieArc.value(progress, old, absoluteTarget, span)
}

func (pie) Primitives(current float64, l Layout) domain.DrawSpec {
	spec := domain.DrawSpec{
		Background: domain.Circle{Center: l.Center, Radius: l.Radius},
		Foreground: pieArc.foreground(current, l),
		Label:      &domain.Label{Anchor: l.LabelAnchor},
	}
	if l.InnerRadius > 0 {
		spec.Hole = domain.Circle{Center: l.HoleCenter, Radius: l.InnerRadius}
	}
	return spec
}

func (pie) DisplayValue(current, span float64, _ Layout) float64 {
	return pieArc.displayValue(current, span)
}
