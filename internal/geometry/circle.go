package geometry

import (
	"math"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// circle grows a filled disc from the center; the value is its radius in pixels.
type circle struct{}

func (circle) Kind() domain.Kind { return domain.KindCircle }

func (circle) Validate(cfg Config) error {
	return checkSize("radius", cfg.Radius)
}

func (c circle) PreferredSize(cfg Config) domain.Size {
	return domain.Size{Width: cfg.Radius * 2, Height: cfg.Radius * 2}
}

func (c circle) Layout(cfg Config, bounds domain.Size) (Layout, error) {
	if err := c.Validate(cfg); err != nil {
		return Layout{}, err
	}
	b, err := resolveBounds(c, cfg, bounds)
	if err != nil {
		return Layout{}, err
	}

	center := domain.Point{X: b.Width / 2, Y: b.Height / 2}
	radius := cfg.Radius
	if radius == 0 {
		radius = math.Min(center.X, center.Y)
	}

	return Layout{
		Kind:        domain.KindCircle,
		Bounds:      b,
		Center:      center,
		Radius:      radius,
		Extent:      radius,
		LabelAnchor: center,
	}, nil
}

func (circle) Value(progress, old, absoluteTarget, span float64, l Layout) float64 {
	return interpolate(progress, old, fraction(absoluteTarget, span)*l.Extent)
}

func (circle) Primitives(current float64, l Layout) domain.DrawSpec {
	return domain.DrawSpec{
		Background: domain.Circle{Center: l.Center, Radius: l.Radius},
		Foreground: domain.Circle{Center: l.Center, Radius: current},
		Label:      &domain.Label{Anchor: l.LabelAnchor},
	}
}

func (circle) DisplayValue(current, span float64, l Layout) float64 {
	if l.Extent <= 0 {
		return 0
	}
	return current / l.Extent * span
}
