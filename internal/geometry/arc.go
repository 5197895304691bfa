package geometry

import (
	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// holeCorrection nudges the hole of partial pies towards their flat side(s)
// so no background seam shows along the straight edges.
const holeCorrection = 1.0

// arc holds the math shared by the pie family. Pies compose it instead of
// inheriting from each other.
type arc struct {
	maxAngle float64
}

func (a arc) validate(cfg Config) error {
	if err := checkSize("radius", cfg.Radius); err != nil {
		return err
	}
	if err := checkPercent(cfg.InnerRadiusPercent); err != nil {
		return err
	}
	return checkCircular(cfg.Direction)
}

// layout fills in the arc fields shared by every pie for an already placed center.
func (a arc) layout(kind domain.Kind, cfg Config, b domain.Size, center domain.Point, radius, start float64) Layout {
	return Layout{
		Kind:        kind,
		Bounds:      b,
		Center:      center,
		Radius:      radius,
		InnerRadius: float64(cfg.InnerRadiusPercent) / 100 * radius,
		HoleCenter:  center,
		StartAngle:  start,
		Direction:   cfg.Direction,
		Orientation: cfg.Orientation,
		Extent:      a.maxAngle,
		LabelAnchor: center,
	}
}

func (a arc) value(progress, old, absoluteTarget, span float64) float64 {
	return interpolate(progress, old, fraction(absoluteTarget, span)*a.maxAngle)
}

func (a arc) displayValue(current, span float64) float64 {
	return current / a.maxAngle * span
}

// foreground is the wedge swept by the current angle.
func (a arc) foreground(current float64, l Layout) domain.Wedge {
	return domain.Wedge{
		Center:     l.Center,
		Radius:     l.Radius,
		StartAngle: l.StartAngle,
		Sweep:      sweepSign(l.Direction) * current,
	}
}

// partialSpec draws a half or quarter pie: background wedge, foreground wedge and a hole wedge.
func (a arc) partialSpec(current float64, l Layout) domain.DrawSpec {
	spec := domain.DrawSpec{
		Background: domain.Wedge{Center: l.Center, Radius: l.Radius, StartAngle: l.StartAngle, Sweep: l.Sweep},
		Foreground: a.foreground(current, l),
		Label:      &domain.Label{Anchor: l.LabelAnchor, HAlign: l.LabelHAlign, VAlign: l.LabelVAlign},
	}
	if l.InnerRadius > 0 {
		spec.Hole = domain.Wedge{Center: l.HoleCenter, Radius: l.InnerRadius, StartAngle: l.StartAngle, Sweep: l.Sweep}
	}
	return spec
}
