package geometry

import (
	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// triangle fills a right triangle that rises towards its tall edge.
// The value is the filled width in pixels; the foreground is the similar sub-triangle.
type triangle struct{}

func (triangle) Kind() domain.Kind { return domain.KindTriangle }

func (triangle) Validate(cfg Config) error {
	if err := checkBoxSize(cfg); err != nil {
		return err
	}
	if cfg.Direction != domain.LeftRight && cfg.Direction != domain.RightLeft {
		return domain.NewValidationError("direction", cfg.Direction.String(), "triangles fill left_right or right_left", domain.ErrUnsupportedDirection)
	}
	return nil
}

func (triangle) PreferredSize(cfg Config) domain.Size {
	return boxPreferredSize(cfg)
}

func (s triangle) Layout(cfg Config, bounds domain.Size) (Layout, error) {
	if err := s.Validate(cfg); err != nil {
		return Layout{}, err
	}
	b, err := resolveBounds(s, cfg, bounds)
	if err != nil {
		return Layout{}, err
	}

	l := boxLayout(domain.KindTriangle, cfg, b)
	x := l.Origin.X + l.Width*2/3
	if cfg.Direction == domain.RightLeft {
		x = l.Origin.X + l.Width/3
	}
	l.LabelAnchor = domain.Point{X: x, Y: l.Origin.Y + l.Height*2/3}
	return l, nil
}

func (triangle) Value(progress, old, absoluteTarget, span float64, l Layout) float64 {
	return interpolate(progress, old, axisGoal(absoluteTarget, span, l))
}

func (triangle) Primitives(current float64, l Layout) domain.DrawSpec {
	x0, y0 := l.Origin.X, l.Origin.Y
	w, h := l.Width, l.Height
	bottom := y0 + h

	var ratio float64
	if w > 0 {
		ratio = current / w
	}

	var bg, fg domain.Polygon
	if l.Direction == domain.RightLeft {
		// Tall edge on the left, filled from the right.
		bg = polygon(x0, bottom, x0, y0, x0+w, bottom)
		fg = polygon(x0+current, bottom, x0+current, y0+h*ratio, x0+w, bottom)
	} else {
		bg = polygon(x0, bottom, x0+w, y0, x0+w, bottom)
		fg = polygon(x0, bottom, x0+current, y0+h*(1-ratio), x0+current, bottom)
	}

	return domain.DrawSpec{
		Background: bg,
		Foreground: fg,
		Label:      &domain.Label{Anchor: l.LabelAnchor},
	}
}

func (triangle) DisplayValue(current, span float64, l Layout) float64 {
	return axisDisplayValue(current, span, l)
}

func polygon(coords ...float64) domain.Polygon {
	pts := make([]domain.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, domain.Point{X: coords[i], Y: coords[i+1]})
	}
	return domain.Polygon{Points: pts}
}
