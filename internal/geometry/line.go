package geometry

import (
	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// line fills a bar along one axis; the value is the filled length in pixels.
type line struct{}

func (line) Kind() domain.Kind { return domain.KindLine }

func (line) Validate(cfg Config) error {
	if err := checkBoxSize(cfg); err != nil {
		return err
	}
	switch cfg.Direction {
	case domain.LeftRight, domain.RightLeft, domain.TopBottom, domain.BottomTop:
		return nil
	}
	return domain.NewValidationError("direction", cfg.Direction.String(), "lines fill along an axis", domain.ErrUnsupportedDirection)
}

func (line) PreferredSize(cfg Config) domain.Size {
	return boxPreferredSize(cfg)
}

func (s line) Layout(cfg Config, bounds domain.Size) (Layout, error) {
	if err := s.Validate(cfg); err != nil {
		return Layout{}, err
	}
	b, err := resolveBounds(s, cfg, bounds)
	if err != nil {
		return Layout{}, err
	}

	l := boxLayout(domain.KindLine, cfg, b)
	l.LabelAnchor = domain.Point{X: l.Origin.X + l.Width/2, Y: l.Origin.Y + l.Height/2}
	return l, nil
}

func (line) Value(progress, old, absoluteTarget, span float64, l Layout) float64 {
	return interpolate(progress, old, axisGoal(absoluteTarget, span, l))
}

func (line) Primitives(current float64, l Layout) domain.DrawSpec {
	x0, y0 := l.Origin.X, l.Origin.Y
	x1, y1 := x0+l.Width, y0+l.Height

	var fg domain.Rect
	switch l.Direction {
	case domain.LeftRight:
		fg = domain.Rect{Min: domain.Point{X: x0, Y: y0}, Max: domain.Point{X: x0 + current, Y: y1}}
	case domain.RightLeft:
		fg = domain.Rect{Min: domain.Point{X: x0 + current, Y: y0}, Max: domain.Point{X: x1, Y: y1}}
	case domain.TopBottom:
		fg = domain.Rect{Min: domain.Point{X: x0, Y: y0}, Max: domain.Point{X: x1, Y: y0 + current}}
	default:
		fg = domain.Rect{Min: domain.Point{X: x0, Y: y0 + current}, Max: domain.Point{X: x1, Y: y1}}
	}

	return domain.DrawSpec{
		Background: domain.Rect{Min: l.Origin, Max: domain.Point{X: x1, Y: y1}},
		Foreground: fg,
		Label:      &domain.Label{Anchor: l.LabelAnchor},
	}
}

func (line) DisplayValue(current, span float64, l Layout) float64 {
	return axisDisplayValue(current, span, l)
}

func checkBoxSize(cfg Config) error {
	if err := checkSize("width", cfg.Width); err != nil {
		return err
	}
	return checkSize("height", cfg.Height)
}

// boxPreferredSize mirrors the natural aspect of linear shapes: height defaults to half the width.
func boxPreferredSize(cfg Config) domain.Size {
	w, h := cfg.Width, cfg.Height
	switch {
	case w == 0 && h == 0:
		return domain.Size{}
	case h == 0:
		h = w / 2
	case w == 0:
		w = h * 2
	}
	return domain.Size{Width: w, Height: h}
}

// boxLayout centers a configured box inside the bounds. Unset dimensions fill the bounds.
func boxLayout(kind domain.Kind, cfg Config, b domain.Size) Layout {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = b.Width
	}
	if h == 0 {
		h = b.Height
	}

	origin := domain.Point{}
	if b.Width > w {
		origin.X = (b.Width - w) / 2
	}
	if b.Height > h {
		origin.Y = (b.Height - h) / 2
	}

	extent := h
	if cfg.Direction.Horizontal() {
		extent = w
	}

	return Layout{
		Kind:      kind,
		Bounds:    b,
		Origin:    origin,
		Width:     w,
		Height:    h,
		Direction: cfg.Direction,
		Extent:    extent,
	}
}

// axisGoal is the filled length for absoluteTarget. Reversed directions measure from the far edge.
func axisGoal(absoluteTarget, span float64, l Layout) float64 {
	if l.Direction.Reversed() {
		return fraction(span-absoluteTarget, span) * l.Extent
	}
	return fraction(absoluteTarget, span) * l.Extent
}

func axisDisplayValue(current, span float64, l Layout) float64 {
	if l.Extent <= 0 {
		return 0
	}
	ratio := current / l.Extent
	if l.Direction.Reversed() {
		return (1 - ratio) * span
	}
	return ratio * span
}
