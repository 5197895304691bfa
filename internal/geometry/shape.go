// Package geometry maps indicator values onto draw primitives.
//
// Each shape is a stateless strategy. Layout is a pure function of the shape
// configuration and the surface bounds; the controller stores the result and
// hands it back to Value, Primitives and DisplayValue on every frame.
package geometry

import (
	"math"

	"github.com/tejashwikalptaru/goindicators/internal/animation"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// Config is the per-shape configuration. Zero sizes are derived from the bounds.
type Config struct {
	Radius             float64
	Width              float64
	Height             float64
	Direction          domain.Direction
	Orientation        domain.Orientation
	InnerRadiusPercent int
	StartAngle         float64
}

// DefaultConfig returns the configuration a freshly created indicator of kind uses.
func DefaultConfig(kind domain.Kind) Config {
	cfg := Config{InnerRadiusPercent: domain.DefaultInnerRadiusPercent}
	switch kind {
	case domain.KindLine, domain.KindTriangle:
		cfg.Direction = domain.LeftRight
	case domain.KindHalfPie:
		cfg.Orientation = domain.North
	case domain.KindQuarterPie:
		cfg.Orientation = domain.NorthEast
	}
	return cfg
}

// Layout is the resolved geometry of one indicator for a given bounds.
type Layout struct {
	Kind   domain.Kind
	Bounds domain.Size

	// Origin and Width/Height describe the box of linear shapes.
	Origin domain.Point
	Width  float64
	Height float64

	// Center, Radius and the angles describe arc shapes.
	Center      domain.Point
	Radius      float64
	InnerRadius float64
	HoleCenter  domain.Point
	StartAngle  float64
	Sweep       float64 // signed full sweep of the background, zero for full circles

	Direction   domain.Direction
	Orientation domain.Orientation

	// Extent is the native maximum: pixels for linear shapes and circles, degrees for pies.
	Extent float64

	LabelAnchor domain.Point
	LabelHAlign domain.HAlign
	LabelVAlign domain.VAlign
}

// Shape is the capability every indicator shape implements.
type Shape interface {
	Kind() domain.Kind

	// Validate checks the configuration without looking at bounds.
	Validate(cfg Config) error

	// Layout resolves the geometry. Zero bounds fall back to PreferredSize.
	Layout(cfg Config, bounds domain.Size) (Layout, error)

	// PreferredSize is the natural size of the shape, zero when nothing is configured.
	PreferredSize(cfg Config) domain.Size

	// Value returns the current value in native units for the given progress.
	Value(progress, old, absoluteTarget, span float64, l Layout) float64

	// Primitives builds the frame for the current value. The label carries anchor and
	// alignment only; the controller fills in the text.
	Primitives(current float64, l Layout) domain.DrawSpec

	// DisplayValue converts the current value back into an offset from the range minimum.
	DisplayValue(current, span float64, l Layout) float64
}

var shapes = map[domain.Kind]Shape{
	domain.KindCircle:     circle{},
	domain.KindLine:       line{},
	domain.KindTriangle:   triangle{},
	domain.KindPie:        pie{},
	domain.KindHalfPie:    halfPie{},
	domain.KindQuarterPie: quarterPie{},
}

// New returns the strategy for kind.
func New(kind domain.Kind) (Shape, error) {
	s, ok := shapes[kind]
	if !ok {
		return nil, domain.NewValidationError("shape", string(kind), "unknown shape", domain.ErrUnsupportedShape)
	}
	return s, nil
}

// interpolate applies the shared value law: old + (goal-old) * max(progress, MinProgress).
func interpolate(progress, old, goal float64) float64 {
	return old + (goal-old)*math.Max(progress, animation.MinProgress)
}

// fraction is the share of the span covered by absoluteTarget.
func fraction(absoluteTarget, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return absoluteTarget / span
}

func checkSize(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.NewValidationError(field, v, "must not be negative", domain.ErrInvalidSize)
	}
	return nil
}

func checkPercent(p int) error {
	if p < 0 || p > 100 {
		return domain.NewValidationError("inner_radius_percent", p, "must be between 0 and 100", domain.ErrInvalidPercent)
	}
	return nil
}

func checkCircular(d domain.Direction) error {
	if !d.Circular() {
		return domain.NewValidationError("direction", d.String(), "arc shapes fill clockwise or counter_clockwise", domain.ErrUnsupportedDirection)
	}
	return nil
}

// resolveBounds picks the bounds to lay out in.
func resolveBounds(s Shape, cfg Config, bounds domain.Size) (domain.Size, error) {
	if !bounds.IsZero() {
		return bounds, nil
	}
	pref := s.PreferredSize(cfg)
	if pref.IsZero() {
		return domain.Size{}, domain.NewValidationError("bounds", bounds, "no bounds and no configured size", domain.ErrInvalidSize)
	}
	return pref, nil
}

func sweepSign(d domain.Direction) float64 {
	if d == domain.CounterClockwise {
		return -1
	}
	return 1
}
