package animation

import (
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// Curve maps linear time progress t in [0, 1] to animation progress.
// Curves may overshoot [0, 1]; the Driver clamps what it reports.
type Curve func(t float64) float64

// FromEase adapts a gween easing function to a Curve over the unit interval.
func FromEase(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly, (1-cos(pi*t))/2.
// This is the default indicator curve.
var AccelerateDecelerate = FromEase(ease.InOutSine)

// Curve names accepted by configuration.
const (
	CurveLinear               = "linear"
	CurveAccelerate           = "accelerate"
	CurveDecelerate           = "decelerate"
	CurveAccelerateDecelerate = "accelerate_decelerate"
	CurveEaseInOutCubic       = "ease_in_out_cubic"
	CurveBounce               = "bounce"
	CurveElastic              = "elastic"
	CurveBack                 = "back"
)

var curves = map[string]Curve{
	CurveLinear:               Linear,
	CurveAccelerate:           FromEase(ease.InQuad),
	CurveDecelerate:           FromEase(ease.OutQuad),
	CurveAccelerateDecelerate: AccelerateDecelerate,
	CurveEaseInOutCubic:       FromEase(ease.InOutCubic),
	CurveBounce:               FromEase(ease.OutBounce),
	CurveElastic:              FromEase(ease.OutElastic),
	CurveBack:                 FromEase(ease.OutBack),
}

// CurveByName looks up a registered curve.
func CurveByName(name string) (Curve, error) {
	c, ok := curves[name]
	if !ok {
		return nil, domain.NewValidationError("curve", name, "unknown curve", domain.ErrUnknownCurve)
	}
	return c, nil
}

// CurveNames returns the registered curve names, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
