// Package service provides the indicator engine: range bookkeeping and the controller
// that ties the range, the animation driver and a shape together.
package service

import (
	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// IndicateResult tells the controller what an indicate request did to the model.
type IndicateResult int

// Indicate results.
const (
	IndicateAccepted   IndicateResult = iota // target changed, a run should start
	IndicateUnchanged                        // value equals the current target
	IndicateOutOfRange                       // value rejected, nothing changed
)

// RangeModel holds the value range, the requested target and the animated value.
// old and current are in the shape's native unit; target is in range units.
type RangeModel struct {
	rng       domain.Range
	target    float64
	hasTarget bool
	old       float64
	current   float64
}

// NewRangeModel creates a model over r with the target at r.Min.
func NewRangeModel(r domain.Range) (*RangeModel, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &RangeModel{rng: r, target: r.Min}, nil
}

// SetRange replaces the range and resets the target to the new minimum.
// On error nothing changes.
func (m *RangeModel) SetRange(min, max float64) error {
	r := domain.Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return err
	}
	m.rng = r
	m.target = r.Min
	m.hasTarget = false
	return nil
}

// Indicate requests a new target. Values outside the range are rejected, not clamped.
func (m *RangeModel) Indicate(value float64) IndicateResult {
	if !m.rng.Contains(value) {
		return IndicateOutOfRange
	}
	if m.hasTarget && value == m.target {
		return IndicateUnchanged
	}
	m.target = value
	m.hasTarget = true
	m.old = m.current
	return IndicateAccepted
}

// Capture makes the current value the starting point of the next run.
func (m *RangeModel) Capture() {
	m.old = m.current
}

// SetCurrent stores the value produced by the latest animation frame.
func (m *RangeModel) SetCurrent(v float64) {
	m.current = v
}

func (m *RangeModel) Range() domain.Range { return m.rng }
func (m *RangeModel) Min() float64        { return m.rng.Min }
func (m *RangeModel) Max() float64        { return m.rng.Max }
func (m *RangeModel) Span() float64       { return m.rng.Span() }
func (m *RangeModel) Target() float64     { return m.target }
func (m *RangeModel) HasTarget() bool     { return m.hasTarget }
func (m *RangeModel) Old() float64        { return m.old }
func (m *RangeModel) Current() float64    { return m.current }

// AbsoluteTarget is the target shifted so the range minimum maps to zero.
func (m *RangeModel) AbsoluteTarget() float64 {
	return m.target - m.rng.Min
}
