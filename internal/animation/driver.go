// Package animation drives normalized progress signals over time.
//
// A Driver owns at most one run. The host calls Tick once per rendered frame and the
// driver reports curve-shaped progress to the run's tick callback until the duration
// has elapsed. Drivers are single-threaded and hold no locks: every call must come from
// the thread that owns the indicator (see FrameTicker for marshalling ticks).
package animation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/ports"
)

// MinProgress is the smallest progress ever reported to a tick callback.
// The first frame of a run therefore always moves the indicator.
const MinProgress = 0.01

// State is the lifecycle state of a Driver.
type State int

// Driver states.
const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome tells a done callback how a run ended.
type Outcome int

// Run outcomes.
const (
	OutcomeCompleted Outcome = iota
	OutcomeCancelled
)

// TickFunc receives progress in [MinProgress, 1].
// Returning an error cancels the run and surfaces the error to the caller of Tick.
type TickFunc func(progress float64) error

// DoneFunc is called exactly once when a run completes or is cancelled.
type DoneFunc func(outcome Outcome)

type run struct {
	duration time.Duration
	started  time.Time
	curve    Curve
	onTick   TickFunc
	onDone   DoneFunc
	ticks    int
}

// Driver runs one animation at a time.
type Driver struct {
	logger *slog.Logger
	clock  ports.Clock

	state State
	run   *run
	last  float64 // last reported progress
}

// NewDriver creates an idle driver. A nil clock uses the wall clock.
func NewDriver(logger *slog.Logger, clock ports.Clock) *Driver {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Driver{
		logger: logger,
		clock:  clock,
		state:  StateIdle,
	}
}

// Start begins a new run, cancelling any run in flight.
// A zero duration completes immediately with a single tick at progress 1.
// A nil curve selects AccelerateDecelerate.
func (d *Driver) Start(duration time.Duration, curve Curve, onTick TickFunc, onDone DoneFunc) error {
	if duration < 0 {
		return domain.NewValidationError("duration", duration, "must not be negative", domain.ErrInvalidDuration)
	}
	if onTick == nil {
		panic("animation tick callback cannot be nil")
	}
	if curve == nil {
		curve = AccelerateDecelerate
	}

	d.Cancel()

	d.run = &run{
		duration: duration,
		started:  d.clock.Now(),
		curve:    curve,
		onTick:   onTick,
		onDone:   onDone,
	}
	d.state = StateRunning
	d.last = 0

	d.logger.Debug("animation started", slog.Duration("duration", duration))

	if duration == 0 {
		return d.deliver(1, true)
	}
	return nil
}

// Tick advances the running animation to the current clock time.
// It is a no-op when no run is active.
func (d *Driver) Tick() error {
	if d.state != StateRunning || d.run == nil {
		return nil
	}

	elapsed := d.clock.Now().Sub(d.run.started)
	if elapsed >= d.run.duration {
		return d.deliver(1, true)
	}

	t := float64(elapsed) / float64(d.run.duration)
	return d.deliver(clampProgress(d.run.curve(t)), false)
}

// deliver reports progress to the run and finishes it when final is set.
func (d *Driver) deliver(progress float64, final bool) error {
	r := d.run
	r.ticks++
	d.last = progress

	if err := r.onTick(progress); err != nil {
		d.logger.Warn("animation tick failed", slog.Any("error", err))
		if d.run == r {
			d.finish(StateCancelled, OutcomeCancelled)
		}
		return fmt.Errorf("animation tick: %w", err)
	}

	// The callback may have replaced or cancelled the run.
	if final && d.run == r {
		d.finish(StateCompleted, OutcomeCompleted)
	}
	return nil
}

// Cancel stops the run in flight, leaving the last reported progress in place.
// Returns true if a run was cancelled.
func (d *Driver) Cancel() bool {
	if d.state != StateRunning {
		return false
	}
	d.finish(StateCancelled, OutcomeCancelled)
	return true
}

func (d *Driver) finish(state State, outcome Outcome) {
	r := d.run
	d.run = nil
	d.state = state

	d.logger.Debug("animation finished",
		slog.String("state", state.String()),
		slog.Int("ticks", r.ticks),
		slog.Float64("progress", d.last))

	if r.onDone != nil {
		r.onDone(outcome)
	}
}

// IsRunning reports whether a run is in progress.
func (d *Driver) IsRunning() bool {
	return d.state == StateRunning
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Progress returns the last progress reported to a tick callback.
func (d *Driver) Progress() float64 {
	return d.last
}

func clampProgress(p float64) float64 {
	if p < MinProgress {
		return MinProgress
	}
	if p > 1 {
		return 1
	}
	return p
}
