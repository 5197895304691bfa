package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tejashwikalptaru/goindicators/internal/animation"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/geometry"
	"github.com/tejashwikalptaru/goindicators/internal/ports"
)

// errNonFinite is returned from a tick that produced an unusable value.
var errNonFinite = errors.New("indicator value is not finite")

// Options configures a new IndicatorController. Start from DefaultOptions.
type Options struct {
	Kind          domain.Kind
	Range         domain.Range
	Shape         geometry.Config
	InitialTarget *float64
	Duration      time.Duration
	Curve         animation.Curve
	Label         LabelFormat
	Bounds        domain.Size // zero waits for the first SetBounds
}

// DefaultOptions returns the options of an unconfigured indicator of kind.
func DefaultOptions(kind domain.Kind) Options {
	return Options{
		Kind:     kind,
		Range:    domain.DefaultRange(),
		Shape:    geometry.DefaultConfig(kind),
		Duration: domain.DefaultAnimationMillis * time.Millisecond,
		Curve:    animation.AccelerateDecelerate,
	}
}

// IndicatorController animates one indicator towards requested values and pushes a
// DrawSpec to its surface on every frame.
//
// Thread-safety: none. Every method must be called from the thread that renders the
// indicator; background producers marshal their calls onto it (see animation.FrameTicker).
type IndicatorController struct {
	// Dependencies (injected)
	logger  *slog.Logger
	bus     ports.EventBus
	surface ports.RenderSurface

	id     string
	shape  geometry.Shape
	cfg    geometry.Config
	bounds domain.Size

	// layout is valid only when hasLayout is set
	layout    geometry.Layout
	hasLayout bool

	model    *RangeModel
	driver   *animation.Driver
	duration time.Duration
	curve    animation.Curve
	label    LabelFormat
}

// NewIndicatorController validates opts and creates a controller.
// A nil clock uses the wall clock.
func NewIndicatorController(
	logger *slog.Logger,
	bus ports.EventBus,
	surface ports.RenderSurface,
	clock ports.Clock,
	opts Options,
) (*IndicatorController, error) {
	shape, err := geometry.New(opts.Kind)
	if err != nil {
		return nil, err
	}
	model, err := NewRangeModel(opts.Range)
	if err != nil {
		return nil, err
	}
	if opts.Duration < 0 {
		return nil, durationError(opts.Duration)
	}
	layout, ok, err := resolveLayout(shape, opts.Shape, opts.Bounds)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger = logger.With(
		slog.String("component", "indicator"),
		slog.String("indicator_id", id),
		slog.String("kind", string(opts.Kind)))

	c := &IndicatorController{
		logger:    logger,
		bus:       bus,
		surface:   surface,
		id:        id,
		shape:     shape,
		cfg:       opts.Shape,
		bounds:    opts.Bounds,
		layout:    layout,
		hasLayout: ok,
		model:     model,
		driver:    animation.NewDriver(logger, clock),
		duration:  opts.Duration,
		curve:     opts.Curve,
		label:     opts.Label,
	}
	if c.curve == nil {
		c.curve = animation.AccelerateDecelerate
	}

	logger.Debug("indicator created",
		slog.Float64("min", opts.Range.Min),
		slog.Float64("max", opts.Range.Max),
		slog.Bool("laid_out", ok))

	c.render()
	if opts.InitialTarget != nil {
		if err := c.Indicate(*opts.InitialTarget); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// resolveLayout validates cfg and lays it out. ok is false when bounds are still
// unknown and the configuration gives no size to fall back on.
func resolveLayout(shape geometry.Shape, cfg geometry.Config, bounds domain.Size) (l geometry.Layout, ok bool, err error) {
	if err := shape.Validate(cfg); err != nil {
		return geometry.Layout{}, false, err
	}
	l, err = shape.Layout(cfg, bounds)
	if err != nil {
		if bounds.IsZero() && errors.Is(err, domain.ErrInvalidSize) {
			return geometry.Layout{}, false, nil
		}
		return geometry.Layout{}, false, err
	}
	return l, true, nil
}

func durationError(d time.Duration) error {
	return domain.NewValidationError("duration", d, "must not be negative", domain.ErrInvalidDuration)
}

// Configure replaces range and shape configuration together.
// Everything is validated before anything changes. A changed range resets the target to min.
func (c *IndicatorController) Configure(r domain.Range, cfg geometry.Config) error {
	if err := r.Validate(); err != nil {
		return err
	}
	layout, ok, err := resolveLayout(c.shape, cfg, c.bounds)
	if err != nil {
		return err
	}

	if r != c.model.Range() {
		// Cannot fail, r is valid.
		_ = c.model.SetRange(r.Min, r.Max)
	}
	c.commit(cfg, layout, ok)
	return c.animate()
}

// Indicate animates towards value. Values outside the range are logged and ignored.
func (c *IndicatorController) Indicate(value float64) error {
	switch c.model.Indicate(value) {
	case IndicateOutOfRange:
		r := c.model.Range()
		c.logger.Warn("value out of range, ignoring",
			slog.Float64("value", value),
			slog.Float64("min", r.Min),
			slog.Float64("max", r.Max))
		c.bus.Publish(domain.NewValueOutOfRangeEvent(c.id, value, r))
		return nil
	case IndicateUnchanged:
		return nil
	}
	return c.animate()
}

// animate starts a run from the current value to the model's target.
// Without a layout the run is deferred until bounds arrive.
func (c *IndicatorController) animate() error {
	if !c.hasLayout {
		return nil
	}

	// Cancel first so the previous run's events precede this run's.
	c.driver.Cancel()
	c.model.Capture()

	var (
		shape  = c.shape
		layout = c.layout
		from   = c.model.Old()
		abs    = c.model.AbsoluteTarget()
		span   = c.model.Span()
		target = c.model.Target()
		kind   = shape.Kind()
	)

	c.bus.Publish(domain.NewAnimationStartedEvent(c.id, kind, from, target, c.duration))

	return c.driver.Start(c.duration, c.curve,
		func(progress float64) error {
			v := shape.Value(progress, from, abs, span, layout)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: progress %v", errNonFinite, progress)
			}
			c.model.SetCurrent(v)
			c.render()
			return nil
		},
		func(outcome animation.Outcome) {
			if outcome == animation.OutcomeCompleted {
				c.bus.Publish(domain.NewAnimationCompletedEvent(c.id, kind, target))
				return
			}
			c.bus.Publish(domain.NewAnimationCancelledEvent(c.id, kind, target, c.model.Current()))
		})
}

// Tick advances the animation to the current time. Call once per frame.
func (c *IndicatorController) Tick() error {
	return c.driver.Tick()
}

// CancelAnimation stops the run in flight, leaving the indicator where it is.
func (c *IndicatorController) CancelAnimation() bool {
	return c.driver.Cancel()
}

// IsAnimating reports whether a run is in progress.
func (c *IndicatorController) IsAnimating() bool {
	return c.driver.IsRunning()
}

// SetAnimationDuration sets the duration of subsequent runs.
func (c *IndicatorController) SetAnimationDuration(d time.Duration) error {
	if d < 0 {
		return durationError(d)
	}
	c.duration = d
	return nil
}

// SetCurve sets the interpolation curve of subsequent runs. Nil restores the default.
func (c *IndicatorController) SetCurve(curve animation.Curve) {
	if curve == nil {
		curve = animation.AccelerateDecelerate
	}
	c.curve = curve
}

// SetLabelFormat changes the label and redraws.
func (c *IndicatorController) SetLabelFormat(f LabelFormat) {
	c.label = f
	c.render()
}

// SetBounds is called by the host whenever the surface is measured or resized.
func (c *IndicatorController) SetBounds(width, height float64) error {
	bounds := domain.Size{Width: width, Height: height}
	if width < 0 || height < 0 {
		return domain.NewValidationError("bounds", bounds, "must not be negative", domain.ErrInvalidSize)
	}
	if bounds == c.bounds {
		return nil
	}

	layout, ok, err := resolveLayout(c.shape, c.cfg, bounds)
	if err != nil {
		return err
	}
	c.bounds = bounds
	if ok && c.hasLayout && layout == c.layout {
		return nil
	}

	c.layout, c.hasLayout = layout, ok
	c.logger.Debug("indicator laid out",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Bool("laid_out", ok))
	c.render()
	return c.animate()
}

// SetRange changes the range, resets the target to min and animates there.
func (c *IndicatorController) SetRange(min, max float64) error {
	if err := c.model.SetRange(min, max); err != nil {
		return err
	}
	c.publishConfigured()
	return c.animate()
}

// SetRadius sets the radius of circles and pies in pixels.
func (c *IndicatorController) SetRadius(radius float64) error {
	if radius <= 0 {
		return domain.NewValidationError("radius", radius, "must be positive", domain.ErrInvalidSize)
	}
	cfg := c.cfg
	cfg.Radius = radius
	return c.reconfigure(cfg)
}

// SetSize sets the box of lines and triangles in pixels.
func (c *IndicatorController) SetSize(width, height float64) error {
	if width <= 0 {
		return domain.NewValidationError("width", width, "must be positive", domain.ErrInvalidSize)
	}
	if height <= 0 {
		return domain.NewValidationError("height", height, "must be positive", domain.ErrInvalidSize)
	}
	cfg := c.cfg
	cfg.Width, cfg.Height = width, height
	return c.reconfigure(cfg)
}

// SetDirection sets the fill direction.
func (c *IndicatorController) SetDirection(d domain.Direction) error {
	cfg := c.cfg
	cfg.Direction = d
	return c.reconfigure(cfg)
}

// SetOrientation sets the orientation of half and quarter pies.
func (c *IndicatorController) SetOrientation(o domain.Orientation) error {
	cfg := c.cfg
	cfg.Orientation = o
	return c.reconfigure(cfg)
}

// SetInnerRadius sets the hole of pies as a percentage of the radius.
func (c *IndicatorController) SetInnerRadius(percent int) error {
	cfg := c.cfg
	cfg.InnerRadiusPercent = percent
	return c.reconfigure(cfg)
}

// SetStartAngle sets where a full pie starts, in degrees.
func (c *IndicatorController) SetStartAngle(angle float64) error {
	cfg := c.cfg
	cfg.StartAngle = angle
	return c.reconfigure(cfg)
}

// reconfigure validates cfg, swaps it in with a fresh layout and replays the animation.
func (c *IndicatorController) reconfigure(cfg geometry.Config) error {
	layout, ok, err := resolveLayout(c.shape, cfg, c.bounds)
	if err != nil {
		return err
	}
	c.commit(cfg, layout, ok)
	return c.animate()
}

func (c *IndicatorController) commit(cfg geometry.Config, layout geometry.Layout, ok bool) {
	c.cfg = cfg
	c.layout, c.hasLayout = layout, ok
	c.publishConfigured()
}

func (c *IndicatorController) publishConfigured() {
	c.logger.Debug("indicator configured")
	c.bus.Publish(domain.NewIndicatorConfiguredEvent(c.id, c.shape.Kind(), c.model.Range()))
}

// render pushes the current frame to the surface.
func (c *IndicatorController) render() {
	if spec, ok := c.DrawSpec(); ok {
		c.surface.Render(spec)
	}
}

// DrawSpec builds the frame for the current value. ok is false before the first layout.
func (c *IndicatorController) DrawSpec() (domain.DrawSpec, bool) {
	if !c.hasLayout {
		return domain.DrawSpec{}, false
	}
	spec := c.shape.Primitives(c.model.Current(), c.layout)
	if !c.label.Show {
		spec.Label = nil
	} else if spec.Label != nil {
		spec.Label.Text = c.label.Format(c.labelValue())
	}
	return spec, true
}

func (c *IndicatorController) labelValue() float64 {
	if c.label.Animate {
		return c.shape.DisplayValue(c.model.Current(), c.model.Span(), c.layout) + c.model.Min()
	}
	return c.model.Target()
}

// ID returns the identifier used in logs and events.
func (c *IndicatorController) ID() string { return c.id }

// Kind returns the indicator shape.
func (c *IndicatorController) Kind() domain.Kind { return c.shape.Kind() }

// Min returns the minimum of the range.
func (c *IndicatorController) Min() float64 { return c.model.Min() }

// Max returns the maximum of the range.
func (c *IndicatorController) Max() float64 { return c.model.Max() }

// Span returns the width of the range.
func (c *IndicatorController) Span() float64 { return c.model.Span() }

// Range returns the configured range.
func (c *IndicatorController) Range() domain.Range { return c.model.Range() }

// Target returns the last accepted target.
func (c *IndicatorController) Target() float64 { return c.model.Target() }

// Current returns the animated value in native units (pixels or degrees).
func (c *IndicatorController) Current() float64 { return c.model.Current() }

// Duration returns the animation duration.
func (c *IndicatorController) Duration() time.Duration { return c.duration }

// Config returns the shape configuration.
func (c *IndicatorController) Config() geometry.Config { return c.cfg }

// Label returns the label format.
func (c *IndicatorController) Label() LabelFormat { return c.label }

// PreferredSize returns the natural size of the configured shape.
func (c *IndicatorController) PreferredSize() domain.Size { return c.shape.PreferredSize(c.cfg) }

// Layout returns the resolved geometry. ok is false before the first layout.
func (c *IndicatorController) Layout() (geometry.Layout, bool) { return c.layout, c.hasLayout }
