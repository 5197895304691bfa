package app

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	fyneui "github.com/tejashwikalptaru/goindicators/internal/adapter/ui/fyne"
	"github.com/tejashwikalptaru/goindicators/internal/animation"
	"github.com/tejashwikalptaru/goindicators/internal/service"
)

var _ fyneui.DemoControl = (*Demo)(nil)

// Demo periodically sends a random in-range value to every indicator.
// It runs on its own ticker and dispatches onto the UI thread like the frame ticker.
type Demo struct {
	logger      *slog.Logger
	ticker      *animation.FrameTicker
	controllers []*service.IndicatorController
	rng         *rand.Rand
}

// NewDemo creates a paused demo. A nil rng is seeded randomly.
func NewDemo(
	logger *slog.Logger,
	interval time.Duration,
	dispatch animation.DispatchFunc,
	controllers []*service.IndicatorController,
	rng *rand.Rand,
) *Demo {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Demo{
		logger:      logger,
		controllers: controllers,
		rng:         rng,
	}
	d.ticker = animation.NewFrameTicker(logger, interval, dispatch, d.Step)
	return d
}

// Step indicates one random value per controller, rounded to a tenth.
func (d *Demo) Step() {
	for _, c := range d.controllers {
		v := math.Round((c.Min()+d.rng.Float64()*c.Span())*10) / 10
		v = min(max(v, c.Min()), c.Max())
		if err := c.Indicate(v); err != nil {
			d.logger.Warn("demo value rejected",
				slog.String("indicator_id", c.ID()),
				slog.Float64("value", v),
				slog.Any("error", err))
		}
	}
}

// Pause stops producing values. Indicators finish their current run.
func (d *Demo) Pause() {
	d.ticker.Stop()
}

// Resume starts producing values again.
func (d *Demo) Resume() {
	d.ticker.Start()
}

// Running reports whether the demo is producing values.
func (d *Demo) Running() bool {
	return d.ticker.IsRunning()
}
