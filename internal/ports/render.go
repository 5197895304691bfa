// Package ports define the rendering and timing boundaries of the indicator engine.
// Controllers depend on these interfaces only, never on a concrete UI toolkit.
package ports

import (
	"time"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// RenderSurface receives one DrawSpec per frame and is responsible for painting it.
//
// Thread-safety: Render is called on the thread that drives the controller.
// Implementations that paint on another thread must copy what they need.
type RenderSurface interface {
	// Render stores or paints the frame. It must not call back into the controller.
	Render(spec domain.DrawSpec)
}

// RenderFunc adapts a plain function to RenderSurface.
type RenderFunc func(spec domain.DrawSpec)

// Render implements RenderSurface.
func (f RenderFunc) Render(spec domain.DrawSpec) {
	f(spec)
}

// Clock supplies the current time to animation drivers.
// Tests substitute a manual clock to control elapsed time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameSource produces frame callbacks until stopped.
type FrameSource interface {
	Start()
	Stop()
	IsRunning() bool
}
