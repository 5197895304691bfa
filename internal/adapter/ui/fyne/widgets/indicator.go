// Package widgets provides custom Fyne widgets for the indicator showcase.
package widgets

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/goindicators/internal/adapter/render/raster"
	"github.com/tejashwikalptaru/goindicators/internal/domain"
	"github.com/tejashwikalptaru/goindicators/internal/ports"
)

var _ ports.RenderSurface = (*Indicator)(nil)

// fallbackMinSize is used when the controller has no preferred size.
var fallbackMinSize = fyne.NewSize(120, 120)

// Indicator is a widget that paints the frames produced by one indicator controller.
// Frames are stored by Render and painted by the raster generator on the next refresh.
type Indicator struct {
	widget.BaseWidget

	raster   *canvas.Raster
	renderer *raster.Renderer
	minSize  fyne.Size

	mu      sync.RWMutex
	spec    domain.DrawSpec
	hasSpec bool

	onResize func(size fyne.Size)
}

// NewIndicator creates an indicator widget painting with r.
// A zero minSize falls back to 120x120.
func NewIndicator(r *raster.Renderer, minSize fyne.Size) *Indicator {
	if minSize.Width <= 0 || minSize.Height <= 0 {
		minSize = fallbackMinSize
	}
	v := &Indicator{renderer: r, minSize: minSize}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *Indicator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize returns the preferred size of the hosted shape.
func (v *Indicator) MinSize() fyne.Size {
	return v.minSize
}

// SetOnResize registers the callback that reports new bounds to the controller.
func (v *Indicator) SetOnResize(fn func(size fyne.Size)) {
	v.onResize = fn
}

// Resize lays out the raster and forwards the new size.
func (v *Indicator) Resize(size fyne.Size) {
	if size == v.Size() {
		return
	}
	v.BaseWidget.Resize(size)
	if v.onResize != nil {
		v.onResize(size)
	}
}

// Render implements ports.RenderSurface. It must be called on the Fyne thread.
func (v *Indicator) Render(spec domain.DrawSpec) {
	v.mu.Lock()
	v.spec = spec
	v.hasSpec = true
	v.mu.Unlock()

	v.raster.Refresh()
}

// Frame returns the last rendered frame.
func (v *Indicator) Frame() (domain.DrawSpec, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.spec, v.hasSpec
}

// draw is the raster generator. Frame coordinates are in widget units;
// w and h are device pixels.
func (v *Indicator) draw(w, h int) image.Image {
	spec, ok := v.Frame()
	if !ok || w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}

	scale := 1.0
	if size := v.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}
	return v.renderer.Render(spec, w, h, scale)
}
