// Package raster paints indicator frames into RGBA images.
//
// Shapes are filled with golang.org/x/image/vector; arcs are flattened into short
// line segments. Labels are drawn with the Go Regular font when it can be loaded
// and fall back to the fixed 7x13 bitmap face.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

// DefaultTextSize is the label size in points at scale 1.
const DefaultTextSize = 14

// Palette holds the paint used for each part of an indicator.
type Palette struct {
	Main       color.Color
	Background color.Color
	Hole       color.Color
	Text       color.Color
}

// DefaultPalette returns the stock indicator colours.
func DefaultPalette() Palette {
	return Palette{
		Main:       color.RGBA{R: 0x33, G: 0xb5, B: 0xe5, A: 0xff},
		Background: color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Hole:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Text:       color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
	}
}

// Renderer turns a DrawSpec into pixels. It is safe for concurrent use as long as
// each call draws into its own image.
type Renderer struct {
	palette  Palette
	textSize float64
	sfnt     *opentype.Font
}

// NewRenderer creates a renderer. A non-positive textSize uses DefaultTextSize.
func NewRenderer(p Palette, textSize float64) *Renderer {
	if textSize <= 0 {
		textSize = DefaultTextSize
	}
	r := &Renderer{palette: p, textSize: textSize}
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		r.sfnt = f
	}
	return r
}

// Palette returns the colours the renderer paints with.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// Render paints spec into a new width x height image.
func (r *Renderer) Render(spec domain.DrawSpec, width, height int, scale float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r.Draw(img, spec, scale)
	return img
}

// Draw paints spec over dst. Spec coordinates are multiplied by scale.
func (r *Renderer) Draw(dst *image.RGBA, spec domain.DrawSpec, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	r.fill(dst, spec.Background, r.palette.Background, scale)
	r.fill(dst, spec.Foreground, r.palette.Main, scale)
	r.fill(dst, spec.Hole, r.palette.Hole, scale)
	if spec.Label != nil && spec.Label.Text != "" {
		r.text(dst, *spec.Label, scale)
	}
}

func (r *Renderer) fill(dst *image.RGBA, p domain.Primitive, c color.Color, scale float64) {
	if p == nil || c == nil {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	if !tracePath(z, p, scale) {
		return
	}
	z.DrawOp = draw.Over
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// tracePath adds p to z. It returns false when p covers no area.
func tracePath(z *vector.Rasterizer, p domain.Primitive, s float64) bool {
	switch v := p.(type) {
	case domain.Circle:
		if v.Radius <= 0 {
			return false
		}
		traceArc(z, v.Center, v.Radius, 0, 360, s, false)
	case domain.Wedge:
		if v.Radius <= 0 || v.Sweep == 0 {
			return false
		}
		full := math.Abs(v.Sweep) >= 360
		traceArc(z, v.Center, v.Radius, v.StartAngle, v.Sweep, s, !full)
	case domain.Rect:
		if v.Width() <= 0 || v.Height() <= 0 {
			return false
		}
		z.MoveTo(f32(v.Min.X*s), f32(v.Min.Y*s))
		z.LineTo(f32(v.Max.X*s), f32(v.Min.Y*s))
		z.LineTo(f32(v.Max.X*s), f32(v.Max.Y*s))
		z.LineTo(f32(v.Min.X*s), f32(v.Max.Y*s))
		z.ClosePath()
	case domain.Polygon:
		if len(v.Points) < 3 {
			return false
		}
		z.MoveTo(f32(v.Points[0].X*s), f32(v.Points[0].Y*s))
		for _, pt := range v.Points[1:] {
			z.LineTo(f32(pt.X*s), f32(pt.Y*s))
		}
		z.ClosePath()
	default:
		return false
	}
	return true
}

// traceArc flattens an arc. With throughCenter the path is closed through the center (a wedge).
func traceArc(z *vector.Rasterizer, c domain.Point, radius, startDeg, sweepDeg, s float64, throughCenter bool) {
	n := arcSegments(radius*s, sweepDeg)
	start := startDeg * math.Pi / 180
	step := sweepDeg * math.Pi / 180 / float64(n)

	cx, cy, rr := c.X*s, c.Y*s, radius*s
	point := func(i int) (float32, float32) {
		a := start + step*float64(i)
		return f32(cx + rr*math.Cos(a)), f32(cy + rr*math.Sin(a))
	}

	if throughCenter {
		z.MoveTo(f32(cx), f32(cy))
		x, y := point(0)
		z.LineTo(x, y)
	} else {
		z.MoveTo(point(0))
	}
	for i := 1; i <= n; i++ {
		z.LineTo(point(i))
	}
	z.ClosePath()
}

// arcSegments keeps segments about two pixels long.
func arcSegments(radius, sweepDeg float64) int {
	length := math.Abs(sweepDeg) / 360 * 2 * math.Pi * radius
	n := int(math.Ceil(length / 2))
	return min(max(n, 8), 720)
}

func (r *Renderer) text(dst *image.RGBA, l domain.Label, scale float64) {
	face := r.face(scale)
	defer func() { _ = face.Close() }()

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(r.palette.Text), Face: face}
	width := d.MeasureString(l.Text)
	m := face.Metrics()

	x := fixed.Int26_6(l.Anchor.X * scale * 64)
	switch l.HAlign {
	case domain.AlignCenter:
		x -= width / 2
	case domain.AlignEnd:
		x -= width
	}

	y := fixed.Int26_6(l.Anchor.Y * scale * 64)
	switch l.VAlign {
	case domain.AlignMiddle:
		y += (m.Ascent - m.Descent) / 2
	case domain.AlignBelow:
		y += m.Ascent
	}

	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(l.Text)
}

func (r *Renderer) face(scale float64) font.Face {
	if r.sfnt != nil {
		f, err := opentype.NewFace(r.sfnt, &opentype.FaceOptions{
			Size:    r.textSize * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return f
		}
	}
	return basicfont.Face7x13
}

func f32(v float64) float32 {
	return float32(v)
}
