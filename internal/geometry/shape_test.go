package geometry

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/goindicators/internal/domain"
)

const epsilon = 1e-9

func mustShape(t *testing.T, kind domain.Kind) Shape {
	t.Helper()
	s, err := New(kind)
	require.NoError(t, err)
	return s
}

func mustLayout(t *testing.T, kind domain.Kind, cfg Config, bounds domain.Size) (Shape, Layout) {
	t.Helper()
	s := mustShape(t, kind)
	l, err := s.Layout(cfg, bounds)
	require.NoError(t, err)
	return s, l
}

func TestNew_UnknownShape(t *testing.T) {
	_, err := New("hexagon")
	assert.ErrorIs(t, err, domain.ErrUnsupportedShape)
}

func TestNew_AllKinds(t *testing.T) {
	for _, kind := range domain.Kinds() {
		s := mustShape(t, kind)
		assert.Equal(t, kind, s.Kind())
		assert.NoError(t, s.Validate(DefaultConfig(kind)), kind)
	}
}

func TestValue_FullProgressReachesMappedTarget(t *testing.T) {
	bounds := domain.Size{Width: 200, Height: 200}
	tests := []struct {
		name string
		kind domain.Kind
		cfg  Config
		abs  float64
		span float64
		old  float64
		want float64
	}{
		{"circle", domain.KindCircle, Config{Radius: 100}, 50, 100, 0, 50},
		{"circle from old", domain.KindCircle, Config{Radius: 100}, 80, 100, 30, 80},
		{"line left_right", domain.KindLine, Config{Width: 200, Height: 20, Direction: domain.LeftRight}, 25, 100, 0, 50},
		{"line right_left", domain.KindLine, Config{Width: 200, Height: 20, Direction: domain.RightLeft}, 25, 100, 0, 150},
		{"line top_bottom", domain.KindLine, Config{Width: 20, Height: 100, Direction: domain.TopBottom}, 40, 100, 0, 40},
		{"line bottom_top", domain.KindLine, Config{Width: 20, Height: 100, Direction: domain.BottomTop}, 40, 100, 0, 60},
		{"triangle", domain.KindTriangle, Config{Width: 120, Height: 60, Direction: domain.LeftRight}, 50, 100, 0, 60},
		{"triangle right_left", domain.KindTriangle, Config{Width: 120, Height: 60, Direction: domain.RightLeft}, 25, 100, 0, 90},
		{"pie", domain.KindPie, Config{Radius: 50}, 25, 100, 0, 90},
		{"half pie", domain.KindHalfPie, Config{Radius: 50, Orientation: domain.North}, 50, 100, 10, 90},
		{"quarter pie", domain.KindQuarterPie, Config{Radius: 50, Orientation: domain.NorthEast}, 50, 100, 0, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, l := mustLayout(t, tt.kind, tt.cfg, bounds)
			got := s.Value(1, tt.old, tt.abs, tt.span, l)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestValue_ZeroProgressAppliesMinimum(t *testing.T) {
	s, l := mustLayout(t, domain.KindPie, Config{Radius: 50}, domain.Size{})

	// delta is 360, so the first frame moves by 1% of it.
	assert.InDelta(t, 3.6, s.Value(0, 0, 100, 100, l), epsilon)
	assert.InDelta(t, 3.6, s.Value(0.005, 0, 100, 100, l), epsilon)
}

func TestValue_LawHoldsForAllShapes(t *testing.T) {
	bounds := domain.Size{Width: 300, Height: 180}
	for _, kind := range domain.Kinds() {
		s, l := mustLayout(t, kind, DefaultConfig(kind), bounds)

		law := func(p, old, abs uint16) bool {
			progress := float64(p%1001) / 1000
			o := float64(old % 500)
			a := float64(abs % 101)
			const span = 100.0

			full := s.Value(1, o, a, span, l)
			delta := full - o
			got := s.Value(progress, o, a, span, l)
			want := o + delta*math.Max(progress, 0.01)
			return math.Abs(got-want) < 1e-6
		}
		assert.NoError(t, quick.Check(law, nil), kind)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		kind domain.Kind
		cfg  Config
		err  error
	}{
		{"negative radius", domain.KindCircle, Config{Radius: -1}, domain.ErrInvalidSize},
		{"negative width", domain.KindLine, Config{Width: -5, Direction: domain.LeftRight}, domain.ErrInvalidSize},
		{"line clockwise", domain.KindLine, Config{Direction: domain.Clockwise}, domain.ErrUnsupportedDirection},
		{"triangle top_bottom", domain.KindTriangle, Config{Direction: domain.TopBottom}, domain.ErrUnsupportedDirection},
		{"pie left_right", domain.KindPie, Config{Direction: domain.LeftRight}, domain.ErrUnsupportedDirection},
		{"pie percent", domain.KindPie, Config{InnerRadiusPercent: 101}, domain.ErrInvalidPercent},
		{"pie negative percent", domain.KindPie, Config{InnerRadiusPercent: -1}, domain.ErrInvalidPercent},
		{"pie angle 360", domain.KindPie, Config{StartAngle: 360}, domain.ErrInvalidAngle},
		{"pie negative angle", domain.KindPie, Config{StartAngle: -10}, domain.ErrInvalidAngle},
		{"half pie diagonal", domain.KindHalfPie, Config{Orientation: domain.SouthWest}, domain.ErrUnsupportedOrientation},
		{"quarter pie axis", domain.KindQuarterPie, Config{Orientation: domain.North}, domain.ErrUnsupportedOrientation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustShape(t, tt.kind)
			assert.ErrorIs(t, s.Validate(tt.cfg), tt.err)

			_, err := s.Layout(tt.cfg, domain.Size{Width: 100, Height: 100})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLayout_NoBoundsNoSize(t *testing.T) {
	for _, kind := range domain.Kinds() {
		_, err := mustShape(t, kind).Layout(DefaultConfig(kind), domain.Size{})
		assert.ErrorIs(t, err, domain.ErrInvalidSize, kind)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	cfg := Config{Radius: 40, Orientation: domain.East, InnerRadiusPercent: 30}
	s := mustShape(t, domain.KindHalfPie)

	a, err := s.Layout(cfg, domain.Size{Width: 90, Height: 120})
	require.NoError(t, err)
	b, err := s.Layout(cfg, domain.Size{Width: 90, Height: 120})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCircle_LayoutAndPrimitives(t *testing.T) {
	s, l := mustLayout(t, domain.KindCircle, Config{}, domain.Size{Width: 200, Height: 120})

	assert.Equal(t, domain.Point{X: 100, Y: 60}, l.Center)
	assert.Equal(t, 60.0, l.Radius)

	spec := s.Primitives(30, l)
	assert.Equal(t, domain.Circle{Center: l.Center, Radius: 60}, spec.Background)
	assert.Equal(t, domain.Circle{Center: l.Center, Radius: 30}, spec.Foreground)
	assert.Nil(t, spec.Hole)
	require.NotNil(t, spec.Label)
	assert.Equal(t, l.Center, spec.Label.Anchor)

	assert.InDelta(t, 50, s.DisplayValue(30, 100, l), epsilon)
	assert.Equal(t, domain.Size{Width: 80, Height: 80}, s.PreferredSize(Config{Radius: 40}))
}

func TestLine_CenteredInBounds(t *testing.T) {
	s, l := mustLayout(t, domain.KindLine, Config{Width: 100, Height: 10, Direction: domain.LeftRight},
		domain.Size{Width: 200, Height: 50})

	assert.Equal(t, domain.Point{X: 50, Y: 20}, l.Origin)
	assert.Equal(t, 100.0, l.Extent)
	assert.Equal(t, domain.Point{X: 100, Y: 25}, l.LabelAnchor)

	spec := s.Primitives(40, l)
	assert.Equal(t, domain.Rect{Min: domain.Point{X: 50, Y: 20}, Max: domain.Point{X: 150, Y: 30}}, spec.Background)
	assert.Equal(t, domain.Rect{Min: domain.Point{X: 50, Y: 20}, Max: domain.Point{X: 90, Y: 30}}, spec.Foreground)
}

func TestLine_ForegroundPerDirection(t *testing.T) {
	bounds := domain.Size{Width: 100, Height: 100}
	tests := []struct {
		dir  domain.Direction
		want domain.Rect
	}{
		{domain.LeftRight, domain.Rect{Min: domain.Point{X: 0, Y: 0}, Max: domain.Point{X: 30, Y: 100}}},
		{domain.RightLeft, domain.Rect{Min: domain.Point{X: 30, Y: 0}, Max: domain.Point{X: 100, Y: 100}}},
		{domain.TopBottom, domain.Rect{Min: domain.Point{X: 0, Y: 0}, Max: domain.Point{X: 100, Y: 30}}},
		{domain.BottomTop, domain.Rect{Min: domain.Point{X: 0, Y: 30}, Max: domain.Point{X: 100, Y: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s, l := mustLayout(t, domain.KindLine, Config{Direction: tt.dir}, bounds)
			assert.Equal(t, tt.want, s.Primitives(30, l).Foreground)
		})
	}
}

func TestLine_DisplayValueRoundTrip(t *testing.T) {
	for _, dir := range []domain.Direction{domain.LeftRight, domain.RightLeft, domain.TopBottom, domain.BottomTop} {
		s, l := mustLayout(t, domain.KindLine, Config{Width: 80, Height: 40, Direction: dir}, domain.Size{})
		current := s.Value(1, 0, 35, 100, l)
		assert.InDelta(t, 35, s.DisplayValue(current, 100, l), 1e-6, dir.String())
	}
}

func TestLine_PreferredSize(t *testing.T) {
	s := mustShape(t, domain.KindLine)
	assert.Equal(t, domain.Size{Width: 100, Height: 50}, s.PreferredSize(Config{Width: 100}))
	assert.Equal(t, domain.Size{Width: 40, Height: 20}, s.PreferredSize(Config{Height: 20}))
	assert.True(t, s.PreferredSize(Config{}).IsZero())
}

func TestTriangle_Primitives(t *testing.T) {
	cfg := Config{Width: 90, Height: 30, Direction: domain.LeftRight}
	s, l := mustLayout(t, domain.KindTriangle, cfg, domain.Size{})

	spec := s.Primitives(30, l)
	assert.Equal(t, polygon(0, 30, 90, 0, 90, 30), spec.Background)
	assertPolygon(t, polygon(0, 30, 30, 20, 30, 30), spec.Foreground)
	assert.InDelta(t, 60, l.LabelAnchor.X, epsilon)
	assert.InDelta(t, 20, l.LabelAnchor.Y, epsilon)
}

func TestTriangle_RightLeftFillsFromTheRight(t *testing.T) {
	cfg := Config{Width: 90, Height: 30, Direction: domain.RightLeft}
	s, l := mustLayout(t, domain.KindTriangle, cfg, domain.Size{})

	// A third of the range leaves two thirds of the width unfilled.
	current := s.Value(1, 0, 100.0/3, 100, l)
	assert.InDelta(t, 60, current, 1e-6)

	spec := s.Primitives(current, l)
	assert.Equal(t, polygon(0, 30, 0, 0, 90, 30), spec.Background)
	fg := spec.Foreground.(domain.Polygon)
	require.Len(t, fg.Points, 3)
	assert.InDelta(t, 60, fg.Points[0].X, 1e-6)
	assert.InDelta(t, 20, fg.Points[1].Y, 1e-6)
	assert.Equal(t, domain.Point{X: 90, Y: 30}, fg.Points[2])
	assert.InDelta(t, 30, l.LabelAnchor.X, epsilon)

	assert.InDelta(t, 100.0/3, s.DisplayValue(current, 100, l), 1e-6)
}

func TestPie_Primitives(t *testing.T) {
	cfg := Config{Radius: 40, Direction: domain.CounterClockwise, InnerRadiusPercent: 25, StartAngle: 90}
	s, l := mustLayout(t, domain.KindPie, cfg, domain.Size{Width: 100, Height: 100})

	spec := s.Primitives(120, l)
	center := domain.Point{X: 50, Y: 50}
	assert.Equal(t, domain.Circle{Center: center, Radius: 40}, spec.Background)
	assert.Equal(t, domain.Wedge{Center: center, Radius: 40, StartAngle: 90, Sweep: -120}, spec.Foreground)
	assert.Equal(t, domain.Circle{Center: center, Radius: 10}, spec.Hole)
	assert.InDelta(t, 100.0/3, s.DisplayValue(120, 100, l), epsilon)
}

func TestPie_NoHoleAtZeroPercent(t *testing.T) {
	s, l := mustLayout(t, domain.KindPie, Config{Radius: 10}, domain.Size{})
	assert.Nil(t, s.Primitives(10, l).Hole)
}

func TestHalfPie_Layout(t *testing.T) {
	bounds := domain.Size{Width: 200, Height: 200}
	tests := []struct {
		orientation domain.Orientation
		center      domain.Point
		hole        domain.Point
		start       float64
		hAlign      domain.HAlign
		vAlign      domain.VAlign
	}{
		{domain.East, domain.Point{X: 75, Y: 100}, domain.Point{X: 74, Y: 100}, 270, domain.AlignStart, domain.AlignMiddle},
		{domain.West, domain.Point{X: 125, Y: 100}, domain.Point{X: 126, Y: 100}, 90, domain.AlignEnd, domain.AlignMiddle},
		{domain.North, domain.Point{X: 100, Y: 125}, domain.Point{X: 100, Y: 126}, 180, domain.AlignCenter, domain.AlignAbove},
		{domain.South, domain.Point{X: 100, Y: 75}, domain.Point{X: 100, Y: 74}, 0, domain.AlignCenter, domain.AlignBelow},
	}

	for _, tt := range tests {
		t.Run(tt.orientation.String(), func(t *testing.T) {
			cfg := Config{Radius: 50, Orientation: tt.orientation, InnerRadiusPercent: 50}
			s, l := mustLayout(t, domain.KindHalfPie, cfg, bounds)

			assert.Equal(t, tt.center, l.Center)
			assert.Equal(t, tt.hole, l.HoleCenter)
			assert.Equal(t, tt.start, l.StartAngle)
			assert.Equal(t, 180.0, l.Sweep)
			assert.Equal(t, 25.0, l.InnerRadius)

			spec := s.Primitives(45, l)
			assert.Equal(t, domain.Wedge{Center: tt.center, Radius: 50, StartAngle: tt.start, Sweep: 180}, spec.Background)
			assert.Equal(t, domain.Wedge{Center: tt.center, Radius: 50, StartAngle: tt.start, Sweep: 45}, spec.Foreground)
			assert.Equal(t, domain.Wedge{Center: tt.hole, Radius: 25, StartAngle: tt.start, Sweep: 180}, spec.Hole)
			require.NotNil(t, spec.Label)
			assert.Equal(t, tt.hAlign, spec.Label.HAlign)
			assert.Equal(t, tt.vAlign, spec.Label.VAlign)
		})
	}
}

func TestHalfPie_CounterClockwise(t *testing.T) {
	cfg := Config{Radius: 50, Orientation: domain.East, Direction: domain.CounterClockwise}
	s, l := mustLayout(t, domain.KindHalfPie, cfg, domain.Size{Width: 100, Height: 100})

	assert.Equal(t, 90.0, l.StartAngle)
	assert.Equal(t, -180.0, l.Sweep)
	assert.Equal(t, -60.0, s.Primitives(60, l).Foreground.(domain.Wedge).Sweep)
}

func TestHalfPie_SizeFromBounds(t *testing.T) {
	s := mustShape(t, domain.KindHalfPie)

	l, err := s.Layout(Config{Orientation: domain.East}, domain.Size{Width: 80, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, 80.0, l.Radius)

	l, err = s.Layout(Config{Orientation: domain.North}, domain.Size{Width: 200, Height: 60})
	require.NoError(t, err)
	assert.Equal(t, 60.0, l.Radius)

	assert.Equal(t, domain.Size{Width: 30, Height: 60}, s.PreferredSize(Config{Radius: 30, Orientation: domain.West}))
	assert.Equal(t, domain.Size{Width: 60, Height: 30}, s.PreferredSize(Config{Radius: 30, Orientation: domain.South}))
}

func TestQuarterPie_Layout(t *testing.T) {
	bounds := domain.Size{Width: 100, Height: 100}
	tests := []struct {
		orientation domain.Orientation
		center      domain.Point
		hole        domain.Point
		start       float64
		hAlign      domain.HAlign
		vAlign      domain.VAlign
	}{
		{domain.NorthEast, domain.Point{X: 25, Y: 75}, domain.Point{X: 24, Y: 76}, 270, domain.AlignStart, domain.AlignAbove},
		{domain.NorthWest, domain.Point{X: 75, Y: 75}, domain.Point{X: 76, Y: 76}, 180, domain.AlignEnd, domain.AlignAbove},
		{domain.SouthEast, domain.Point{X: 25, Y: 25}, domain.Point{X: 24, Y: 24}, 0, domain.AlignStart, domain.AlignBelow},
		{domain.SouthWest, domain.Point{X: 75, Y: 25}, domain.Point{X: 76, Y: 24}, 90, domain.AlignEnd, domain.AlignBelow},
	}

	for _, tt := range tests {
		t.Run(tt.orientation.String(), func(t *testing.T) {
			cfg := Config{Radius: 50, Orientation: tt.orientation, InnerRadiusPercent: 50}
			s, l := mustLayout(t, domain.KindQuarterPie, cfg, bounds)

			assert.Equal(t, 50.0, l.Radius)
			assert.Equal(t, tt.center, l.Center)
			assert.Equal(t, tt.hole, l.HoleCenter)
			assert.Equal(t, tt.start, l.StartAngle)
			assert.Equal(t, 90.0, l.Sweep)

			spec := s.Primitives(30, l)
			assert.Equal(t, domain.Wedge{Center: tt.center, Radius: 50, StartAngle: tt.start, Sweep: 30}, spec.Foreground)
			assert.Equal(t, tt.hAlign, spec.Label.HAlign)
			assert.Equal(t, tt.vAlign, spec.Label.VAlign)
		})
	}

	s := mustShape(t, domain.KindQuarterPie)
	assert.Equal(t, domain.Size{Width: 40, Height: 40}, s.PreferredSize(Config{Radius: 40}))

	l, err := s.Layout(Config{Orientation: domain.SouthEast}, domain.Size{Width: 120, Height: 80})
	require.NoError(t, err)
	assert.Equal(t, 80.0, l.Radius)
	assert.Equal(t, domain.Point{X: 20, Y: 0}, l.Center)
}

func assertPolygon(t *testing.T, want domain.Polygon, got domain.Primitive) {
	t.Helper()
	p, ok := got.(domain.Polygon)
	require.True(t, ok, "expected a polygon, got %T", got)
	require.Len(t, p.Points, len(want.Points))
	for i := range want.Points {
		assert.InDelta(t, want.Points[i].X, p.Points[i].X, 1e-6, "point %d x", i)
		assert.InDelta(t, want.Points[i].Y, p.Points[i].Y, 1e-6, "point %d y", i)
	}
}
