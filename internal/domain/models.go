// Package domain defines the core types of the indicator engine.
// These types are pure data and have no dependency on a rendering host.
package domain

import "fmt"

// Default configuration values.
const (
	DefaultMinValue           = 0.0
	DefaultMaxValue           = 100.0
	DefaultAnimationMillis    = 500
	DefaultInnerRadiusPercent = 50

	PieMaxAngle        = 360.0
	HalfPieMaxAngle    = 180.0
	QuarterPieMaxAngle = 90.0
)

// Kind identifies an indicator shape.
type Kind string

// Available shapes.
const (
	KindCircle     Kind = "circle"
	KindLine       Kind = "line"
	KindTriangle   Kind = "triangle"
	KindPie        Kind = "pie"
	KindHalfPie    Kind = "half_pie"
	KindQuarterPie Kind = "quarter_pie"
)

// Kinds returns all shape kinds in display order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindLine, KindTriangle, KindPie, KindHalfPie, KindQuarterPie}
}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", NewValidationError("shape", s, "unknown shape", ErrUnsupportedShape)
}

// Direction is the way an indicator fills.
// Circular shapes use Clockwise/CounterClockwise, linear shapes use the four axis directions.
type Direction int

// Directions.
const (
	Clockwise Direction = iota
	CounterClockwise
	LeftRight
	RightLeft
	TopBottom
	BottomTop
)

var directionNames = map[Direction]string{
	Clockwise:        "clockwise",
	CounterClockwise: "counter_clockwise",
	LeftRight:        "left_right",
	RightLeft:        "right_left",
	TopBottom:        "top_bottom",
	BottomTop:        "bottom_top",
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Circular reports whether the direction applies to arc based shapes.
func (d Direction) Circular() bool {
	return d == Clockwise || d == CounterClockwise
}

// Reversed reports whether a linear direction fills from the far edge.
func (d Direction) Reversed() bool {
	return d == RightLeft || d == BottomTop
}

// Horizontal reports whether a linear direction runs along the x axis.
func (d Direction) Horizontal() bool {
	return d == LeftRight || d == RightLeft
}

// ParseDirection converts a configuration string into a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, NewValidationError("direction", s, "unknown direction", ErrUnsupportedDirection)
}

// Orientation places half and quarter pies as sides of the world.
type Orientation int

// Orientations. East..South apply to half pies, the diagonals to quarter pies.
const (
	East Orientation = iota
	West
	North
	South
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var orientationNames = map[Orientation]string{
	East:      "east",
	West:      "west",
	North:     "north",
	South:     "south",
	NorthEast: "north_east",
	NorthWest: "north_west",
	SouthEast: "south_east",
	SouthWest: "south_west",
}

// String returns the configuration name of the orientation.
func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// Diagonal reports whether the orientation is one of the quarter pie corners.
func (o Orientation) Diagonal() bool {
	return o >= NorthEast && o <= SouthWest
}

// ParseOrientation converts a configuration string into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	for o, name := range orientationNames {
		if name == s {
			return o, nil
		}
	}
	return 0, NewValidationError("orientation", s, "unknown orientation", ErrUnsupportedOrientation)
}

// Range is the numeric window an indicator displays.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange returns the [0, 100] range.
func DefaultRange() Range {
	return Range{Min: DefaultMinValue, Max: DefaultMaxValue}
}

// Validate checks that min < max.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return NewValidationError("range", fmt.Sprintf("[%v, %v]", r.Min, r.Max),
			"min must be less than max", ErrInvalidRange)
	}
	return nil
}

// Span returns the width of the range.
func (r Range) Span() float64 {
	if r.Max > r.Min {
		return r.Max - r.Min
	}
	return r.Min - r.Max
}

// Contains reports whether v lies inside [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Point is a position on the render surface in pixels (y grows downwards).
type Point struct {
	X float64
	Y float64
}

// Size is a width and height in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether either dimension is not positive.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}
