package domain

// Primitive is a single drawable shape handed to a render surface.
// The set is closed: Circle, Rect, Wedge and Polygon.
type Primitive interface {
	primitive()
}

// Circle is a filled circle.
type Circle struct {
	Center Point
	Radius float64
}

// Rect is a filled axis-aligned rectangle from Min (top-left) to Max (bottom-right).
type Rect struct {
	Min Point
	Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Wedge is a filled pie slice: the region between the center and an arc.
// Angles are degrees, 0 points along +x and positive sweep turns clockwise on a y-down surface.
type Wedge struct {
	Center     Point
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// Polygon is a filled closed path.
type Polygon struct {
	Points []Point
}

func (Circle) primitive()  {}
func (Rect) primitive()    {}
func (Wedge) primitive()   {}
func (Polygon) primitive() {}

// HAlign is the horizontal alignment of label text relative to its anchor.
type HAlign int

// Horizontal alignments.
const (
	AlignCenter HAlign = iota
	AlignStart         // text begins at the anchor
	AlignEnd           // text ends at the anchor
)

// VAlign is the vertical placement of label text relative to its anchor.
type VAlign int

// Vertical alignments.
const (
	AlignMiddle VAlign = iota
	AlignAbove         // baseline sits on the anchor
	AlignBelow         // text hangs below the anchor
)

// Label is the optional text overlay.
type Label struct {
	Text   string
	Anchor Point
	HAlign HAlign
	VAlign VAlign
}

// DrawSpec is everything a render surface needs for one frame.
type DrawSpec struct {
	Background Primitive
	Foreground Primitive
	Hole       Primitive // nil when the shape has no inner hole
	Label      *Label    // nil when text is hidden
}
