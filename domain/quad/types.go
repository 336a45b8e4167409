package quad

import "image/color"

// Corner identifies one of the four labeled corners of a quadrilateral.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
	cornerCount // number of corners (used for iteration)
)

// Corners lists all corner roles in outline drawing order.
var Corners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// Valid reports whether c names one of the four corner roles.
func (c Corner) Valid() bool { return c >= TopLeft && c < cornerCount }

// Quadrilateral holds exactly one point per corner role. No ordering or
// convexity is enforced; a self-intersecting configuration is passed
// through to the drawer as-is.
type Quadrilateral struct {
	points [4]Point
}

// NewQuadrilateral builds a quadrilateral from the four labeled corners.
func NewQuadrilateral(topLeft, topRight, bottomRight, bottomLeft Point) Quadrilateral {
	return Quadrilateral{points: [4]Point{topLeft, topRight, bottomRight, bottomLeft}}
}

// InsetRect returns a quadrilateral matching bounds inset by the given
// margin on every side, the usual starting shape when no detector
// supplied one.
func InsetRect(bounds Rect, margin float64) Quadrilateral {
	return NewQuadrilateral(
		Pt(margin, margin),
		Pt(bounds.W-margin, margin),
		Pt(bounds.W-margin, bounds.H-margin),
		Pt(margin, bounds.H-margin),
	)
}

// Point returns the point stored for the given corner role.
func (q Quadrilateral) Point(c Corner) Point {
	if !c.Valid() {
		return Point{}
	}
	return q.points[c]
}

// SetPoint replaces the point for the given corner role in place,
// leaving the other three corners untouched.
func (q *Quadrilateral) SetPoint(c Corner, p Point) {
	if !c.Valid() {
		return
	}
	q.points[c] = p
}

// Lerp interpolates corner-wise between q and other. t=0 returns q,
// t=1 returns other. Used for the animated outline redraw.
func (q Quadrilateral) Lerp(other Quadrilateral, t float64) Quadrilateral {
	var out Quadrilateral
	for _, c := range Corners {
		out.points[c] = q.points[c].Lerp(other.points[c], t)
	}
	return out
}

// Style holds the presentation parameters of the editor. Every field is
// purely visual; none affects the corner geometry.
type Style struct {
	StrokeColor           color.NRGBA
	StrokeWidth           float64
	HandleSize            float64 // handle diameter in surface pixels
	HighlightedHandleSize float64 // enlarged diameter while dragging
	Magnification         float64 // zoom factor of the corner preview
}

// DefaultStyle returns the style used when the host does not override
// anything.
func DefaultStyle() Style {
	return Style{
		StrokeColor:           color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		StrokeWidth:           1,
		HandleSize:            75,
		HighlightedHandleSize: 175,
		Magnification:         2.5,
	}
}

// Fill colors per outline branch. Both edit-mode fills sit around 0.6
// alpha black, the mask dimming slightly heavier so the two modes stay
// distinguishable; display-only mode uses a lighter white wash.
var (
	fillEditable = color.NRGBA{R: 0, G: 0, B: 0, A: 153} // ~0.6 alpha black
	fillMasked   = color.NRGBA{R: 0, G: 0, B: 0, A: 163}
	fillDisplay  = color.NRGBA{R: 255, G: 255, B: 255, A: 128} // ~0.5 alpha white
)

// HandleState enumerates the visual states of a corner handle.
type HandleState int

const (
	HandleNormal HandleState = iota
	HandleHighlighted
)

func (s HandleState) String() string {
	switch s {
	case HandleNormal:
		return "normal"
	case HandleHighlighted:
		return "highlighted"
	default:
		return "unknown"
	}
}

// Handle is the render state of one corner handle. The center always
// equals the corner point exactly; enlarging on highlight is anchored
// so the center never shifts.
type Handle struct {
	Corner  Corner
	Center  Point
	Size    float64
	State   HandleState
	Visible bool
}
