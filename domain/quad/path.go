package quad

import "image/color"

// PathOp is the kind of a path element.
type PathOp uint8

const (
	// OpMoveTo starts a new subpath at the element point.
	OpMoveTo PathOp = iota
	// OpLineTo extends the current subpath with a straight segment.
	OpLineTo
	// OpClose closes the current subpath back to its start point.
	OpClose
)

// PathElement is one step of a path description.
type PathElement struct {
	Op PathOp
	To Point // unused for OpClose
}

// FillRule selects how the interior of a compound path is decided.
type FillRule uint8

const (
	// FillNonZero fills where the winding number is non-zero.
	FillNonZero FillRule = iota
	// FillEvenOdd fills where the edge crossing count is odd.
	FillEvenOdd
)

func (r FillRule) String() string {
	if r == FillEvenOdd {
		return "even-odd"
	}
	return "non-zero"
}

// Path is a renderable sequence of polygonal subpaths. It is a plain
// description; rasterization belongs to the consuming backend.
type Path struct {
	elems []PathElement
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Point) { p.elems = append(p.elems, PathElement{Op: OpMoveTo, To: pt}) }

// LineTo appends a straight segment to pt.
func (p *Path) LineTo(pt Point) { p.elems = append(p.elems, PathElement{Op: OpLineTo, To: pt}) }

// Close closes the current subpath.
func (p *Path) Close() { p.elems = append(p.elems, PathElement{Op: OpClose}) }

// Elements returns the raw element slice. Callers must not mutate it.
func (p *Path) Elements() []PathElement { return p.elems }

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool { return p == nil || len(p.elems) == 0 }

// AppendRect adds the full surface rectangle as a closed subpath in
// clockwise order (origin, top-right, bottom-right, bottom-left).
func (p *Path) AppendRect(r Rect) {
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(r.W, 0))
	p.LineTo(Pt(r.W, r.H))
	p.LineTo(Pt(0, r.H))
	p.Close()
}

// Reversed returns a new path with every subpath's winding direction
// reversed. Element order within a subpath is inverted; subpath order is
// preserved.
func (p *Path) Reversed() *Path {
	out := &Path{}
	var sub []Point
	var closed bool
	flush := func() {
		if len(sub) == 0 {
			return
		}
		out.MoveTo(sub[len(sub)-1])
		for i := len(sub) - 2; i >= 0; i-- {
			out.LineTo(sub[i])
		}
		if closed {
			out.Close()
		}
		sub = sub[:0]
		closed = false
	}
	for _, e := range p.elems {
		switch e.Op {
		case OpMoveTo:
			flush()
			sub = append(sub, e.To)
		case OpLineTo:
			sub = append(sub, e.To)
		case OpClose:
			closed = true
			flush()
		}
	}
	flush()
	return out
}

// segments calls fn for every line segment of the path, treating open
// subpaths as implicitly closed (a polygon fill has no open edges).
func (p *Path) segments(fn func(a, b Point)) {
	var start, cur Point
	var open bool
	for _, e := range p.elems {
		switch e.Op {
		case OpMoveTo:
			if open && cur != start {
				fn(cur, start)
			}
			start, cur = e.To, e.To
			open = true
		case OpLineTo:
			if open {
				fn(cur, e.To)
				cur = e.To
			}
		case OpClose:
			if open {
				if cur != start {
					fn(cur, start)
				}
				open = false
			}
		}
	}
	if open && cur != start {
		fn(cur, start)
	}
}

// Contains reports whether pt lies inside the filled region of the path
// under the given fill rule. Points exactly on a horizontal edge follow
// the usual half-open crossing convention.
func (p *Path) Contains(pt Point, rule FillRule) bool {
	if p.Empty() {
		return false
	}
	var winding int
	var crossings int
	p.segments(func(a, b Point) {
		if a.Y == b.Y {
			return
		}
		// Half-open in Y so shared vertices count once.
		if (a.Y <= pt.Y) == (b.Y <= pt.Y) {
			return
		}
		t := (pt.Y - a.Y) / (b.Y - a.Y)
		x := a.X + t*(b.X-a.X)
		if x <= pt.X {
			return
		}
		crossings++
		if b.Y > a.Y {
			winding++
		} else {
			winding--
		}
	})
	if rule == FillEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// Outline is the drawable description of the quadrilateral: the path,
// the fill rule deciding its interior, and the presentation attributes
// the host (or the software renderer) applies.
type Outline struct {
	Path        *Path
	Rule        FillRule
	Fill        color.NRGBA
	StrokeColor color.NRGBA
	StrokeWidth float64
	Visible     bool
}
