package quad

import (
	"image/color"
	"log/slog"
)

// ChangeListener is called after every re-derivation of the outline or
// handle state. Listeners run synchronously on the caller's goroutine.
type ChangeListener func()

// HandleListener is called on each handle state transition.
type HandleListener func(c Corner, prev, next HandleState)

// Editor owns the authoritative quadrilateral, the edit-mode flags and
// the style, and derives everything drawable from them: the outline
// path description and the four corner handles.
//
// All methods are synchronous and must be called from the single
// interaction goroutine; a later call simply supersedes the effect of
// an earlier one.
type Editor struct {
	logger *slog.Logger

	bounds Rect
	style  Style

	quad    Quadrilateral
	hasQuad bool

	editable bool
	showMask bool

	highlighted    Corner
	hasHighlighted bool

	outline Outline
	handles [4]Handle

	listeners       []ChangeListener
	handleListeners []HandleListener
}

// NewEditor creates an editor for a surface of the given bounds with
// the default style. The editor starts non-editable and without a
// quadrilateral.
func NewEditor(bounds Rect, logger *slog.Logger) *Editor {
	e := &Editor{logger: logger, bounds: bounds, style: DefaultStyle()}
	for _, c := range Corners {
		e.handles[c] = Handle{Corner: c, Size: e.style.HandleSize}
	}
	return e
}

// AddListener registers a change listener.
func (e *Editor) AddListener(l ChangeListener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// AddHandleListener registers a handle state transition listener.
func (e *Editor) AddHandleListener(l HandleListener) {
	if l != nil {
		e.handleListeners = append(e.handleListeners, l)
	}
}

// Bounds returns the current surface bounds.
func (e *Editor) Bounds() Rect { return e.bounds }

// SetBounds updates the surface bounds and re-derives the outline.
func (e *Editor) SetBounds(b Rect) {
	e.bounds = b
	e.rebuild()
}

// Quadrilateral returns the current quadrilateral and whether one is set.
func (e *Editor) Quadrilateral() (Quadrilateral, bool) { return e.quad, e.hasQuad }

// Editable reports whether editing is enabled.
func (e *Editor) Editable() bool { return e.editable }

// ShowBoundaryMask reports whether the boundary mask flag is set.
func (e *Editor) ShowBoundaryMask() bool { return e.showMask }

// SetQuadrilateral replaces the current quadrilateral wholesale and
// re-derives the outline and handle positions. The input points are
// trusted as-is: a non-convex or self-intersecting configuration still
// produces a path (it rasterizes with whatever fill regions the rule
// yields).
func (e *Editor) SetQuadrilateral(q Quadrilateral) {
	e.quad = q
	e.hasQuad = true
	e.rebuild()
}

// RemoveQuadrilateral clears the drawing state: the outline becomes
// hidden and empty. The stored corner points are kept so handle
// positions remain valid until the host hides them separately.
func (e *Editor) RemoveQuadrilateral() {
	e.hasQuad = false
	e.rebuild()
}

// SetEditable toggles handle visibility and the fill branch, then
// re-derives the outline with the current quadrilateral if one exists.
func (e *Editor) SetEditable(editable bool) {
	e.editable = editable
	e.rebuild()
}

// SetShowBoundaryMask toggles whether the outline's interior is replaced
// by its complement relative to the surface bounds. The mask only takes
// effect while editing is also enabled.
func (e *Editor) SetShowBoundaryMask(show bool) {
	e.showMask = show
	e.rebuild()
}

// MoveCorner clamps raw into bounds, overwrites the point for the given
// corner and regenerates the outline. It returns the updated
// quadrilateral and the clamped point actually applied, which the host
// uses to reposition the handle so handle and shape never desynchronize.
// Without a current quadrilateral the call is a no-op and ok is false.
func (e *Editor) MoveCorner(c Corner, raw Point, bounds Rect) (Quadrilateral, Point, bool) {
	if !e.hasQuad || !c.Valid() {
		return Quadrilateral{}, Point{}, false
	}
	e.bounds = bounds
	clamped := bounds.Clamp(raw)
	e.quad.SetPoint(c, clamped)
	e.rebuild()
	if e.logger != nil {
		e.logger.Debug("corner moved", "corner", c.String(), "x", clamped.X, "y", clamped.Y)
	}
	return e.quad, clamped, true
}

// Highlight marks the given corner handle as highlighted, enlarging it
// to the highlighted size anchored on its center. Any previously
// highlighted handle is reset first; at most one handle is highlighted
// at a time.
func (e *Editor) Highlight(c Corner) {
	if !c.Valid() {
		return
	}
	if e.hasHighlighted && e.highlighted == c {
		return
	}
	if e.hasHighlighted {
		e.transitionHandle(e.highlighted, HandleNormal)
	}
	e.highlighted = c
	e.hasHighlighted = true
	e.transitionHandle(c, HandleHighlighted)
	e.rebuild()
}

// ResetHighlight returns the highlighted handle, if any, to its normal
// size and state.
func (e *Editor) ResetHighlight() {
	if !e.hasHighlighted {
		return
	}
	e.transitionHandle(e.highlighted, HandleNormal)
	e.hasHighlighted = false
	e.rebuild()
}

// Highlighted returns the currently highlighted corner, if any.
func (e *Editor) Highlighted() (Corner, bool) { return e.highlighted, e.hasHighlighted }

// Outline returns the current drawable outline description.
func (e *Editor) Outline() Outline { return e.outline }

// Handles returns the render state of the four corner handles, indexed
// by corner ordinal.
func (e *Editor) Handles() [4]Handle { return e.handles }

// Handle returns the render state for one corner.
func (e *Editor) Handle(c Corner) Handle {
	if !c.Valid() {
		return Handle{}
	}
	return e.handles[c]
}

// Style returns the current style.
func (e *Editor) Style() Style { return e.style }

// SetStyle replaces the whole style and re-derives dependents.
func (e *Editor) SetStyle(s Style) {
	e.style = s
	e.rebuild()
}

// SetStrokeColor updates the outline stroke color.
func (e *Editor) SetStrokeColor(c color.NRGBA) {
	e.style.StrokeColor = c
	e.rebuild()
}

// SetStrokeWidth updates the outline stroke width.
func (e *Editor) SetStrokeWidth(w float64) {
	e.style.StrokeWidth = w
	e.rebuild()
}

// SetHandleSize updates the normal handle diameter.
func (e *Editor) SetHandleSize(s float64) {
	e.style.HandleSize = s
	e.rebuild()
}

// SetHighlightedHandleSize updates the enlarged handle diameter.
func (e *Editor) SetHighlightedHandleSize(s float64) {
	e.style.HighlightedHandleSize = s
	e.rebuild()
}

// SetMagnification updates the corner preview zoom factor. It has no
// geometric effect on the outline but still notifies dependents so a
// live magnifier preview refreshes.
func (e *Editor) SetMagnification(m float64) {
	e.style.Magnification = m
	e.notify()
}

func (e *Editor) transitionHandle(c Corner, next HandleState) {
	prev := e.handles[c].State
	if prev == next {
		return
	}
	e.handles[c].State = next
	for _, l := range e.handleListeners {
		l(c, prev, next)
	}
}

// rebuild recomputes the outline path and the handle layout from the
// current quadrilateral, flags and style, then notifies listeners.
func (e *Editor) rebuild() {
	e.outline = e.buildOutline()
	e.layoutHandles()
	e.notify()
}

func (e *Editor) notify() {
	for _, l := range e.listeners {
		l()
	}
}

// buildOutline constructs the closed corner polygon and selects the fill
// branch. The boundary mask applies iff editable and showMask are both
// true: the polygon's winding is reversed and the full surface rect is
// appended, so a non-zero fill renders everything outside the
// quadrilateral and leaves the interior as a hole.
func (e *Editor) buildOutline() Outline {
	if !e.hasQuad {
		return Outline{Visible: false}
	}
	p := &Path{}
	p.MoveTo(e.quad.Point(TopLeft))
	p.LineTo(e.quad.Point(TopRight))
	p.LineTo(e.quad.Point(BottomRight))
	p.LineTo(e.quad.Point(BottomLeft))
	p.Close()

	out := Outline{
		Path:        p,
		Rule:        FillNonZero,
		StrokeColor: e.style.StrokeColor,
		StrokeWidth: e.style.StrokeWidth,
		Visible:     true,
	}
	switch {
	case e.editable && e.showMask:
		rev := p.Reversed()
		rev.AppendRect(e.bounds)
		out.Path = rev
		out.Fill = fillMasked
	case e.editable:
		out.Fill = fillEditable
	default:
		out.Fill = fillDisplay
	}
	return out
}

// layoutHandles centers each handle exactly on its corner point. The
// mapping is direct and unconditional; only the path redraw may be
// animated, never the handles.
func (e *Editor) layoutHandles() {
	for _, c := range Corners {
		h := &e.handles[c]
		h.Center = e.quad.Point(c)
		h.Visible = e.editable
		if h.State == HandleHighlighted {
			h.Size = e.style.HighlightedHandleSize
		} else {
			h.Size = e.style.HandleSize
		}
	}
}
