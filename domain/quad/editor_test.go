package quad

import (
	"log/slog"
	"testing"
)

var testLogger = slog.New(slog.DiscardHandler)

func testBounds() Rect { return Rect{W: 300, H: 400} }

func testQuad() Quadrilateral {
	return NewQuadrilateral(Pt(10, 10), Pt(290, 10), Pt(290, 390), Pt(10, 390))
}

func newTestEditor() *Editor {
	e := NewEditor(testBounds(), testLogger)
	e.SetQuadrilateral(testQuad())
	return e
}

func TestClamp_Idempotent(t *testing.T) {
	b := testBounds()
	pts := []Point{
		Pt(-50, -20), Pt(150, 200), Pt(500, 500), Pt(0, 0),
		Pt(300, 400), Pt(-1, 200), Pt(150, 401),
	}
	for _, p := range pts {
		once := b.Clamp(p)
		twice := b.Clamp(once)
		if once != twice {
			t.Fatalf("clamp not idempotent for %v: %v != %v", p, once, twice)
		}
		if once.X < 0 || once.X > b.W || once.Y < 0 || once.Y > b.H {
			t.Fatalf("clamp out of bounds for %v: %v", p, once)
		}
	}
}

func TestMoveCorner_ClampsToOrigin(t *testing.T) {
	e := newTestEditor()
	q, applied, ok := e.MoveCorner(TopLeft, Pt(-50, -20), testBounds())
	if !ok {
		t.Fatalf("expected move to apply")
	}
	if applied != Pt(0, 0) {
		t.Fatalf("expected clamp to (0,0), got %v", applied)
	}
	if q.Point(TopLeft) != Pt(0, 0) {
		t.Fatalf("quad top-left not updated: %v", q.Point(TopLeft))
	}
}

func TestMoveCorner_LastWriteWinsAndOthersUnchanged(t *testing.T) {
	for _, c := range Corners {
		e := newTestEditor()
		before, _ := e.Quadrilateral()
		e.MoveCorner(c, Pt(500, -70), testBounds())
		_, applied, _ := e.MoveCorner(c, Pt(42, 43), testBounds())
		after, _ := e.Quadrilateral()
		if after.Point(c) != testBounds().Clamp(Pt(42, 43)) || applied != Pt(42, 43) {
			t.Fatalf("corner %v: expected (42,43), got %v", c, after.Point(c))
		}
		for _, other := range Corners {
			if other == c {
				continue
			}
			if after.Point(other) != before.Point(other) {
				t.Fatalf("corner %v moved when dragging %v", other, c)
			}
		}
	}
}

func TestMoveCorner_NoQuadIsNoop(t *testing.T) {
	e := NewEditor(testBounds(), testLogger)
	if _, _, ok := e.MoveCorner(TopLeft, Pt(10, 10), testBounds()); ok {
		t.Fatalf("expected no-op without a quadrilateral")
	}
}

func TestHandleCornerCoherence(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(true)
	cases := []struct {
		corner Corner
		raw    Point
	}{
		{TopLeft, Pt(-10, 30)},
		{TopRight, Pt(999, 0)},
		{BottomRight, Pt(150, 500)},
		{BottomLeft, Pt(20, 395)},
	}
	for _, tc := range cases {
		_, applied, ok := e.MoveCorner(tc.corner, tc.raw, testBounds())
		if !ok {
			t.Fatalf("%v: move rejected", tc.corner)
		}
		if got := e.Handle(tc.corner).Center; got != applied {
			t.Fatalf("%v: handle center %v != applied point %v", tc.corner, got, applied)
		}
	}
}

func TestOutline_MaskBranchRequiresBothFlags(t *testing.T) {
	cases := []struct {
		name     string
		editable bool
		mask     bool
		masked   bool
	}{
		{"editable+mask", true, true, true},
		{"editable only", true, false, false},
		{"mask only", false, true, false},
		{"neither", false, false, false},
	}
	for _, tc := range cases {
		e := newTestEditor()
		e.SetEditable(tc.editable)
		e.SetShowBoundaryMask(tc.mask)
		out := e.Outline()
		if !out.Visible {
			t.Fatalf("%s: outline should be visible", tc.name)
		}
		inside := Pt(150, 200)  // well within the quad
		outside := Pt(2, 2)     // between quad and surface edge
		gotMasked := out.Path.Contains(outside, out.Rule) && !out.Path.Contains(inside, out.Rule)
		if gotMasked != tc.masked {
			t.Fatalf("%s: masked=%v, want %v", tc.name, gotMasked, tc.masked)
		}
	}
}

func TestOutline_ToggleFlagSwitchesBranch(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(true)
	e.SetShowBoundaryMask(true)
	outside := Pt(2, 2)
	if !e.Outline().Path.Contains(outside, e.Outline().Rule) {
		t.Fatalf("masked outline should fill outside the quad")
	}
	e.SetEditable(false)
	if e.Outline().Path.Contains(outside, e.Outline().Rule) {
		t.Fatalf("disabling editing must drop the mask even with mask flag set")
	}
	e.SetEditable(true)
	e.SetShowBoundaryMask(false)
	if e.Outline().Path.Contains(outside, e.Outline().Rule) {
		t.Fatalf("clearing the mask flag must drop the mask")
	}
}

func TestOutline_FillPerBranch(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(true)
	if got := e.Outline().Fill; got != fillEditable {
		t.Fatalf("editable fill: got %v", got)
	}
	e.SetShowBoundaryMask(true)
	if got := e.Outline().Fill; got != fillMasked {
		t.Fatalf("masked fill: got %v", got)
	}
	e.SetEditable(false)
	if got := e.Outline().Fill; got != fillDisplay {
		t.Fatalf("display fill: got %v", got)
	}
	if fillEditable == fillMasked {
		t.Fatalf("editable and masked branches must use distinct fills")
	}
}

func TestEnableEditing_ShowsHandlesOnCorners(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(false)
	for _, c := range Corners {
		if e.Handle(c).Visible {
			t.Fatalf("handle %v visible while non-editable", c)
		}
	}
	e.SetEditable(true)
	q, _ := e.Quadrilateral()
	for _, c := range Corners {
		h := e.Handle(c)
		if !h.Visible {
			t.Fatalf("handle %v hidden while editable", c)
		}
		if h.Center != q.Point(c) {
			t.Fatalf("handle %v not centered on corner: %v != %v", c, h.Center, q.Point(c))
		}
	}
	if !e.Outline().Visible {
		t.Fatalf("outline hidden after enabling editing")
	}
}

func TestRemoveQuadrilateral_HidesOutlineKeepsHandles(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(true)
	want := e.Handle(BottomRight).Center
	e.RemoveQuadrilateral()
	if e.Outline().Visible {
		t.Fatalf("outline still visible after removal")
	}
	if got := e.Handle(BottomRight).Center; got != want {
		t.Fatalf("handle position cleared on removal: %v != %v", got, want)
	}
	if _, ok := e.Quadrilateral(); ok {
		t.Fatalf("quadrilateral still reported as set")
	}
}

func TestHighlight_MutualExclusionAndSizes(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(true)
	var transitions []string
	e.AddHandleListener(func(c Corner, prev, next HandleState) {
		transitions = append(transitions, c.String()+":"+next.String())
	})

	e.Highlight(TopRight)
	if e.Handle(TopRight).Size != e.Style().HighlightedHandleSize {
		t.Fatalf("highlighted handle not enlarged")
	}
	center := e.Handle(TopRight).Center
	e.Highlight(BottomLeft)
	if e.Handle(TopRight).State != HandleNormal {
		t.Fatalf("previous highlight not reset")
	}
	if e.Handle(TopRight).Size != e.Style().HandleSize {
		t.Fatalf("reset handle did not shrink")
	}
	if e.Handle(TopRight).Center != center {
		t.Fatalf("handle center shifted on state change")
	}
	if c, ok := e.Highlighted(); !ok || c != BottomLeft {
		t.Fatalf("expected bottom-left highlighted, got %v ok=%v", c, ok)
	}
	e.ResetHighlight()
	if _, ok := e.Highlighted(); ok {
		t.Fatalf("highlight not cleared")
	}
	want := []string{"top-right:highlighted", "top-right:normal", "bottom-left:highlighted", "bottom-left:normal"}
	if len(transitions) != len(want) {
		t.Fatalf("transitions %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transition %d = %q, want %q", i, transitions[i], want[i])
		}
	}
}

func TestStyleSetters_Rederive(t *testing.T) {
	e := newTestEditor()
	e.SetEditable(true)
	var notified int
	e.AddListener(func() { notified++ })
	e.SetStrokeWidth(3)
	if e.Outline().StrokeWidth != 3 {
		t.Fatalf("stroke width not applied to outline")
	}
	e.SetHandleSize(40)
	if e.Handle(TopLeft).Size != 40 {
		t.Fatalf("handle size not applied")
	}
	e.SetMagnification(4)
	if e.Style().Magnification != 4 {
		t.Fatalf("magnification not stored")
	}
	if notified != 3 {
		t.Fatalf("expected 3 notifications, got %d", notified)
	}
}

func TestQuadrilateralLerp(t *testing.T) {
	a := testQuad()
	b := NewQuadrilateral(Pt(0, 0), Pt(300, 0), Pt(300, 400), Pt(0, 400))
	mid := a.Lerp(b, 0.5)
	if got := mid.Point(TopLeft); got != Pt(5, 5) {
		t.Fatalf("lerp top-left: %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("lerp t=0 should return start")
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("lerp t=1 should return end")
	}
}
