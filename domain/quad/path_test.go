package quad

import "testing"

func polygon(pts ...Point) *Path {
	p := &Path{}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p
}

func TestPathContains_SimplePolygon(t *testing.T) {
	p := polygon(Pt(10, 10), Pt(90, 10), Pt(90, 90), Pt(10, 90))
	cases := []struct {
		pt   Point
		want bool
	}{
		{Pt(50, 50), true},
		{Pt(11, 11), true},
		{Pt(5, 50), false},
		{Pt(95, 50), false},
		{Pt(50, 5), false},
		{Pt(50, 95), false},
	}
	for _, tc := range cases {
		for _, rule := range []FillRule{FillNonZero, FillEvenOdd} {
			if got := p.Contains(tc.pt, rule); got != tc.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", tc.pt, rule, got, tc.want)
			}
		}
	}
}

func TestPathContains_SelfIntersecting(t *testing.T) {
	// Bowtie: crosses itself between the two lobes. Degrades gracefully;
	// both lobes fill, the pinch point area depends on the rule.
	p := polygon(Pt(0, 0), Pt(100, 100), Pt(100, 0), Pt(0, 100))
	if !p.Contains(Pt(10, 50), FillNonZero) {
		t.Fatalf("left lobe should fill")
	}
	if !p.Contains(Pt(90, 50), FillNonZero) {
		t.Fatalf("right lobe should fill")
	}
	if p.Contains(Pt(50, 5), FillNonZero) {
		t.Fatalf("area above the pinch should be empty")
	}
}

func TestPathReversed_FlipsWinding(t *testing.T) {
	p := polygon(Pt(10, 10), Pt(90, 10), Pt(90, 90), Pt(10, 90))
	rev := p.Reversed()
	// Same filled region under either rule.
	if !rev.Contains(Pt(50, 50), FillNonZero) || rev.Contains(Pt(5, 50), FillNonZero) {
		t.Fatalf("reversal must not change the filled region of a single polygon")
	}
	// But combined with a surrounding rect under non-zero, the interior
	// cancels: that is the boundary-mask construction.
	rev.AppendRect(Rect{W: 200, H: 200})
	if rev.Contains(Pt(50, 50), FillNonZero) {
		t.Fatalf("interior should be a hole after appending the surface rect")
	}
	if !rev.Contains(Pt(150, 150), FillNonZero) {
		t.Fatalf("region outside the polygon should fill")
	}
}

func TestPathReversed_PreservesElementCount(t *testing.T) {
	p := polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	rev := p.Reversed()
	if len(rev.Elements()) != len(p.Elements()) {
		t.Fatalf("element count changed: %d != %d", len(rev.Elements()), len(p.Elements()))
	}
}

func TestMaskedCompound_EvenOddAgrees(t *testing.T) {
	// The winding-reversal trick is equivalent to even-odd over the
	// unreversed compound path; both must describe the same mask.
	quad := polygon(Pt(10, 10), Pt(90, 10), Pt(90, 90), Pt(10, 90))
	compound := polygon(Pt(10, 10), Pt(90, 10), Pt(90, 90), Pt(10, 90))
	compound.AppendRect(Rect{W: 200, H: 200})
	masked := quad.Reversed()
	masked.AppendRect(Rect{W: 200, H: 200})
	probes := []Point{Pt(50, 50), Pt(5, 5), Pt(150, 20), Pt(11, 89), Pt(199, 199)}
	for _, pt := range probes {
		a := masked.Contains(pt, FillNonZero)
		b := compound.Contains(pt, FillEvenOdd)
		if a != b {
			t.Fatalf("mask disagreement at %v: reversed/non-zero=%v even-odd=%v", pt, a, b)
		}
	}
}

func TestPathEmpty(t *testing.T) {
	var p *Path
	if !p.Empty() {
		t.Fatalf("nil path should be empty")
	}
	if p.Contains(Pt(0, 0), FillNonZero) {
		t.Fatalf("empty path contains nothing")
	}
	q := &Path{}
	if !q.Empty() {
		t.Fatalf("zero path should be empty")
	}
}
