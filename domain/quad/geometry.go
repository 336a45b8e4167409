package quad

import "math"

// Point is a 2D point or vector in the editable surface's local
// coordinate space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned surface rectangle anchored at the origin.
// Width and Height are expected to be non-negative.
type Rect struct {
	W, H float64
}

// Clamp pins p into the rectangle component-wise: X into [0, W] and Y
// into [0, H], independently. A point fully outside one edge is pinned
// to that edge, never rejected. Clamp is idempotent.
func (r Rect) Clamp(p Point) Point {
	if p.X < 0 {
		p.X = 0
	} else if p.X > r.W {
		p.X = r.W
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > r.H {
		p.Y = r.H
	}
	return p
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
