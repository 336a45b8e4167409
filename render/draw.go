package render

import (
	"image"
	"image/color"
	"math"
)

// Low-level software drawing primitives used by the scene compositor.
// Everything is distance-field based with a one-pixel anti-aliased
// fringe and straight alpha blending.

// blendPixel mixes c over the pixel at (x, y), honoring c's alpha.
func blendPixel(img *image.RGBA, x, y int, c color.NRGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	off := (y-b.Min.Y)*img.Stride + (x-b.Min.X)*4
	if c.A == 255 {
		img.Pix[off+0] = c.R
		img.Pix[off+1] = c.G
		img.Pix[off+2] = c.B
		img.Pix[off+3] = 255
		return
	}
	if c.A == 0 {
		return
	}
	srcA := uint32(c.A)
	invA := 255 - srcA
	img.Pix[off+0] = uint8((uint32(c.R)*srcA + uint32(img.Pix[off+0])*invA) / 255)
	img.Pix[off+1] = uint8((uint32(c.G)*srcA + uint32(img.Pix[off+1])*invA) / 255)
	img.Pix[off+2] = uint8((uint32(c.B)*srcA + uint32(img.Pix[off+2])*invA) / 255)
	img.Pix[off+3] = uint8(srcA + uint32(img.Pix[off+3])*invA/255)
}

// blendDistance renders one pixel of an anti-aliased shape given its
// distance from the shape's spine and the shape's half width.
func blendDistance(img *image.RGBA, x, y int, c color.NRGBA, dist, halfW float64) {
	if dist > halfW+0.5 {
		return
	}
	if dist <= halfW-0.5 {
		blendPixel(img, x, y, c)
		return
	}
	frac := halfW + 0.5 - dist
	blendPixel(img, x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * frac)})
}

// drawLine draws an anti-aliased line with round caps from (x1,y1) to
// (x2,y2) with the given stroke width.
func drawLine(img *image.RGBA, x1, y1, x2, y2 float64, c color.NRGBA, width float64) {
	halfW := width / 2
	if halfW < 0.75 {
		halfW = 0.75
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length < 0.5 {
		fillCircle(img, x1, y1, halfW, c)
		return
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	margin := int(halfW) + 2
	bx0 := int(math.Min(x1, x2)) - margin
	bx1 := int(math.Max(x1, x2)) + margin
	by0 := int(math.Min(y1, y2)) - margin
	by1 := int(math.Max(y1, y2)) + margin

	for py := by0; py <= by1; py++ {
		for px := bx0; px <= bx1; px++ {
			vx := float64(px) - x1
			vy := float64(py) - y1
			along := vx*ux + vy*uy
			var dist float64
			switch {
			case along <= 0:
				dist = math.Hypot(vx, vy)
			case along >= length:
				dist = math.Hypot(float64(px)-x2, float64(py)-y2)
			default:
				dist = math.Abs(vx*nx + vy*ny)
			}
			blendDistance(img, px, py, c, dist, halfW)
		}
	}
}

// fillCircle draws an anti-aliased filled disc.
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	ri := int(r) + 2
	cxi, cyi := int(cx), int(cy)
	for py := cyi - ri; py <= cyi+ri; py++ {
		for px := cxi - ri; px <= cxi+ri; px++ {
			dist := math.Hypot(float64(px)-cx, float64(py)-cy)
			blendDistance(img, px, py, c, dist, r)
		}
	}
}

// strokeCircle draws an anti-aliased ring of the given stroke width
// centered on the radius.
func strokeCircle(img *image.RGBA, cx, cy, r float64, c color.NRGBA, width float64) {
	halfW := width / 2
	if halfW < 0.75 {
		halfW = 0.75
	}
	ri := int(r+halfW) + 2
	cxi, cyi := int(cx), int(cy)
	for py := cyi - ri; py <= cyi+ri; py++ {
		for px := cxi - ri; px <= cxi+ri; px++ {
			dist := math.Abs(math.Hypot(float64(px)-cx, float64(py)-cy) - r)
			blendDistance(img, px, py, c, dist, halfW)
		}
	}
}
