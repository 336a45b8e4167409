// Package magnify produces the zoomed corner previews shown while a
// quadrilateral corner is being dragged near fine content.
package magnify

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Sample extracts the region of src around focal and scales it up to
// exactly size. The source crop is size/magnification, centered at
// focal; its origin is clamped non-negative and its extent clamped to
// the source bounds (the window shifts rather than failing). A
// degenerate crop falls back to the whole source scaled into size, so
// the caller always receives an image of the requested dimensions.
//
// The call is stateless and does not retain src.
func Sample(src image.Image, focal image.Point, size image.Point, magnification float64) *image.NRGBA {
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	if src == nil {
		return image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	}
	if magnification <= 0 {
		return imaging.Resize(src, size.X, size.Y, imaging.Lanczos)
	}

	b := src.Bounds()
	w := int(math.Round(float64(size.X) / magnification))
	h := int(math.Round(float64(size.Y) / magnification))

	// Center on the focal point, then shift the window into bounds.
	x0 := b.Min.X + focal.X - w/2
	y0 := b.Min.Y + focal.Y - h/2
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if x0+w > b.Max.X {
		w = b.Max.X - x0
	}
	if y0+h > b.Max.Y {
		h = b.Max.Y - y0
	}
	if w < 1 || h < 1 {
		// Degraded visuals, never a failure: show the whole image.
		return imaging.Resize(src, size.X, size.Y, imaging.Lanczos)
	}

	crop := imaging.Crop(src, image.Rect(x0, y0, x0+w, y0+h))
	if crop.Bounds().Empty() {
		return imaging.Resize(src, size.X, size.Y, imaging.Lanczos)
	}
	return imaging.Resize(crop, size.X, size.Y, imaging.Lanczos)
}

// CircleSample is Sample composited through an anti-aliased circular
// alpha mask, matching the round highlighted handle it is drawn into.
func CircleSample(src image.Image, focal image.Point, size image.Point, magnification float64) *image.NRGBA {
	s := Sample(src, focal, size, magnification)
	b := s.Bounds()
	out := image.NewNRGBA(b)
	mask := newCircleMask(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.alphaAt(x, y)
			if a == 0 {
				continue
			}
			c := s.NRGBAAt(x, y)
			c.A = uint8(uint32(c.A) * uint32(a) / 255)
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// circleMask is an alpha mask for the inscribed circle of a rectangle,
// with a one-pixel anti-aliased fringe.
type circleMask struct {
	cx, cy, r float64
}

func newCircleMask(b image.Rectangle) circleMask {
	r := math.Min(float64(b.Dx()), float64(b.Dy())) / 2
	return circleMask{
		cx: float64(b.Min.X) + float64(b.Dx())/2,
		cy: float64(b.Min.Y) + float64(b.Dy())/2,
		r:  r,
	}
}

func (m circleMask) alphaAt(x, y int) uint8 {
	dist := math.Hypot(float64(x)+0.5-m.cx, float64(y)+0.5-m.cy)
	switch {
	case dist <= m.r-0.5:
		return 255
	case dist >= m.r+0.5:
		return 0
	default:
		return uint8(255 * (m.r + 0.5 - dist))
	}
}
