// Package render rasterizes the editor's outline and handle
// descriptions over a base image. The Tk host has no compound-path fill
// primitive, so the path + fill-rule description is resolved here in
// software and the host displays the finished frame.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/soocke/quad-crop-go/domain/quad"
)

// Scene is everything needed to compose one preview frame.
type Scene struct {
	// Base is the source image, already sized to the surface bounds.
	// A nil Base composes over a dark placeholder background.
	Base image.Image
	// Bounds is the surface rectangle in pixels.
	Bounds image.Rectangle
	// Outline is the editor's current outline description.
	Outline quad.Outline
	// Handles are the per-corner handle states (visibility included).
	Handles [4]quad.Handle
	// Sample, when non-nil, is the circular magnifier preview drawn
	// centered over the highlighted handle.
	Sample image.Image
}

var background = color.NRGBA{R: 30, G: 30, B: 34, A: 255}

// Render composes the scene into an RGBA frame taken from the frame
// pool. Callers that are done presenting the frame should hand it back
// via Recycle.
func (s Scene) Render() *image.RGBA {
	frame := acquireFrame(s.Bounds)
	if s.Base != nil {
		draw.Draw(frame, frame.Bounds(), s.Base, s.Base.Bounds().Min, draw.Src)
	} else {
		draw.Draw(frame, frame.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	s.paintOutline(frame)
	s.paintHandles(frame)
	s.paintSample(frame)
	return frame
}

// paintOutline fills the outline's interior per its fill rule and then
// strokes the path edges.
func (s Scene) paintOutline(frame *image.RGBA) {
	out := s.Outline
	if !out.Visible || out.Path.Empty() {
		return
	}
	if out.Fill.A > 0 {
		b := frame.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pt := quad.Pt(float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5)
				if out.Path.Contains(pt, out.Rule) {
					blendPixel(frame, x, y, out.Fill)
				}
			}
		}
	}
	if out.StrokeColor.A == 0 || out.StrokeWidth <= 0 {
		return
	}
	ox := float64(frame.Bounds().Min.X)
	oy := float64(frame.Bounds().Min.Y)
	var start, cur quad.Point
	var open bool
	for _, e := range out.Path.Elements() {
		switch e.Op {
		case quad.OpMoveTo:
			start, cur = e.To, e.To
			open = true
		case quad.OpLineTo:
			if open {
				drawLine(frame, ox+cur.X, oy+cur.Y, ox+e.To.X, oy+e.To.Y, out.StrokeColor, out.StrokeWidth)
				cur = e.To
			}
		case quad.OpClose:
			if open && cur != start {
				drawLine(frame, ox+cur.X, oy+cur.Y, ox+start.X, oy+start.Y, out.StrokeColor, out.StrokeWidth)
			}
			open = false
		}
	}
}

// paintHandles draws a ring for each visible handle, highlighted ones
// with a heavier stroke.
func (s Scene) paintHandles(frame *image.RGBA) {
	out := s.Outline
	ox := float64(frame.Bounds().Min.X)
	oy := float64(frame.Bounds().Min.Y)
	for _, h := range s.Handles {
		if !h.Visible {
			continue
		}
		w := out.StrokeWidth
		if w <= 0 {
			w = 1
		}
		if h.State == quad.HandleHighlighted {
			w *= 2
		}
		strokeCircle(frame, ox+h.Center.X, oy+h.Center.Y, h.Size/2, out.StrokeColor, w)
	}
}

// paintSample composites the magnifier sample centered over the
// highlighted handle. The sample carries its own circular alpha.
func (s Scene) paintSample(frame *image.RGBA) {
	if s.Sample == nil {
		return
	}
	var target *quad.Handle
	for i := range s.Handles {
		if s.Handles[i].Visible && s.Handles[i].State == quad.HandleHighlighted {
			target = &s.Handles[i]
			break
		}
	}
	if target == nil {
		return
	}
	sb := s.Sample.Bounds()
	x0 := frame.Bounds().Min.X + int(target.Center.X) - sb.Dx()/2
	y0 := frame.Bounds().Min.Y + int(target.Center.Y) - sb.Dy()/2
	dst := image.Rect(x0, y0, x0+sb.Dx(), y0+sb.Dy())
	draw.Draw(frame, dst, s.Sample, sb.Min, draw.Over)
}

// Reusable frame pool to avoid re-allocating large RGBA backing slices
// on every drag tick. Frames handed to consumers that never recycle
// simply fall back to fresh allocations.
var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns an RGBA frame sized to rect whose Pix capacity
// is at least rect area * 4.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// Recycle returns a frame to the pool. The frame must not be accessed
// by the caller afterwards.
func Recycle(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
