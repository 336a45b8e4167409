package presenter

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/quad-crop-go/domain/magnify"
	"github.com/soocke/quad-crop-go/domain/quad"
	"github.com/soocke/quad-crop-go/render"
)

// EditorModel provides selection and mode state access.
type EditorModel interface {
	Selected() (quad.Corner, bool)
	Select(quad.Corner)
	SelectNext() quad.Corner
	ClearSelection()
	Editable() bool
	SetEditable(bool)
	ShowMask() bool
	SetShowMask(bool)
}

// EditorView updates UI elements affected by editing.
type EditorView interface {
	UpdateScene(img image.Image)
	UpdateMagnifier(img image.Image)
	SetModeLabel(text string)
	SetStyleEditable(enabled bool)
	PreviewReset()
}

const (
	animSteps    = 8
	animInterval = 20 * time.Millisecond
)

// EditorPresenter owns presentation logic for corner editing: it turns
// selection, nudge and toggle events into editor mutations and pushes
// composed frames to the view. All methods run on the UI thread.
type EditorPresenter struct {
	editor *quad.Editor
	model  EditorModel
	view   EditorView
	logger *slog.Logger

	source image.Image

	// schedule defers fn onto the UI event loop after d. Injected so
	// tests can drive animation synchronously.
	schedule func(d time.Duration, fn func())

	nudgeStep float64
	animGen   int
}

func NewEditorPresenter(editor *quad.Editor, m EditorModel, view EditorView, logger *slog.Logger, schedule func(time.Duration, func())) *EditorPresenter {
	return &EditorPresenter{
		editor:    editor,
		model:     m,
		view:      view,
		logger:    logger,
		schedule:  schedule,
		nudgeStep: 4,
	}
}

// SetNudgeStep sets the per-keypress corner displacement in pixels.
func (p *EditorPresenter) SetNudgeStep(px float64) {
	if p == nil || px <= 0 {
		return
	}
	p.nudgeStep = px
}

// Source returns the current base image.
func (p *EditorPresenter) Source() image.Image {
	if p == nil {
		return nil
	}
	return p.source
}

// SetSource replaces the base image and resizes the editing surface to
// match. Without a current quadrilateral a default inset one is placed.
func (p *EditorPresenter) SetSource(img image.Image) {
	if p == nil || p.editor == nil || img == nil {
		return
	}
	p.source = img
	b := img.Bounds()
	bounds := quad.Rect{W: float64(b.Dx()), H: float64(b.Dy())}
	p.editor.SetBounds(bounds)
	if _, ok := p.editor.Quadrilateral(); !ok {
		p.editor.SetQuadrilateral(defaultQuad(bounds))
	}
	p.Refresh()
}

// defaultQuad is the rectangle inset by a tenth of the smaller dimension.
func defaultQuad(bounds quad.Rect) quad.Quadrilateral {
	margin := bounds.W
	if bounds.H < margin {
		margin = bounds.H
	}
	return quad.InsetRect(bounds, margin*0.1)
}

// SelectNext advances the selected corner and highlights its handle.
func (p *EditorPresenter) SelectNext() {
	if p == nil || p.editor == nil || p.model == nil {
		return
	}
	if !p.model.Editable() {
		return
	}
	c := p.model.SelectNext()
	p.editor.Highlight(c)
	p.Refresh()
}

// SelectCorner highlights a specific corner.
func (p *EditorPresenter) SelectCorner(c quad.Corner) {
	if p == nil || p.editor == nil || p.model == nil || !p.model.Editable() {
		return
	}
	p.model.Select(c)
	p.editor.Highlight(c)
	p.Refresh()
}

// Deselect resets the highlighted handle and drops the selection.
func (p *EditorPresenter) Deselect() {
	if p == nil || p.editor == nil || p.model == nil {
		return
	}
	p.model.ClearSelection()
	p.editor.ResetHighlight()
	p.Refresh()
}

// Nudge displaces the selected corner by (dx, dy) nudge steps. The
// editor clamps the result to the surface, so repeated nudges against an
// edge are harmless.
func (p *EditorPresenter) Nudge(dx, dy float64) {
	if p == nil || p.editor == nil || p.model == nil {
		return
	}
	if !p.model.Editable() {
		return
	}
	c, ok := p.model.Selected()
	if !ok {
		return
	}
	q, hasQuad := p.editor.Quadrilateral()
	if !hasQuad {
		return
	}
	p.animGen++ // direct edits cancel any running animation
	target := q.Point(c).Add(quad.Pt(dx*p.nudgeStep, dy*p.nudgeStep))
	p.editor.MoveCorner(c, target, p.editor.Bounds())
	p.Refresh()
}

// ToggleEdit flips edit mode. Leaving edit mode resets the highlight.
func (p *EditorPresenter) ToggleEdit() {
	if p == nil || p.editor == nil || p.model == nil {
		return
	}
	next := !p.model.Editable()
	p.model.SetEditable(next)
	p.editor.SetEditable(next)
	if !next {
		p.editor.ResetHighlight()
	}
	if p.view != nil {
		if next {
			p.view.SetModeLabel("Mode: edit")
		} else {
			p.view.SetModeLabel("Mode: view")
		}
		// The style panel only applies while editing.
		p.view.SetStyleEditable(next)
	}
	p.Refresh()
}

// ToggleMask flips the boundary mask flag.
func (p *EditorPresenter) ToggleMask() {
	if p == nil || p.editor == nil || p.model == nil {
		return
	}
	next := !p.model.ShowMask()
	p.model.SetShowMask(next)
	p.editor.SetShowBoundaryMask(next)
	p.Refresh()
}

// ClearQuad removes the quadrilateral entirely: the outline disappears,
// any highlight and selection are dropped and the preview labels return
// to their placeholder state.
func (p *EditorPresenter) ClearQuad() {
	if p == nil || p.editor == nil {
		return
	}
	p.animGen++
	if p.model != nil {
		p.model.ClearSelection()
	}
	p.editor.ResetHighlight()
	p.editor.RemoveQuadrilateral()
	if p.view != nil {
		p.view.PreviewReset()
	}
}

// ResetQuad animates the quadrilateral back to the default inset
// rectangle for the current surface.
func (p *EditorPresenter) ResetQuad() {
	if p == nil || p.editor == nil {
		return
	}
	p.AnimateTo(defaultQuad(p.editor.Bounds()))
}

// AnimateTo interpolates the quadrilateral toward target over a short
// fixed number of steps. A newer animation or a direct corner edit
// supersedes a running one. Without a scheduler the target is applied
// immediately.
func (p *EditorPresenter) AnimateTo(target quad.Quadrilateral) {
	if p == nil || p.editor == nil {
		return
	}
	start, ok := p.editor.Quadrilateral()
	if !ok || p.schedule == nil {
		p.editor.SetQuadrilateral(target)
		p.Refresh()
		return
	}
	p.animGen++
	gen := p.animGen
	step := 0
	var tick func()
	tick = func() {
		if p.animGen != gen {
			return
		}
		step++
		t := float64(step) / float64(animSteps)
		if step >= animSteps {
			p.editor.SetQuadrilateral(target)
			p.Refresh()
			return
		}
		p.editor.SetQuadrilateral(start.Lerp(target, t))
		p.Refresh()
		p.schedule(animInterval, tick)
	}
	p.schedule(animInterval, tick)
}

// Refresh composes the current scene and magnifier sample and pushes
// them to the view.
func (p *EditorPresenter) Refresh() {
	if p == nil || p.editor == nil || p.view == nil {
		return
	}
	bounds := p.editor.Bounds()
	scene := render.Scene{
		Base:    p.source,
		Bounds:  image.Rect(0, 0, int(bounds.W), int(bounds.H)),
		Outline: p.editor.Outline(),
		Handles: p.editor.Handles(),
	}
	var sample *image.NRGBA
	if c, ok := p.editor.Highlighted(); ok && p.editor.Editable() {
		h := p.editor.Handle(c)
		size := int(h.Size)
		focal := image.Pt(int(h.Center.X), int(h.Center.Y))
		sample = magnify.CircleSample(p.source, focal, image.Pt(size, size), p.editor.Style().Magnification)
		scene.Sample = sample
	}
	frame := scene.Render()
	p.view.UpdateScene(frame)
	render.Recycle(frame)
	if sample != nil {
		p.view.UpdateMagnifier(sample)
	} else {
		p.view.UpdateMagnifier(nil)
	}
}
