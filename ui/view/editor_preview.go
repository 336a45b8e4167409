package view

import (
	"image"

	"github.com/soocke/quad-crop-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// EditorPreview abstracts the composed editing surface and the circular
// corner magnifier. It owns two LabelWidgets and provides methods to
// update or reset them.
type EditorPreview interface {
	UpdateScene(img image.Image)
	UpdateMagnifier(img image.Image)
	Reset()
}

type editorPreview struct {
	sceneLabel     *LabelWidget
	magnifierLabel *LabelWidget
	prevScenePhoto *Img // last Tk photo image instance for the scene
	prevMagPhoto   *Img // last Tk photo image instance for the magnifier
}

// Internal state tracks current preview photos so we can dispose old images
// before replacing them, preventing accumulation of off-screen image data.

// NewEditorPreview creates the preview labels, grids them and returns the view.
// Layout: the scene spans columns 0-3; the magnifier sits at column 4 of the provided row.
func NewEditorPreview(row int) EditorPreview {
	scenePlaceholder := image.NewRGBA(image.Rect(0, 0, 400, 300))
	magPlaceholder := image.NewRGBA(image.Rect(0, 0, 175, 175))
	scenePhoto := NewPhoto(Data(images.EncodePNG(scenePlaceholder)))
	magPhoto := NewPhoto(Data(images.EncodePNG(magPlaceholder)))
	scene := Label(Image(scenePhoto), Borderwidth(1), Relief("sunken"))
	magnifier := Label(Image(magPhoto), Borderwidth(1), Relief("sunken"))
	Grid(scene, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(magnifier, Row(row), Column(4), Columnspan(1), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return &editorPreview{sceneLabel: scene, magnifierLabel: magnifier, prevScenePhoto: scenePhoto, prevMagPhoto: magPhoto}
}

const (
	// Max preview dimensions for the composed scene. Frames larger than
	// this are scaled down proportionally for display only.
	maxPreviewW = 640
	maxPreviewH = 480
)

func (v *editorPreview) UpdateScene(img image.Image) {
	if v.sceneLabel == nil || img == nil {
		return
	}
	// Scale for display only; allocate a fresh scaled image each call.
	scaled := images.ScaleToFit(img, maxPreviewW, maxPreviewH)
	pngBytes := images.EncodePNG(scaled)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevScenePhoto != nil {
		v.prevScenePhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevScenePhoto = newPhoto
	v.sceneLabel.Configure(Image(newPhoto))
}

func (v *editorPreview) UpdateMagnifier(img image.Image) {
	if v.magnifierLabel == nil {
		return
	}
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 175, 175))
	}
	pngBytes := images.EncodePNG(img)
	if v.prevMagPhoto != nil {
		v.prevMagPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevMagPhoto = newPhoto
	v.magnifierLabel.Configure(Image(newPhoto))
}

func (v *editorPreview) Reset() {
	if v.sceneLabel != nil {
		if v.prevScenePhoto != nil {
			v.prevScenePhoto.Delete()
		}
		v.prevScenePhoto = NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 400, 300)))))
		v.sceneLabel.Configure(Image(v.prevScenePhoto))
	}
	if v.magnifierLabel != nil {
		if v.prevMagPhoto != nil {
			v.prevMagPhoto.Delete()
		}
		v.prevMagPhoto = NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 175, 175)))))
		v.magnifierLabel.Configure(Image(v.prevMagPhoto))
	}
}
