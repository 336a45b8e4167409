package app

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/soocke/quad-crop-go/assets"
	"github.com/soocke/quad-crop-go/capture"
	"github.com/soocke/quad-crop-go/config"
	"github.com/soocke/quad-crop-go/domain/quad"
	"github.com/soocke/quad-crop-go/ui/model"
	"github.com/soocke/quad-crop-go/ui/presenter"
	"github.com/soocke/quad-crop-go/ui/view"
)

// AppContainer assembles the editor, models, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Editor   *quad.Editor
	Model    *model.EditorModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	EditorPresenter *presenter.EditorPresenter
	SourcePresenter *presenter.SourcePresenter

	SourceImg image.Image
}

// BuildContainer constructs all components. Side-effects limited to asset
// and input image loading. schedule defers callbacks onto the UI event loop.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath, imagePath string, schedule func(time.Duration, func())) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.SourceImg = loadSource(imagePath, logger)

	b := c.SourceImg.Bounds()
	bounds := quad.Rect{W: float64(b.Dx()), H: float64(b.Dy())}
	c.Editor = quad.NewEditor(bounds, logger)
	c.Editor.SetStyle(styleFromConfig(cfg))
	c.Editor.SetShowBoundaryMask(cfg.ShowBoundaryMask)

	c.Model = model.NewEditorModel()
	c.Model.SetShowMask(cfg.ShowBoundaryMask)
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	c.EditorPresenter = presenter.NewEditorPresenter(c.Editor, c.Model, c.RootView, logger, schedule)
	c.SourcePresenter = presenter.NewSourcePresenter(presenter.GrabberFunc(capture.Grab), c.EditorPresenter, logger)

	// Restore the persisted quadrilateral before the first frame so the
	// default inset placement does not flash.
	if cfg.HasQuad() {
		c.Editor.SetQuadrilateral(quadFromConfig(cfg, bounds))
	}
	c.EditorPresenter.SetSource(c.SourceImg)
	return c
}

// loadSource reads the input image, falling back to the embedded sample
// document when the path is empty or unreadable.
func loadSource(path string, logger *slog.Logger) image.Image {
	if path != "" {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			img, _, derr := image.Decode(f)
			if derr == nil {
				return img
			}
			err = derr
		}
		if logger != nil {
			logger.Error("input image load failed, using sample document", "path", path, "error", err)
		}
	}
	img, err := assets.SampleDocumentImage()
	if err != nil {
		if logger != nil {
			logger.Error("embedded sample document unavailable", "error", err)
		}
		return image.NewRGBA(image.Rect(0, 0, 480, 360))
	}
	return img
}

// styleFromConfig maps persisted presentation settings onto an editor style.
func styleFromConfig(cfg *config.Config) quad.Style {
	s := quad.DefaultStyle()
	if cfg == nil {
		return s
	}
	if c, ok := parseHexColor(cfg.StrokeColor); ok {
		s.StrokeColor = c
	}
	s.StrokeWidth = cfg.StrokeWidth
	s.HandleSize = cfg.HandleSizePx
	s.HighlightedHandleSize = cfg.HighlightedHandleSizePx
	s.Magnification = cfg.Magnification
	return s
}

// quadFromConfig denormalizes the persisted [0,1] corners onto bounds.
func quadFromConfig(cfg *config.Config, bounds quad.Rect) quad.Quadrilateral {
	at := func(nx, ny float64) quad.Point {
		return quad.Pt(nx*bounds.W, ny*bounds.H)
	}
	return quad.NewQuadrilateral(
		at(cfg.QuadTLX, cfg.QuadTLY),
		at(cfg.QuadTRX, cfg.QuadTRY),
		at(cfg.QuadBRX, cfg.QuadBRY),
		at(cfg.QuadBLX, cfg.QuadBLY),
	)
}

// quadToConfig normalizes the current corners into cfg for persistence.
func quadToConfig(cfg *config.Config, q quad.Quadrilateral, bounds quad.Rect) {
	if cfg == nil || bounds.Empty() {
		return
	}
	norm := func(p quad.Point) (float64, float64) {
		return p.X / bounds.W, p.Y / bounds.H
	}
	cfg.QuadTLX, cfg.QuadTLY = norm(q.Point(quad.TopLeft))
	cfg.QuadTRX, cfg.QuadTRY = norm(q.Point(quad.TopRight))
	cfg.QuadBRX, cfg.QuadBRY = norm(q.Point(quad.BottomRight))
	cfg.QuadBLX, cfg.QuadBLY = norm(q.Point(quad.BottomLeft))
}

// parseHexColor parses #rrggbb into an opaque color.
func parseHexColor(s string) (color.NRGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
