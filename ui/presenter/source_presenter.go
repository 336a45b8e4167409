package presenter

import (
	"image"
	"log/slog"
)

// Grabber captures the current screen contents.
type Grabber interface {
	Grab() (*image.RGBA, error)
}

// GrabberFunc adapts a plain capture function to the Grabber interface.
type GrabberFunc func() (*image.RGBA, error)

func (f GrabberFunc) Grab() (*image.RGBA, error) { return f() }

// SourceSink receives a replacement base image.
type SourceSink interface {
	SetSource(img image.Image)
}

// SourcePresenter replaces the editing surface with a fresh screen
// capture on demand.
type SourcePresenter struct {
	grabber Grabber
	sink    SourceSink
	logger  *slog.Logger
}

func NewSourcePresenter(grabber Grabber, sink SourceSink, logger *slog.Logger) *SourcePresenter {
	return &SourcePresenter{grabber: grabber, sink: sink, logger: logger}
}

// Capture grabs one frame and hands it to the sink. Failures are logged
// and leave the current surface untouched.
func (p *SourcePresenter) Capture() {
	if p == nil || p.grabber == nil || p.sink == nil {
		return
	}
	img, err := p.grabber.Grab()
	if err != nil || img == nil {
		if p.logger != nil {
			p.logger.Error("screen capture failed", "error", err)
		}
		return
	}
	p.sink.SetSource(img)
	if p.logger != nil {
		b := img.Bounds()
		p.logger.Info("surface replaced from capture", "width", b.Dx(), "height", b.Dy())
	}
}
