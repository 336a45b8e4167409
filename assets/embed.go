package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// SampleDocumentPNG contains the raw PNG bytes of the built-in sample
// document photo used when no input image is given.
//
//go:embed sample_document.png
var SampleDocumentPNG []byte

// SampleDocumentImage decodes the embedded PNG into an image.Image.
func SampleDocumentImage() (image.Image, error) {
	if len(SampleDocumentPNG) == 0 {
		return nil, fmt.Errorf("embedded sample_document.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(SampleDocumentPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
