package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestScaleToFit_KeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 40))
	out := ScaleToFit(src, 100, 100)
	if out != image.Image(src) {
		t.Fatalf("image already within bounds should be returned unchanged")
	}
}

func TestScaleToFit_PreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	out := ScaleToFit(src, 100, 100)
	b := out.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected 100x50, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestScaleToFit_TallImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 1000))
	out := ScaleToFit(src, 200, 100)
	b := out.Bounds()
	if b.Dy() != 100 || b.Dx() != 10 {
		t.Fatalf("expected 10x100, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestScaleTo_ExactSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 33, 17))
	out := ScaleTo(src, 64, 64)
	if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 64 {
		t.Fatalf("got %v", out.Bounds())
	}
}

func TestEncodePNG_RoundTrips(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{R: 200, A: 255})
	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatalf("empty png data")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, _, _ := decoded.At(1, 2).RGBA()
	if uint8(r>>8) != 200 {
		t.Fatalf("pixel lost in encode: %d", r>>8)
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should yield nil bytes")
	}
}
