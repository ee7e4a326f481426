package common

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{R: 70, G: 80, B: 90, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 100, G: 110, B: 120, A: 255})

	asset := &ImageAsset{Data: encodePNG(t, src)}
	pixels, w, h, channels, err := asset.Decode()
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if w != 2 || h != 2 || channels != 4 {
		t.Fatalf("Decode() = %dx%d/%d channels, want 2x2/4", w, h, channels)
	}
	if len(pixels) != 2*2*4 {
		t.Fatalf("Decode() returned %d bytes, want %d", len(pixels), 2*2*4)
	}
	// Without flipping, the first pixel is the top-left source pixel.
	if pixels[0] != 10 || pixels[1] != 20 || pixels[2] != 30 || pixels[3] != 255 {
		t.Errorf("first pixel = %v, want [10 20 30 255]", pixels[:4])
	}
}

func TestDecodeFlipVertical(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{R: 2, A: 255})

	asset := &ImageAsset{Data: encodePNG(t, src), FlipVertical: true}
	pixels, _, _, _, err := asset.Decode()
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	// Flipped: the bottom source row comes first.
	if pixels[0] != 2 {
		t.Errorf("first flipped pixel R = %d, want 2", pixels[0])
	}
	if pixels[4] != 1 {
		t.Errorf("second flipped pixel R = %d, want 1", pixels[4])
	}
}

func TestDecodeJPEGIsThreeChannel(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}

	asset := &ImageAsset{Data: buf.Bytes()}
	pixels, w, h, channels, err := asset.Decode()
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if channels != 3 {
		t.Errorf("JPEG channels = %d, want 3", channels)
	}
	if len(pixels) != w*h*3 {
		t.Errorf("Decode() returned %d bytes, want %d", len(pixels), w*h*3)
	}
}

func TestDecodeGrayscaleRejected(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	asset := &ImageAsset{Data: encodePNG(t, src)}
	if _, _, _, _, err := asset.Decode(); err == nil {
		t.Fatal("Decode() of grayscale image succeeded, want error")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	asset := &ImageAsset{Path: "testdata/does-not-exist.png"}
	if _, _, _, _, err := asset.Decode(); err == nil {
		t.Fatal("Decode() of missing file succeeded, want error")
	}
}

func TestDecodeEmptyAsset(t *testing.T) {
	asset := &ImageAsset{}
	if _, _, _, _, err := asset.Decode(); err == nil {
		t.Fatal("Decode() of empty asset succeeded, want error")
	}
}
