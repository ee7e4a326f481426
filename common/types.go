package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// ImageAsset represents an image file staged for upload as a GPU texture.
// For in-memory assets the Data field contains raw image bytes; otherwise
// the Path field names a file on disk. Supports PNG and JPEG formats.
type ImageAsset struct {
	// Path is the file path for on-disk assets (empty for in-memory data).
	Path string

	// Data contains raw image bytes for in-memory assets (PNG/JPEG).
	Data []byte

	// FlipVertical flips the decoded rows so row 0 is the bottom of the
	// image, matching the GL texture coordinate origin.
	FlipVertical bool

	// Width is the image width in pixels (populated after Decode).
	Width int

	// Height is the image height in pixels (populated after Decode).
	Height int

	// Channels is the decoded channel count, 3 (RGB) or 4 (RGBA)
	// (populated after Decode).
	Channels int
}

// Decode decodes the asset to tightly packed raw pixel data.
// Uses either in-memory Data bytes or loads from Path on disk.
//
// The channel count follows the source image: opaque photographic formats
// (JPEG YCbCr) decode to 3-channel RGB, alpha-capable formats decode to
// 4-channel RGBA. Single-channel (grayscale) and CMYK sources are rejected;
// callers are expected to supply standard RGB/RGBA assets.
// Reference: https://pkg.go.dev/image
//
// Returns:
//   - []byte: raw pixel data, Channels bytes per pixel, row-major order
//   - int: image width in pixels
//   - int: image height in pixels
//   - int: channel count (3 or 4)
//   - error: error if decoding fails or the pixel layout is unsupported
func (a *ImageAsset) Decode() ([]byte, int, int, int, error) {
	if a == nil {
		return nil, 0, 0, 0, fmt.Errorf("image asset is nil")
	}

	var img image.Image
	var err error

	if len(a.Data) > 0 {
		img, _, err = image.Decode(bytes.NewReader(a.Data))
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("failed to decode in-memory image: %w", err)
		}
	} else if a.Path != "" {
		file, fileErr := os.Open(a.Path)
		if fileErr != nil {
			return nil, 0, 0, 0, fmt.Errorf("failed to open image file %s: %w", a.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("failed to decode image file %s: %w", a.Path, err)
		}
	} else {
		return nil, 0, 0, 0, fmt.Errorf("image asset has neither data nor path")
	}

	channels, err := channelCount(img)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	nrgba := image.NewNRGBA(bounds)
	draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)

	pixels := make([]byte, 0, width*height*channels)
	for row := 0; row < height; row++ {
		y := row
		if a.FlipVertical {
			y = height - 1 - row
		}
		rowStart := y * nrgba.Stride
		for x := 0; x < width; x++ {
			px := nrgba.Pix[rowStart+x*4 : rowStart+x*4+4]
			pixels = append(pixels, px[:channels]...)
		}
	}

	a.Width = width
	a.Height = height
	a.Channels = channels

	return pixels, width, height, channels, nil
}

// channelCount maps the decoded image's native pixel layout to the channel
// count a GL upload expects. Only 3-channel RGB and 4-channel RGBA layouts
// are representable as GL_RGB8/GL_RGBA8 textures.
func channelCount(img image.Image) (int, error) {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 0, fmt.Errorf("unsupported 1-channel grayscale image")
	case *image.CMYK:
		return 0, fmt.Errorf("unsupported 4-channel CMYK image")
	case *image.YCbCr:
		return 3, nil
	default:
		return 4, nil
	}
}
