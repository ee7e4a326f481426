package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uploader abstracts the GPU side of the registry: creating a 2D texture
// from raw pixels, binding a handle to a texture unit, and releasing
// handles. The registry owns all bookkeeping; the uploader owns all GL
// calls, so registry semantics can be exercised without a GL context.
type Uploader interface {
	// Upload creates a GPU 2D texture from tightly packed pixel data with
	// repeat wrapping, linear min/mag filtering, and generated mipmaps.
	//
	// Parameters:
	//   - pixels: pixel data, channels bytes per pixel, row-major
	//   - width: image width in pixels
	//   - height: image height in pixels
	//   - channels: 3 for RGB or 4 for RGBA
	//
	// Returns:
	//   - uint32: the GPU texture handle
	//   - error: error if the texture cannot be created
	Upload(pixels []byte, width, height, channels int) (uint32, error)

	// Bind binds a texture handle to a GPU texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index
	//   - handle: the GPU texture handle
	Bind(unit int, handle uint32)

	// Release deletes the given GPU texture handles.
	//
	// Parameters:
	//   - handles: the handles to delete
	Release(handles []uint32)
}

// glUploader is the OpenGL implementation of Uploader.
// All methods must be called on the thread that owns the GL context.
type glUploader struct{}

var _ Uploader = glUploader{}

func newGLUploader() Uploader {
	return glUploader{}
}

func (glUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported %d-channel pixel data", channels)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows of 3-channel images are not 4-byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return handle, nil
}

func (glUploader) Bind(unit int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (glUploader) Release(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
