package texture

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// MaxSlots is the number of texture slots the registry manages. Each slot
// maps one-to-one onto a GPU texture unit, and 16 units is the guaranteed
// minimum for a fragment stage, so the registry never grows past it.
const MaxSlots = 16

// SlotNotFound is the sentinel returned by Slot for unregistered tags.
const SlotNotFound = -1

// entry pairs a registered tag with its slot index and GPU handle.
// Slot indices equal registration order and are never reused in a session.
type entry struct {
	tag    string
	handle uint32
}

// registry is the implementation of the Registry interface.
type registry struct {
	uploader     Uploader
	flipVertical bool

	entries []entry        // slot order
	byTag   map[string]int // tag -> slot index
}

// Registry defines the interface for the bounded, tag-addressed texture table.
//
// Textures are registered once during scene setup and live until ReleaseAll;
// individual removal is not supported. Registration failures (undecodable
// file, unsupported pixel layout, duplicate tag, exhausted capacity) register
// nothing and surface as errors — rendering continues with one fewer texture,
// which shows up downstream as unresolved-tag draws.
type Registry interface {
	// Register decodes an image file, uploads it as a GPU 2D texture with
	// repeat wrapping, linear filtering, and mipmaps, and appends it at the
	// next free slot under the given tag. The image is flipped vertically
	// on decode (bottom-left origin convention) unless the registry was
	// built with WithFlipVertical(false).
	//
	// Parameters:
	//   - filePath: path of the image file (PNG or JPEG, 3 or 4 channels)
	//   - tag: the unique tag to register the texture under
	//
	// Returns:
	//   - error: error if decoding, validation, or upload fails; nothing is registered
	Register(filePath, tag string) error

	// RegisterDecoded uploads pre-decoded pixel data and appends it at the
	// next free slot under the given tag. This is the upload half of
	// Register, split out so image decoding can run off the render thread
	// while uploads stay strictly in registration order.
	//
	// Parameters:
	//   - tag: the unique tag to register the texture under
	//   - pixels: tightly packed pixel data, channels bytes per pixel
	//   - width: image width in pixels
	//   - height: image height in pixels
	//   - channels: pixel channel count; only 3 (RGB) and 4 (RGBA) are supported
	//
	// Returns:
	//   - error: error if validation or upload fails; nothing is registered
	RegisterDecoded(tag string, pixels []byte, width, height, channels int) error

	// BindAll binds every registered texture to the GPU texture unit
	// matching its slot index (unit N <- slot N), in slot order. Call once
	// after all registrations and before any draw that samples a texture.
	BindAll()

	// Slot looks up the slot index for a tag.
	//
	// Parameters:
	//   - tag: the texture tag to look up
	//
	// Returns:
	//   - int: the slot index in [0, MaxSlots), or SlotNotFound (-1) if the tag is unregistered
	Slot(tag string) int

	// Handle looks up the GPU resource handle for a tag.
	//
	// Parameters:
	//   - tag: the texture tag to look up
	//
	// Returns:
	//   - uint32: the GPU texture handle
	//   - bool: true if the tag is registered
	Handle(tag string) (uint32, bool)

	// Len returns the number of registered textures.
	//
	// Returns:
	//   - int: the registered count
	Len() int

	// ReleaseAll releases the GPU resources of every registered texture and
	// clears the registry. Only called at full shutdown, never per texture.
	ReleaseAll()
}

var _ Registry = &registry{}

// NewRegistry creates a texture registry configured with the provided options.
// Unless overridden with WithUploader, textures are uploaded through the
// OpenGL uploader, which requires a current GL context on the calling thread.
//
// Parameters:
//   - options: variadic list of RegistryBuilderOption functions to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registry{
		flipVertical: true,
		byTag:        make(map[string]int),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.uploader == nil {
		r.uploader = newGLUploader()
	}
	return r
}

func (r *registry) Register(filePath, tag string) error {
	asset := &common.ImageAsset{Path: filePath, FlipVertical: r.flipVertical}
	pixels, width, height, channels, err := asset.Decode()
	if err != nil {
		log.Printf("[Texture] could not load image %s: %v", filePath, err)
		return fmt.Errorf("failed to load texture %q: %w", tag, err)
	}

	if err := r.RegisterDecoded(tag, pixels, width, height, channels); err != nil {
		return err
	}

	log.Printf("[Texture] loaded image %s: width %d, height %d, channels %d (slot %d)",
		filePath, width, height, channels, r.byTag[tag])
	return nil
}

func (r *registry) RegisterDecoded(tag string, pixels []byte, width, height, channels int) error {
	if tag == "" {
		return fmt.Errorf("texture tag is empty")
	}
	if _, exists := r.byTag[tag]; exists {
		return fmt.Errorf("texture %q is already registered", tag)
	}
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("texture %q rejected: all %d slots are in use", tag, MaxSlots)
	}
	if channels != 3 && channels != 4 {
		return fmt.Errorf("texture %q rejected: unsupported %d-channel pixel data", tag, channels)
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height*channels {
		return fmt.Errorf("texture %q rejected: pixel data does not match %dx%d/%d channels", tag, width, height, channels)
	}

	handle, err := r.uploader.Upload(pixels, width, height, channels)
	if err != nil {
		return fmt.Errorf("failed to upload texture %q: %w", tag, err)
	}

	r.byTag[tag] = len(r.entries)
	r.entries = append(r.entries, entry{tag: tag, handle: handle})
	return nil
}

func (r *registry) BindAll() {
	for slot, e := range r.entries {
		r.uploader.Bind(slot, e.handle)
	}
}

func (r *registry) Slot(tag string) int {
	slot, ok := r.byTag[tag]
	if !ok {
		return SlotNotFound
	}
	return slot
}

func (r *registry) Handle(tag string) (uint32, bool) {
	slot, ok := r.byTag[tag]
	if !ok {
		return 0, false
	}
	return r.entries[slot].handle, true
}

func (r *registry) Len() int {
	return len(r.entries)
}

func (r *registry) ReleaseAll() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.handle
	}
	r.uploader.Release(handles)
	r.entries = nil
	r.byTag = make(map[string]int)
}
