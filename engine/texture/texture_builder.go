package texture

// RegistryBuilderOption is a function that configures a registry instance during construction.
type RegistryBuilderOption func(*registry)

// WithUploader is an option builder that sets the GPU uploader the registry
// delegates texture uploads, unit binds, and releases to. The default is the
// OpenGL uploader.
//
// Parameters:
//   - u: the uploader implementation to use
//
// Returns:
//   - RegistryBuilderOption: a function that applies the uploader option to a registry
func WithUploader(u Uploader) RegistryBuilderOption {
	return func(r *registry) {
		r.uploader = u
	}
}

// WithFlipVertical is an option builder that controls whether images are
// flipped vertically on decode. Enabled by default to match the GL
// bottom-left texture coordinate origin.
//
// Parameters:
//   - flip: if true, decoded rows are reordered bottom-up
//
// Returns:
//   - RegistryBuilderOption: a function that applies the flip option to a registry
func WithFlipVertical(flip bool) RegistryBuilderOption {
	return func(r *registry) {
		r.flipVertical = flip
	}
}
