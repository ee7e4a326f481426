package mesh

// MeshesBuilderOption is a function that configures a mesh library instance during construction.
type MeshesBuilderOption func(*glMeshes)

// WithCylinderSegments is an option builder that sets the number of radial
// segments used for the cylinder side and caps. Values below 3 are ignored.
//
// Parameters:
//   - segments: the radial segment count (default 36)
//
// Returns:
//   - MeshesBuilderOption: a function that applies the segment option to the library
func WithCylinderSegments(segments int) MeshesBuilderOption {
	return func(m *glMeshes) {
		if segments >= 3 {
			m.cylinderSegments = segments
		}
	}
}

// WithTorusSegments is an option builder that sets the torus tessellation:
// segments around the main ring and around the tube. Values below 3 are ignored.
//
// Parameters:
//   - radial: segments around the main ring (default 36)
//   - tubular: segments around the tube cross-section (default 18)
//
// Returns:
//   - MeshesBuilderOption: a function that applies the tessellation option to the library
func WithTorusSegments(radial, tubular int) MeshesBuilderOption {
	return func(m *glMeshes) {
		if radial >= 3 {
			m.torusRadialSegments = radial
		}
		if tubular >= 3 {
			m.torusTubularSegments = tubular
		}
	}
}

// WithTorusTubeRadius is an option builder that sets the torus tube radius
// relative to the unit ring radius. Non-positive values are ignored.
//
// Parameters:
//   - radius: the tube radius (default 0.25)
//
// Returns:
//   - MeshesBuilderOption: a function that applies the tube radius option to the library
func WithTorusTubeRadius(radius float32) MeshesBuilderOption {
	return func(m *glMeshes) {
		if radius > 0 {
			m.torusTubeRadius = radius
		}
	}
}
