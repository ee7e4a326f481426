package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*materialImpl)

// WithTag is an option builder that sets the registry tag of the material.
//
// Parameters:
//   - tag: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the tag option to a material
func WithTag(tag string) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.tag = tag
	}
}

// WithAmbientColor is an option builder that sets the ambient RGB color of the material.
//
// Parameters:
//   - r, g, b: the ambient color components
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient color option to a material
func WithAmbientColor(r, g, b float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.ambientColor = [3]float32{r, g, b}
	}
}

// WithAmbientStrength is an option builder that sets the scalar ambient multiplier of the material.
//
// Parameters:
//   - strength: the ambient strength
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient strength option to a material
func WithAmbientStrength(strength float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.ambientStrength = strength
	}
}

// WithDiffuseColor is an option builder that sets the diffuse RGB color of the material.
//
// Parameters:
//   - r, g, b: the diffuse color components
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse color option to a material
func WithDiffuseColor(r, g, b float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.diffuseColor = [3]float32{r, g, b}
	}
}

// WithSpecularColor is an option builder that sets the specular RGB color of the material.
//
// Parameters:
//   - r, g, b: the specular color components
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular color option to a material
func WithSpecularColor(r, g, b float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.specularColor = [3]float32{r, g, b}
	}
}

// WithShininess is an option builder that sets the specular exponent of the material.
//
// Parameters:
//   - shininess: the shininess value
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *materialImpl) {
		m.shininess = shininess
	}
}
