package light

// LightBuilderOption is a function that configures a light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - x, y, z: the position components
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a light
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithAmbientColor is an option builder that sets the ambient RGB contribution of the light.
//
// Parameters:
//   - r, g, b: the ambient color components
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient color option to a light
func WithAmbientColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambientColor = [3]float32{r, g, b}
	}
}

// WithDiffuseColor is an option builder that sets the diffuse RGB contribution of the light.
//
// Parameters:
//   - r, g, b: the diffuse color components
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse color option to a light
func WithDiffuseColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuseColor = [3]float32{r, g, b}
	}
}

// WithSpecularColor is an option builder that sets the specular RGB contribution of the light.
//
// Parameters:
//   - r, g, b: the specular color components
//
// Returns:
//   - LightBuilderOption: a function that applies the specular color option to a light
func WithSpecularColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specularColor = [3]float32{r, g, b}
	}
}

// WithFocalStrength is an option builder that sets the focal strength exponent of the light.
//
// Parameters:
//   - strength: the focal strength value
//
// Returns:
//   - LightBuilderOption: a function that applies the focal strength option to a light
func WithFocalStrength(strength float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.focalStrength = strength
	}
}

// WithSpecularIntensity is an option builder that sets the scalar specular multiplier of the light.
//
// Parameters:
//   - intensity: the specular intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the specular intensity option to a light
func WithSpecularIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specularIntensity = intensity
	}
}
