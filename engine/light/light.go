package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position          [3]float32
	ambientColor      [3]float32
	diffuseColor      [3]float32
	specularColor     [3]float32
	focalStrength     float32
	specularIntensity float32
}

// Light defines the interface for one scene light source.
//
// Lights are opaque parameter records: the engine pushes their values into
// the shader's lightSources array as uniforms and computes nothing itself.
// All properties are set at construction time and are read-only through
// this interface.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// AmbientColor returns the ambient RGB contribution of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	AmbientColor() [3]float32

	// DiffuseColor returns the diffuse RGB contribution of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	DiffuseColor() [3]float32

	// SpecularColor returns the specular RGB contribution of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	SpecularColor() [3]float32

	// FocalStrength returns the focal strength exponent of the light.
	//
	// Returns:
	//   - float32: the focal strength value
	FocalStrength() float32

	// SpecularIntensity returns the scalar specular multiplier of the light.
	//
	// Returns:
	//   - float32: the specular intensity value
	SpecularIntensity() float32
}

var _ Light = &lightImpl{}

// NewLight creates a new Light instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		ambientColor:      [3]float32{0.1, 0.1, 0.1},
		diffuseColor:      [3]float32{1, 1, 1},
		specularColor:     [3]float32{0.1, 0.1, 0.1},
		focalStrength:     10,
		specularIntensity: 0.1,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) AmbientColor() [3]float32 {
	return l.ambientColor
}

func (l *lightImpl) DiffuseColor() [3]float32 {
	return l.diffuseColor
}

func (l *lightImpl) SpecularColor() [3]float32 {
	return l.specularColor
}

func (l *lightImpl) FocalStrength() float32 {
	return l.focalStrength
}

func (l *lightImpl) SpecularIntensity() float32 {
	return l.specularIntensity
}
