package material

// materialImpl is the implementation of the Material interface.
type materialImpl struct {
	tag             string
	ambientColor    [3]float32
	ambientStrength float32
	diffuseColor    [3]float32
	specularColor   [3]float32
	shininess       float32
}

// Material defines the interface for a named surface-parameter record.
//
// Materials carry the opaque lighting parameters pushed into the shader
// before a draw call. The renderer never interprets them; it only forwards
// the values as uniforms. All properties are set at definition time and are
// read-only through this interface.
type Material interface {
	// Tag retrieves the material identifier used for registry lookup.
	//
	// Returns:
	//   - string: the tag of the material
	Tag() string

	// AmbientColor retrieves the ambient RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the ambient color as (r, g, b)
	AmbientColor() [3]float32

	// AmbientStrength retrieves the scalar ambient contribution multiplier.
	//
	// Returns:
	//   - float32: the ambient strength
	AmbientStrength() float32

	// DiffuseColor retrieves the diffuse RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the diffuse color as (r, g, b)
	DiffuseColor() [3]float32

	// SpecularColor retrieves the specular RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the specular color as (r, g, b)
	SpecularColor() [3]float32

	// Shininess retrieves the specular exponent of the material.
	//
	// Returns:
	//   - float32: the shininess value
	Shininess() float32
}

var _ Material = &materialImpl{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &materialImpl{
		ambientColor:    [3]float32{1, 1, 1},
		ambientStrength: 1,
		diffuseColor:    [3]float32{1, 1, 1},
		specularColor:   [3]float32{0, 0, 0},
		shininess:       1,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Default returns the neutral material pushed for drawables that carry no
// material tag: full-strength white ambient and diffuse, no specular
// highlight. Pushing it keeps every draw call's uniform bundle complete so
// material values never leak from one drawable into the next.
//
// Returns:
//   - Material: the neutral default material
func Default() Material {
	return NewMaterial()
}

func (m *materialImpl) Tag() string {
	return m.tag
}

func (m *materialImpl) AmbientColor() [3]float32 {
	return m.ambientColor
}

func (m *materialImpl) AmbientStrength() float32 {
	return m.ambientStrength
}

func (m *materialImpl) DiffuseColor() [3]float32 {
	return m.diffuseColor
}

func (m *materialImpl) SpecularColor() [3]float32 {
	return m.specularColor
}

func (m *materialImpl) Shininess() float32 {
	return m.shininess
}
