package scene

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
	"github.com/Carmen-Shannon/tableau-go/engine/transform"
)

// Uniform names consumed by the scene shaders. The binder addresses the
// shader exclusively through these; the shader never reports state back.
const (
	uniformModel         = "model"
	uniformView          = "view"
	uniformProjection    = "projection"
	uniformViewPosition  = "viewPosition"
	uniformObjectColor   = "objectColor"
	uniformUseTexture    = "bUseTexture"
	uniformObjectTexture = "objectTexture"
	uniformUVScale       = "UVscale"
	uniformUseLighting   = "bUseLighting"
)

// RenderState is the per-draw uniform binder: an explicit state object
// threaded through every draw call rather than an ambient global.
//
// The shader sink has no per-object scoping and no read-back, so the Apply
// methods must be invoked in a strict sequence per drawable — transform,
// then texture or color, then material, then UV scale — and every drawable
// must push a complete bundle. A material lookup miss pushes the neutral
// default material so values from the previous draw never leak forward.
type RenderState struct {
	sink      shader.UniformSink
	textures  texture.Registry
	materials material.Registry

	// texture tags already reported as unresolved, to keep the per-frame
	// log quiet while still surfacing the configuration error once
	warned map[string]struct{}
}

// NewRenderState creates a render-state binder writing to the given sink
// and resolving tags against the given registries. All three are required.
//
// Parameters:
//   - sink: the shader uniform sink to write to (must not be nil)
//   - textures: the texture registry used to resolve texture tags (must not be nil)
//   - materials: the material registry used to resolve material tags (must not be nil)
//
// Returns:
//   - *RenderState: the newly created binder
func NewRenderState(sink shader.UniformSink, textures texture.Registry, materials material.Registry) *RenderState {
	if sink == nil {
		panic("scene: NewRenderState requires a non-nil uniform sink")
	}
	if textures == nil {
		panic("scene: NewRenderState requires a non-nil texture registry")
	}
	if materials == nil {
		panic("scene: NewRenderState requires a non-nil material registry")
	}
	return &RenderState{
		sink:      sink,
		textures:  textures,
		materials: materials,
		warned:    make(map[string]struct{}),
	}
}

// ApplyTransform composes the transform spec and pushes the model matrix.
// Always the first push of a drawable's sequence.
//
// Parameters:
//   - spec: the transform spec to compose
func (rs *RenderState) ApplyTransform(spec transform.Spec) {
	rs.sink.SetMat4Value(uniformModel, spec.Compose())
}

// ApplySolidColor disables texturing and pushes a flat color for the next draw.
//
// Parameters:
//   - r, g, b, a: the color components
func (rs *RenderState) ApplySolidColor(r, g, b, a float32) {
	rs.sink.SetBoolValue(uniformUseTexture, false)
	rs.sink.SetVec4Value(uniformObjectColor, r, g, b, a)
}

// ApplyTexture enables texturing and pushes the sampler slot resolved from
// the texture registry. An unregistered tag resolves to the -1 sentinel,
// which is pushed as-is and logged once: the draw degrades to a missing
// texture instead of failing.
//
// Parameters:
//   - tag: the texture tag to resolve
func (rs *RenderState) ApplyTexture(tag string) {
	slot := rs.textures.Slot(tag)
	if slot == texture.SlotNotFound {
		if _, seen := rs.warned[tag]; !seen {
			rs.warned[tag] = struct{}{}
			log.Printf("[Scene] texture tag %q is not registered; drawables using it render untextured", tag)
		}
	}
	rs.sink.SetBoolValue(uniformUseTexture, true)
	rs.sink.SetSampler2DValue(uniformObjectTexture, int32(slot))
}

// ApplyMaterial resolves the tag and pushes the five material uniforms. An
// empty tag, an unknown tag, or an empty registry all push the neutral
// default material — every draw carries a complete material bundle so
// nothing persists from the previous drawable.
//
// Parameters:
//   - tag: the material tag to resolve (empty for the default material)
func (rs *RenderState) ApplyMaterial(tag string) {
	m, ok := rs.materials.Find(tag)
	if !ok {
		m = material.Default()
	}

	ambient := m.AmbientColor()
	diffuse := m.DiffuseColor()
	specular := m.SpecularColor()
	rs.sink.SetVec3Value("material.ambientColor", ambient[0], ambient[1], ambient[2])
	rs.sink.SetFloatValue("material.ambientStrength", m.AmbientStrength())
	rs.sink.SetVec3Value("material.diffuseColor", diffuse[0], diffuse[1], diffuse[2])
	rs.sink.SetVec3Value("material.specularColor", specular[0], specular[1], specular[2])
	rs.sink.SetFloatValue("material.shininess", m.Shininess())
}

// ApplyUVScale pushes the texture coordinate tiling factors.
//
// Parameters:
//   - u, v: the UV scale factors
func (rs *RenderState) ApplyUVScale(u, v float32) {
	rs.sink.SetVec2Value(uniformUVScale, u, v)
}

// lightSourceUniform builds the dotted uniform name of one lightSources
// array member, e.g. lightSources[0].position.
func lightSourceUniform(index int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", index, field)
}
