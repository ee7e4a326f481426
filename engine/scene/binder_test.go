package scene

import (
	"testing"

	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
	"github.com/Carmen-Shannon/tableau-go/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// push is one recorded uniform write: the uniform name and its flattened
// component values (bools as 0/1, matrices as 16 floats).
type push struct {
	name string
	vals []float32
}

// recordingSink captures every uniform write in order.
type recordingSink struct {
	pushes []push
}

func (r *recordingSink) record(name string, vals ...float32) {
	r.pushes = append(r.pushes, push{name: name, vals: vals})
}

func (r *recordingSink) SetMat4Value(name string, value mgl32.Mat4) { r.record(name, value[:]...) }
func (r *recordingSink) SetVec4Value(name string, x, y, z, w float32) {
	r.record(name, x, y, z, w)
}
func (r *recordingSink) SetVec3Value(name string, x, y, z float32) { r.record(name, x, y, z) }
func (r *recordingSink) SetVec2Value(name string, x, y float32)    { r.record(name, x, y) }
func (r *recordingSink) SetFloatValue(name string, value float32)  { r.record(name, value) }
func (r *recordingSink) SetIntValue(name string, value int32)      { r.record(name, float32(value)) }
func (r *recordingSink) SetBoolValue(name string, value bool) {
	if value {
		r.record(name, 1)
	} else {
		r.record(name, 0)
	}
}
func (r *recordingSink) SetSampler2DValue(name string, slot int32) { r.record(name, float32(slot)) }

// last returns the most recent push for a uniform name.
func (r *recordingSink) last(name string) (push, bool) {
	for i := len(r.pushes) - 1; i >= 0; i-- {
		if r.pushes[i].name == name {
			return r.pushes[i], true
		}
	}
	return push{}, false
}

// names returns the recorded uniform names in push order.
func (r *recordingSink) names() []string {
	out := make([]string, len(r.pushes))
	for i, p := range r.pushes {
		out[i] = p.name
	}
	return out
}

// nopUploader satisfies texture.Uploader without a GL context, handing out
// sequential handles.
type nopUploader struct {
	next uint32
}

func (u *nopUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	u.next++
	return u.next, nil
}
func (u *nopUploader) Bind(unit int, handle uint32) {}
func (u *nopUploader) Release(handles []uint32)     {}

func newTestState() (*RenderState, *recordingSink, texture.Registry, material.Registry) {
	sink := &recordingSink{}
	textures := texture.NewRegistry(texture.WithUploader(&nopUploader{}))
	materials := material.NewRegistry()
	return NewRenderState(sink, textures, materials), sink, textures, materials
}

func TestNewRenderStateRequiresDependencies(t *testing.T) {
	sink := &recordingSink{}
	textures := texture.NewRegistry(texture.WithUploader(&nopUploader{}))
	materials := material.NewRegistry()

	for name, fn := range map[string]func(){
		"nil sink":      func() { NewRenderState(nil, textures, materials) },
		"nil textures":  func() { NewRenderState(sink, nil, materials) },
		"nil materials": func() { NewRenderState(sink, textures, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestApplyTransformPushesComposedModel(t *testing.T) {
	state, sink, _, _ := newTestState()

	spec := transform.Spec{
		Scale:       mgl32.Vec3{2, 1, 1},
		Translation: mgl32.Vec3{5, 0, 0},
	}
	state.ApplyTransform(spec)

	p, ok := sink.last(uniformModel)
	if !ok {
		t.Fatal("model matrix was not pushed")
	}
	want := spec.Compose()
	for i := range want {
		if p.vals[i] != want[i] {
			t.Fatalf("model[%d] = %f, want %f", i, p.vals[i], want[i])
		}
	}
}

func TestApplySolidColorDisablesTexturing(t *testing.T) {
	state, sink, _, _ := newTestState()

	state.ApplySolidColor(0.2, 0.4, 0.6, 1)

	if p, ok := sink.last(uniformUseTexture); !ok || p.vals[0] != 0 {
		t.Errorf("bUseTexture push = %v (found %v), want 0", p.vals, ok)
	}
	p, ok := sink.last(uniformObjectColor)
	if !ok {
		t.Fatal("objectColor was not pushed")
	}
	want := []float32{0.2, 0.4, 0.6, 1}
	for i, w := range want {
		if p.vals[i] != w {
			t.Errorf("objectColor[%d] = %f, want %f", i, p.vals[i], w)
		}
	}
}

func TestApplyTextureResolvesSlot(t *testing.T) {
	state, sink, textures, _ := newTestState()

	pixels := make([]byte, 2*2*4)
	if err := textures.RegisterDecoded("first", pixels, 2, 2, 4); err != nil {
		t.Fatalf("RegisterDecoded: %v", err)
	}
	if err := textures.RegisterDecoded("second", pixels, 2, 2, 4); err != nil {
		t.Fatalf("RegisterDecoded: %v", err)
	}

	state.ApplyTexture("second")

	if p, ok := sink.last(uniformUseTexture); !ok || p.vals[0] != 1 {
		t.Errorf("bUseTexture push = %v (found %v), want 1", p.vals, ok)
	}
	if p, ok := sink.last(uniformObjectTexture); !ok || p.vals[0] != 1 {
		t.Errorf("objectTexture push = %v (found %v), want slot 1", p.vals, ok)
	}
}

func TestApplyTextureUnknownTagPushesSentinel(t *testing.T) {
	state, sink, _, _ := newTestState()

	state.ApplyTexture("missing")
	state.ApplyTexture("missing")

	p, ok := sink.last(uniformObjectTexture)
	if !ok || p.vals[0] != float32(texture.SlotNotFound) {
		t.Errorf("objectTexture push = %v (found %v), want sentinel %d", p.vals, ok, texture.SlotNotFound)
	}
	// Texturing stays enabled; the sentinel degrades the draw, not the frame.
	if p, ok := sink.last(uniformUseTexture); !ok || p.vals[0] != 1 {
		t.Errorf("bUseTexture push = %v (found %v), want 1", p.vals, ok)
	}
	if len(state.warned) != 1 {
		t.Errorf("warned tags = %d, want the tag reported once", len(state.warned))
	}
}

func TestApplyMaterialMissPushesDefault(t *testing.T) {
	state, sink, _, _ := newTestState()

	state.ApplyMaterial("unknown")

	def := material.Default()
	ambient, diffuse, specular := def.AmbientColor(), def.DiffuseColor(), def.SpecularColor()
	checks := []struct {
		name string
		want []float32
	}{
		{"material.ambientColor", ambient[:]},
		{"material.ambientStrength", []float32{def.AmbientStrength()}},
		{"material.diffuseColor", diffuse[:]},
		{"material.specularColor", specular[:]},
		{"material.shininess", []float32{def.Shininess()}},
	}
	for _, c := range checks {
		p, ok := sink.last(c.name)
		if !ok {
			t.Fatalf("%s was not pushed", c.name)
		}
		for i, w := range c.want {
			if p.vals[i] != w {
				t.Errorf("%s[%d] = %f, want %f", c.name, i, p.vals[i], w)
			}
		}
	}
}

func TestApplyMaterialPushesDefinedValues(t *testing.T) {
	state, sink, _, materials := newTestState()

	wood := material.NewMaterial(
		material.WithTag("Wood"),
		material.WithDiffuseColor(0.3, 0.2, 0.1),
		material.WithShininess(25),
	)
	if err := materials.Define(wood); err != nil {
		t.Fatalf("Define: %v", err)
	}

	state.ApplyMaterial("Wood")

	if p, ok := sink.last("material.shininess"); !ok || p.vals[0] != 25 {
		t.Errorf("material.shininess push = %v (found %v), want 25", p.vals, ok)
	}
	p, ok := sink.last("material.diffuseColor")
	if !ok {
		t.Fatal("material.diffuseColor was not pushed")
	}
	want := []float32{0.3, 0.2, 0.1}
	for i, w := range want {
		if p.vals[i] != w {
			t.Errorf("material.diffuseColor[%d] = %f, want %f", i, p.vals[i], w)
		}
	}
}

func TestApplyUVScale(t *testing.T) {
	state, sink, _, _ := newTestState()

	state.ApplyUVScale(8, 8)

	p, ok := sink.last(uniformUVScale)
	if !ok || p.vals[0] != 8 || p.vals[1] != 8 {
		t.Errorf("UVscale push = %v (found %v), want (8, 8)", p.vals, ok)
	}
}

func TestLightSourceUniformNames(t *testing.T) {
	if got := lightSourceUniform(0, "position"); got != "lightSources[0].position" {
		t.Errorf("lightSourceUniform(0, position) = %q", got)
	}
	if got := lightSourceUniform(2, "focalStrength"); got != "lightSources[2].focalStrength" {
		t.Errorf("lightSourceUniform(2, focalStrength) = %q", got)
	}
}
