package scene

import (
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/transform"
)

// Drawable is one scene entry: a primitive mesh kind, its placement, and
// the texture-or-color and material choices pushed before its draw call.
// Drawables are plain data; the scene consumes them in list order.
type Drawable struct {
	// Mesh selects which prepared primitive is drawn.
	Mesh mesh.Kind

	// Transform is the placement composed into the model matrix.
	Transform transform.Spec

	// TextureTag selects a registered texture. When empty, Color is pushed
	// as a flat color instead and texturing is disabled for this draw.
	TextureTag string

	// Color is the flat RGBA color used when TextureTag is empty.
	Color [4]float32

	// MaterialTag selects a defined material. When empty or unknown, the
	// neutral default material is pushed.
	MaterialTag string

	// UVScale is the texture tiling factor; zero components default to 1.
	UVScale [2]float32
}
