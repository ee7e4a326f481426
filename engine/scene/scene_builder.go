package scene

import (
	"github.com/Carmen-Shannon/tableau-go/engine/light"
	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
)

// SceneBuilderOption is a functional option for configuring a sceneImpl
// when creating a new Scene.
type SceneBuilderOption func(*sceneImpl)

// WithDrawables appends drawables to the scene's render list. Order is
// preserved: drawables render in the order they are added.
//
// Parameters:
//   - drawables: the drawables to append
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithDrawables(drawables ...Drawable) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.drawables = append(s.drawables, drawables...)
	}
}

// WithTextureFile queues an image file for registration under the given tag
// during Prepare. Slot indices follow the order texture files are added.
//
// Parameters:
//   - path: the image file path
//   - tag: the tag to register the texture under
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithTextureFile(path string, tag string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.textureFiles = append(s.textureFiles, textureFile{path: path, tag: tag})
	}
}

// WithMaterial queues a material definition for the scene's registry.
//
// Parameters:
//   - m: the material to define during Prepare
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithMaterial(m material.Material) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.materialDefs = append(s.materialDefs, m)
	}
}

// WithLight adds a light source to the scene. The shader supports a fixed
// number of light sources; extras are ignored with a log message.
//
// Parameters:
//   - l: the light to add
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.lights = append(s.lights, l)
	}
}

// WithLighting toggles the lighting model. Defaults to enabled; with
// lighting disabled objects render with flat texture or color only.
//
// Parameters:
//   - enabled: whether lighting calculations run in the shader
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithLighting(enabled bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.lightingEnabled = enabled
	}
}

// WithMeshes overrides the mesh library. Mostly useful for supplying a
// library with custom tessellation settings.
//
// Parameters:
//   - m: the mesh library to use
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithMeshes(m mesh.Meshes) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.meshes = m
	}
}

// WithTextureRegistry overrides the texture registry.
//
// Parameters:
//   - r: the texture registry to use
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithTextureRegistry(r texture.Registry) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.textures = r
	}
}

// WithMaterialRegistry overrides the material registry.
//
// Parameters:
//   - r: the material registry to use
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithMaterialRegistry(r material.Registry) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.materials = r
	}
}

// WithDecodeWorkers sets the worker count for parallel image decoding
// during Prepare. Values below 1 are clamped to 1. Defaults to NumCPU-1.
//
// Parameters:
//   - workers: the number of decode workers
//
// Returns:
//   - SceneBuilderOption: the option to apply to the sceneImpl
func WithDecodeWorkers(workers int) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.decodeWorkers = max(workers, 1)
	}
}
