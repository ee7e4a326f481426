package scene

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/tableau-go/common"
	"github.com/Carmen-Shannon/tableau-go/engine/camera"
	"github.com/Carmen-Shannon/tableau-go/engine/light"
	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
)

// maxLightSources is the size of the shader's lightSources uniform array.
const maxLightSources = 4

// textureFile pairs an image path with the tag it registers under.
type textureFile struct {
	path string
	tag  string
}

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	name string

	cam  camera.Camera
	shdr shader.Shader

	meshes    mesh.Meshes
	textures  texture.Registry
	materials material.Registry
	state     *RenderState

	textureFiles    []textureFile
	materialDefs    []material.Material
	lights          []light.Light
	lightingEnabled bool

	drawables []Drawable

	// decodePool parallelizes image decoding during Prepare. GPU uploads
	// and all uniform pushes stay on the caller's thread, in order.
	decodePool    worker.DynamicWorkerPool
	decodeWorkers int

	prepared bool
}

// Scene defines the interface for a static scene: a fixed ordered list of
// drawables rendered with the textures, materials, and lights configured at
// build time.
//
// Prepare runs once on the render thread before the first frame; Render
// runs every frame and walks the drawable list in order, pushing each
// drawable's complete uniform bundle before its draw call. The shader sink
// has no per-object scoping, so all pushes for drawable N finish before the
// draw for N, and before any push for N+1 — the scene enforces this by
// strict sequential invocation, never by batching.
type Scene interface {
	// Name retrieves the scene identifier.
	//
	// Returns:
	//   - string: the name of the scene
	Name() string

	// Prepare loads and registers the configured textures (decode runs on
	// the worker pool, uploads in registration order), defines materials,
	// builds the mesh buffers used by the drawable list, and pushes the
	// light uniforms. Must be called on the thread owning the GL context,
	// after the shader program is linked. Individual asset failures are
	// logged and skipped; only preparation of an already prepared scene
	// is an error-free no-op.
	//
	// Returns:
	//   - error: currently always nil; reserved for unrecoverable setup failures
	Prepare() error

	// Render pushes the camera matrices and draws every drawable in list
	// order. Must be called on the render thread with the GL context current.
	Render()

	// Camera retrieves the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// AddDrawable appends a drawable to the end of the render list.
	//
	// Parameters:
	//   - d: the drawable to append
	AddDrawable(d Drawable)

	// Textures retrieves the scene's texture registry.
	//
	// Returns:
	//   - texture.Registry: the texture registry
	Textures() texture.Registry

	// Materials retrieves the scene's material registry.
	//
	// Returns:
	//   - material.Registry: the material registry
	Materials() material.Registry

	// Release frees all GPU resources held by the scene: textures, mesh
	// buffers, and the shader program. Called once at shutdown.
	Release()
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with the given camera and shader. Both are
// required and NewScene panics if either is nil. Registries, the mesh
// library, and the drawable list are configured through options; defaults
// are empty registries backed by the GL uploader.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera supplying view/projection matrices (must not be nil)
//   - shdr: the shader program the scene binds state into (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, shdr shader.Shader, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if shdr == nil {
		panic("scene: NewScene requires a non-nil Shader")
	}

	s := &sceneImpl{
		name:            name,
		cam:             cam,
		shdr:            shdr,
		lightingEnabled: true,
		decodeWorkers:   max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}

	if s.meshes == nil {
		s.meshes = mesh.NewMeshes()
	}
	if s.textures == nil {
		s.textures = texture.NewRegistry()
	}
	if s.materials == nil {
		s.materials = material.NewRegistry()
	}
	s.state = NewRenderState(s.shdr, s.textures, s.materials)

	// Initialize the decode pool after options so WithDecodeWorkers can
	// override the default. The queue comfortably holds a full slot set.
	s.decodePool = worker.NewDynamicWorkerPool(s.decodeWorkers, 64, 1*time.Second)

	return s
}

func (s *sceneImpl) Name() string {
	return s.name
}

func (s *sceneImpl) Prepare() error {
	if s.prepared {
		return nil
	}

	s.loadTextures()

	for _, m := range s.materialDefs {
		if err := s.materials.Define(m); err != nil {
			log.Printf("[Scene] material skipped: %v", err)
		}
	}

	s.prepareMeshes()

	s.shdr.Use()
	s.pushLights()

	s.prepared = true
	return nil
}

// loadTextures decodes every configured image on the worker pool, then
// uploads the results sequentially in declaration order so slot indices
// match the order textures were configured in. Failed assets are logged
// and skipped; their tags stay unregistered and resolve to the sentinel.
func (s *sceneImpl) loadTextures() {
	type decoded struct {
		pixels   []byte
		width    int
		height   int
		channels int
		err      error
	}
	results := make([]decoded, len(s.textureFiles))

	var wg sync.WaitGroup
	for i, tf := range s.textureFiles {
		wg.Add(1)
		idx, file := i, tf
		s.decodePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				asset := &common.ImageAsset{Path: file.path, FlipVertical: true}
				pixels, width, height, channels, err := asset.Decode()
				results[idx] = decoded{pixels: pixels, width: width, height: height, channels: channels, err: err}
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, tf := range s.textureFiles {
		res := results[i]
		if res.err != nil {
			log.Printf("[Scene] texture %q skipped: %v", tf.tag, res.err)
			continue
		}
		if err := s.textures.RegisterDecoded(tf.tag, res.pixels, res.width, res.height, res.channels); err != nil {
			log.Printf("[Scene] texture %q skipped: %v", tf.tag, err)
			continue
		}
		log.Printf("[Scene] texture %q registered from %s (slot %d, %dx%d/%d channels)",
			tf.tag, tf.path, s.textures.Slot(tf.tag), res.width, res.height, res.channels)
	}

	s.textures.BindAll()
}

// prepareMeshes builds buffers for exactly the primitive kinds the drawable
// list references.
func (s *sceneImpl) prepareMeshes() {
	seen := make(map[mesh.Kind]struct{}, 4)
	kinds := make([]mesh.Kind, 0, 4)
	for _, d := range s.drawables {
		if _, ok := seen[d.Mesh]; ok {
			continue
		}
		seen[d.Mesh] = struct{}{}
		kinds = append(kinds, d.Mesh)
	}
	s.meshes.Prepare(kinds...)
}

// pushLights uploads the lighting toggle and the lightSources array. Light
// values are opaque to the scene; it forwards them and computes nothing.
func (s *sceneImpl) pushLights() {
	lights := s.lights
	if len(lights) > maxLightSources {
		log.Printf("[Scene] %d lights configured, shader supports %d; extra lights ignored",
			len(lights), maxLightSources)
		lights = lights[:maxLightSources]
	}

	s.shdr.SetBoolValue(uniformUseLighting, s.lightingEnabled && len(lights) > 0)
	s.shdr.SetIntValue("lightCount", int32(len(lights)))

	for i, l := range lights {
		pos := l.Position()
		ambient := l.AmbientColor()
		diffuse := l.DiffuseColor()
		specular := l.SpecularColor()
		s.shdr.SetVec3Value(lightSourceUniform(i, "position"), pos[0], pos[1], pos[2])
		s.shdr.SetVec3Value(lightSourceUniform(i, "ambientColor"), ambient[0], ambient[1], ambient[2])
		s.shdr.SetVec3Value(lightSourceUniform(i, "diffuseColor"), diffuse[0], diffuse[1], diffuse[2])
		s.shdr.SetVec3Value(lightSourceUniform(i, "specularColor"), specular[0], specular[1], specular[2])
		s.shdr.SetFloatValue(lightSourceUniform(i, "focalStrength"), l.FocalStrength())
		s.shdr.SetFloatValue(lightSourceUniform(i, "specularIntensity"), l.SpecularIntensity())
	}
}

func (s *sceneImpl) Render() {
	s.shdr.Use()
	s.shdr.SetMat4Value(uniformView, s.cam.ViewMatrix())
	s.shdr.SetMat4Value(uniformProjection, s.cam.ProjectionMatrix())
	eye := s.cam.Position()
	s.shdr.SetVec3Value(uniformViewPosition, eye.X(), eye.Y(), eye.Z())

	for _, d := range s.drawables {
		s.state.ApplyTransform(d.Transform)

		if d.TextureTag != "" {
			s.state.ApplyTexture(d.TextureTag)
		} else {
			s.state.ApplySolidColor(d.Color[0], d.Color[1], d.Color[2], d.Color[3])
		}

		s.state.ApplyMaterial(d.MaterialTag)

		s.state.ApplyUVScale(common.Coalesce(d.UVScale[0], 1), common.Coalesce(d.UVScale[1], 1))

		s.meshes.Draw(d.Mesh)
	}
}

func (s *sceneImpl) Camera() camera.Camera {
	return s.cam
}

func (s *sceneImpl) AddDrawable(d Drawable) {
	s.drawables = append(s.drawables, d)
}

func (s *sceneImpl) Textures() texture.Registry {
	return s.textures
}

func (s *sceneImpl) Materials() material.Registry {
	return s.materials
}

func (s *sceneImpl) Release() {
	s.textures.ReleaseAll()
	s.meshes.Release()
	s.shdr.Release()
}
