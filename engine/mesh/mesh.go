package mesh

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Kind identifies one of the primitive mesh shapes the library can build.
type Kind int

const (
	// KindPlane is a unit plane in the XZ plane, spanning -1..1, facing +Y.
	KindPlane Kind = iota

	// KindBox is a unit cube centered at the origin.
	KindBox

	// KindCylinder is a cylinder of radius 1 with its base at the origin,
	// extending to y=1.
	KindCylinder

	// KindTorus is a torus around the Z axis with ring radius 1.
	KindTorus
)

// String returns the human-readable name of the kind.
//
// Returns:
//   - string: the kind name
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// meshBuffer holds the GL objects of one prepared primitive.
type meshBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// glMeshes is the implementation of the Meshes interface.
type glMeshes struct {
	cylinderSegments     int
	torusRadialSegments  int
	torusTubularSegments int
	torusTubeRadius      float32

	buffers map[Kind]*meshBuffer
}

// Meshes defines the interface for the primitive mesh library.
//
// Each kind is prepared at most once (buffer construction is shared no
// matter how many drawables reference the shape) and drawn any number of
// times. Draw issues the GL draw call using whatever uniform state is
// currently live; it pushes no state of its own.
type Meshes interface {
	// Prepare builds the vertex/index buffers for the given kinds.
	// Preparing an already prepared kind is a no-op.
	//
	// Parameters:
	//   - kinds: the primitive kinds to prepare
	Prepare(kinds ...Kind)

	// PreparePlane builds the plane buffers. Equivalent to Prepare(KindPlane).
	PreparePlane()

	// PrepareBox builds the box buffers. Equivalent to Prepare(KindBox).
	PrepareBox()

	// PrepareCylinder builds the cylinder buffers. Equivalent to Prepare(KindCylinder).
	PrepareCylinder()

	// PrepareTorus builds the torus buffers. Equivalent to Prepare(KindTorus).
	PrepareTorus()

	// Draw issues the indexed draw call for a prepared kind. Drawing an
	// unprepared kind logs and renders nothing.
	//
	// Parameters:
	//   - kind: the primitive kind to draw
	Draw(kind Kind)

	// Release deletes all GL buffers built by Prepare.
	Release()
}

var _ Meshes = &glMeshes{}

// NewMeshes creates a primitive mesh library configured with the provided
// options. Buffer construction is deferred to Prepare, which requires a
// current GL context on the calling thread.
//
// Parameters:
//   - options: variadic list of MeshesBuilderOption functions to configure the library
//
// Returns:
//   - Meshes: the newly created mesh library
func NewMeshes(options ...MeshesBuilderOption) Meshes {
	m := &glMeshes{
		cylinderSegments:     36,
		torusRadialSegments:  36,
		torusTubularSegments: 18,
		torusTubeRadius:      0.25,
		buffers:              make(map[Kind]*meshBuffer),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *glMeshes) Prepare(kinds ...Kind) {
	for _, kind := range kinds {
		if _, done := m.buffers[kind]; done {
			continue
		}

		var vertices []float32
		var indices []uint32
		switch kind {
		case KindPlane:
			vertices, indices = planeGeometry()
		case KindBox:
			vertices, indices = boxGeometry()
		case KindCylinder:
			vertices, indices = cylinderGeometry(m.cylinderSegments)
		case KindTorus:
			vertices, indices = torusGeometry(m.torusRadialSegments, m.torusTubularSegments, m.torusTubeRadius)
		default:
			log.Printf("[Mesh] unknown mesh kind %d ignored", kind)
			continue
		}

		m.buffers[kind] = uploadMesh(vertices, indices)
	}
}

func (m *glMeshes) PreparePlane()    { m.Prepare(KindPlane) }
func (m *glMeshes) PrepareBox()      { m.Prepare(KindBox) }
func (m *glMeshes) PrepareCylinder() { m.Prepare(KindCylinder) }
func (m *glMeshes) PrepareTorus()    { m.Prepare(KindTorus) }

func (m *glMeshes) Draw(kind Kind) {
	buf, ok := m.buffers[kind]
	if !ok {
		log.Printf("[Mesh] draw of unprepared %s mesh skipped", kind)
		return
	}
	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (m *glMeshes) Release() {
	for kind, buf := range m.buffers {
		gl.DeleteBuffers(1, &buf.ebo)
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteVertexArrays(1, &buf.vao)
		delete(m.buffers, kind)
	}
}

// uploadMesh creates the VAO/VBO/EBO triplet for interleaved
// position/normal/UV vertex data.
func uploadMesh(vertices []float32, indices []uint32) *meshBuffer {
	buf := &meshBuffer{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return buf
}
