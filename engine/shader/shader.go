package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformSink is the write-only named-uniform surface of a shader program.
//
// Callers push a complete, self-consistent set of values before every draw
// call; the sink retains no per-object scoping and is never read back, so
// whatever state is live when a draw is issued is what renders. Dotted names
// ("material.shininess") address struct and array members the same way GLSL
// declares them.
type UniformSink interface {
	// SetMat4Value pushes a 4x4 matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the matrix value
	SetMat4Value(name string, value mgl32.Mat4)

	// SetVec4Value pushes a 4-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - x, y, z, w: the vector components
	SetVec4Value(name string, x, y, z, w float32)

	// SetVec3Value pushes a 3-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - x, y, z: the vector components
	SetVec3Value(name string, x, y, z float32)

	// SetVec2Value pushes a 2-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - x, y: the vector components
	SetVec2Value(name string, x, y float32)

	// SetFloatValue pushes a scalar float uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the scalar value
	SetFloatValue(name string, value float32)

	// SetIntValue pushes an integer uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the integer value
	SetIntValue(name string, value int32)

	// SetBoolValue pushes a boolean uniform (as 0 or 1).
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the boolean value
	SetBoolValue(name string, value bool)

	// SetSampler2DValue pushes a sampler uniform selecting a texture unit.
	// Sentinel slot values (negative) are pushed as-is; the GL driver treats
	// them as an unbound sampler, which renders as a missing texture rather
	// than failing.
	//
	// Parameters:
	//   - name: the uniform name
	//   - slot: the texture unit index
	SetSampler2DValue(name string, slot int32)
}

// shaderImpl is the implementation of the Shader interface.
type shaderImpl struct {
	vertexSource   string
	fragmentSource string

	program   uint32
	locations map[string]int32
}

// Shader defines the interface for a compiled and linked GLSL program that
// exposes its uniforms through the UniformSink surface.
type Shader interface {
	UniformSink

	// Use makes this program the active one for subsequent uniform pushes
	// and draw calls.
	Use()

	// Handle retrieves the GL program object name.
	//
	// Returns:
	//   - uint32: the program handle
	Handle() uint32

	// Release deletes the GL program object.
	Release()
}

var _ Shader = &shaderImpl{}

// NewShader compiles and links a GLSL program configured with the provided
// options. At minimum a vertex and a fragment source must be supplied, via
// string or file options. Requires a current GL context on the calling thread.
//
// Parameters:
//   - options: variadic list of ShaderBuilderOption functions to configure the shader
//
// Returns:
//   - Shader: the compiled program
//   - error: error if sources are missing or compilation/linking fails
func NewShader(options ...ShaderBuilderOption) (Shader, error) {
	s := &shaderImpl{
		locations: make(map[string]int32),
	}
	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.vertexSource == "" || s.fragmentSource == "" {
		return nil, fmt.Errorf("shader requires both a vertex and a fragment source")
	}

	vertex, err := compileStage(s.vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileStage(s.fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link shader program: %s", infoLog)
	}

	s.program = program
	return s, nil
}

// compileStage compiles a single GLSL stage and returns its object name.
func compileStage(source string, stage uint32, label string) (uint32, error) {
	handle := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile %s shader: %s", label, infoLog)
	}
	return handle, nil
}

func (s *shaderImpl) Use() {
	gl.UseProgram(s.program)
}

func (s *shaderImpl) Handle() uint32 {
	return s.program
}

func (s *shaderImpl) Release() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
	s.locations = make(map[string]int32)
}

// location resolves and caches the uniform location for a name. Unknown
// names resolve to -1, which GL silently ignores on upload; this mirrors
// the sink's degrade-don't-crash contract.
func (s *shaderImpl) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *shaderImpl) SetMat4Value(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}

func (s *shaderImpl) SetVec4Value(name string, x, y, z, w float32) {
	gl.Uniform4f(s.location(name), x, y, z, w)
}

func (s *shaderImpl) SetVec3Value(name string, x, y, z float32) {
	gl.Uniform3f(s.location(name), x, y, z)
}

func (s *shaderImpl) SetVec2Value(name string, x, y float32) {
	gl.Uniform2f(s.location(name), x, y)
}

func (s *shaderImpl) SetFloatValue(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *shaderImpl) SetIntValue(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *shaderImpl) SetBoolValue(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

func (s *shaderImpl) SetSampler2DValue(name string, slot int32) {
	gl.Uniform1i(s.location(name), slot)
}
