package shader

import (
	"fmt"
	"os"
)

// ShaderBuilderOption is a function that configures a shader instance during
// construction. Options that load from disk return an error if the file
// cannot be read.
type ShaderBuilderOption func(*shaderImpl) error

// WithVertexSource is an option builder that sets the vertex stage GLSL source.
//
// Parameters:
//   - source: the GLSL vertex shader source text
//
// Returns:
//   - ShaderBuilderOption: a function that applies the vertex source option to a shader
func WithVertexSource(source string) ShaderBuilderOption {
	return func(s *shaderImpl) error {
		s.vertexSource = source
		return nil
	}
}

// WithFragmentSource is an option builder that sets the fragment stage GLSL source.
//
// Parameters:
//   - source: the GLSL fragment shader source text
//
// Returns:
//   - ShaderBuilderOption: a function that applies the fragment source option to a shader
func WithFragmentSource(source string) ShaderBuilderOption {
	return func(s *shaderImpl) error {
		s.fragmentSource = source
		return nil
	}
}

// WithVertexFile is an option builder that loads the vertex stage GLSL source from a file.
//
// Parameters:
//   - path: path of the vertex shader file
//
// Returns:
//   - ShaderBuilderOption: a function that applies the vertex file option to a shader
func WithVertexFile(path string) ShaderBuilderOption {
	return func(s *shaderImpl) error {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read vertex shader %s: %w", path, err)
		}
		s.vertexSource = string(source)
		return nil
	}
}

// WithFragmentFile is an option builder that loads the fragment stage GLSL source from a file.
//
// Parameters:
//   - path: path of the fragment shader file
//
// Returns:
//   - ShaderBuilderOption: a function that applies the fragment file option to a shader
func WithFragmentFile(path string) ShaderBuilderOption {
	return func(s *shaderImpl) error {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read fragment shader %s: %w", path, err)
		}
		s.fragmentSource = string(source)
		return nil
	}
}
