package resources

import (
	"embed"
	"fmt"
)

// Name of the shader used for the demo quads.
const QuadShader = "shaders/quad.go"

//go:embed shaders
var shadersFS embed.FS

// Caches shader sources read from the embedded files. Not thread safe.
var sources = map[string][]byte{}

// Reads the Kage source at the given shader path (shaders/*), reusing it if previously read. Not thread safe.
func ShaderSource(path string) ([]byte, error) {
	if b, ok := sources[path]; ok {
		return b, nil
	}
	b, err := shadersFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	sources[path] = b
	return b, nil
}
