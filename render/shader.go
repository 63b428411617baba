package render

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/naga"

	"github.com/gogpu/glyph3d"
)

// Embedded WGSL shader sources. scene.wgsl declares the shared uniform
// block and is prepended to every other source.

//go:embed shaders/scene.wgsl
var sceneShaderSource string

//go:embed shaders/text.wgsl
var textShaderSource string

//go:embed shaders/line.wgsl
var lineShaderSource string

//go:embed shaders/mesh.wgsl
var meshShaderSource string

// Shader entry points.
const (
	EntryVertex    = "vs_main"
	EntryFragment  = "fs_main"
	EntryTextAlpha = "fs_alpha"
	EntryTextSDF   = "fs_sdf"
)

// Shaders holds SPIR-V words for every pipeline.
type Shaders struct {
	Text []uint32
	Line []uint32
	Mesh []uint32
}

// ShaderSource returns the full WGSL source of the named shader ("text",
// "line" or "mesh").
func ShaderSource(name string) (string, error) {
	var body string
	switch name {
	case "text":
		body = textShaderSource
	case "line":
		body = lineShaderSource
	case "mesh":
		body = meshShaderSource
	default:
		return "", fmt.Errorf("render: unknown shader %q", name)
	}
	return sceneShaderSource + "\n" + body, nil
}

var (
	shadersOnce sync.Once
	shaders     *Shaders
	shadersErr  error
)

// CompileShaders compiles the embedded shaders to SPIR-V. The work is
// done once; later calls return the same result.
func CompileShaders() (*Shaders, error) {
	shadersOnce.Do(func() {
		shaders, shadersErr = compileAll()
	})
	return shaders, shadersErr
}

func compileAll() (*Shaders, error) {
	var s Shaders
	for _, item := range []struct {
		name string
		dst  *[]uint32
	}{
		{"text", &s.Text},
		{"line", &s.Line},
		{"mesh", &s.Mesh},
	} {
		src, err := ShaderSource(item.name)
		if err != nil {
			return nil, err
		}
		words, err := compileSPIRV(src)
		if err != nil {
			return nil, fmt.Errorf("render: %s shader: %w", item.name, err)
		}
		glyph3d.Logger().Debug("render: compiled shader",
			slog.String("name", item.name),
			slog.Int("words", len(words)))
		*item.dst = words
	}
	return &s, nil
}

// compileSPIRV compiles WGSL source to SPIR-V little-endian words.
func compileSPIRV(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("spir-v size %d is not a multiple of 4", len(spirvBytes))
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
