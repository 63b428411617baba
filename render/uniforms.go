package render

import (
	"image/color"

	"github.com/gogpu/glyph3d"
)

// MaxLights is the number of point lights in SceneUniforms.
const MaxLights = 4

// UniformSize is the size of encoded SceneUniforms in bytes.
const UniformSize = 64 + 16 + 16 + MaxLights*32

// Light is a point light.
type Light struct {
	Position glyph3d.Vec3
	Color    color.RGBA
	Enabled  bool
}

// SceneUniforms holds the per-frame values shared by every shader.
type SceneUniforms struct {
	ViewProj Mat4
	ViewPos  glyph3d.Vec3
	Ambient  [4]float32
	Lights   [MaxLights]Light
}

// Encode serializes u in the std140-compatible layout of the Scene
// struct in scene.wgsl.
func (u *SceneUniforms) Encode() []byte {
	buf := make([]byte, 0, UniformSize)
	buf = appendFloats(buf, u.ViewProj[:]...)
	buf = appendFloats(buf, u.ViewPos.X, u.ViewPos.Y, u.ViewPos.Z, 1)
	buf = appendFloats(buf, u.Ambient[:]...)
	for i := range u.Lights {
		l := &u.Lights[i]
		var on float32
		if l.Enabled {
			on = 1
		}
		c := colorf(l.Color)
		buf = appendFloats(buf, l.Position.X, l.Position.Y, l.Position.Z, on)
		buf = appendFloats(buf, c[:]...)
	}
	return buf
}
