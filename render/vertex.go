package render

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/gogpu/glyph3d"
)

// VertexSize is the size of an encoded Vertex in bytes.
const VertexSize = 48

// Vertex is the interleaved vertex format shared by text, line and mesh
// pipelines.
type Vertex struct {
	Pos    [3]float32
	Normal [3]float32
	UV     [2]float32
	Color  [4]float32
}

// Position returns Pos as a vector.
func (v Vertex) Position() glyph3d.Vec3 {
	return glyph3d.Vec3{X: v.Pos[0], Y: v.Pos[1], Z: v.Pos[2]}
}

func vec3(v glyph3d.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// colorf converts c to normalized floats.
func colorf(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Encode serializes vertices as little-endian float32 values in field
// order, ready for a vertex buffer upload.
func Encode(verts []Vertex) []byte {
	buf := make([]byte, 0, len(verts)*VertexSize)
	for i := range verts {
		v := &verts[i]
		buf = appendFloats(buf, v.Pos[:]...)
		buf = appendFloats(buf, v.Normal[:]...)
		buf = appendFloats(buf, v.UV[:]...)
		buf = appendFloats(buf, v.Color[:]...)
	}
	return buf
}

func appendFloats(buf []byte, fs ...float32) []byte {
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
