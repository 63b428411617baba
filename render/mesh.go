package render

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/glyph3d"
)

// Mesh identifies a shared unit mesh drawn with per-instance transforms.
type Mesh int

const (
	// MeshCube is a unit cube centered on the origin.
	MeshCube Mesh = iota

	// MeshSphere is a unit-diameter UV sphere centered on the origin.
	MeshSphere
)

// String returns the mesh name.
func (m Mesh) String() string {
	switch m {
	case MeshCube:
		return "cube"
	case MeshSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// InstanceSize is the size of an encoded Instance in bytes.
const InstanceSize = 40

// Instance places one copy of a mesh: translated to Position, scaled by
// Size, tinted by Color.
type Instance struct {
	Mesh     Mesh
	Position glyph3d.Vec3
	Size     glyph3d.Vec3
	Color    color.RGBA
}

// EncodeInstances serializes instance data (position, size, color) as
// little-endian float32 values. The mesh kind is not encoded; group
// instances by mesh before uploading.
func EncodeInstances(insts []Instance) []byte {
	buf := make([]byte, 0, len(insts)*InstanceSize)
	for i := range insts {
		in := &insts[i]
		c := colorf(in.Color)
		buf = appendFloats(buf, in.Position.X, in.Position.Y, in.Position.Z)
		buf = appendFloats(buf, in.Size.X, in.Size.Y, in.Size.Z)
		buf = appendFloats(buf, c[:]...)
	}
	return buf
}

// cubeFaces lists each face normal with two in-plane axes ordered so that
// u × v = normal.
var cubeFaces = [6][3]glyph3d.Vec3{
	{{X: 1}, {Y: 1}, {Z: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {Z: 1}, {X: 1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {Y: 1}, {X: 1}},
}

// CubeMesh returns the 36 vertices of a unit cube centered on the origin,
// counter-clockwise front faces, white.
func CubeMesh() []Vertex {
	white := [4]float32{1, 1, 1, 1}
	out := make([]Vertex, 0, 36)
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		c := n.Scale(0.5)
		corner := func(su, sv float32) Vertex {
			p := c.Add(u.Scale(su * 0.5)).Add(v.Scale(sv * 0.5))
			return Vertex{Pos: vec3(p), Normal: vec3(n), UV: [2]float32{(su + 1) / 2, (sv + 1) / 2}, Color: white}
		}
		a, b, cc, d := corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1)
		out = append(out, a, b, cc, a, cc, d)
	}
	return out
}

// SphereMesh returns a UV sphere of diameter 1 as a triangle list.
// rings and slices are clamped to at least 3.
func SphereMesh(rings, slices int) []Vertex {
	rings, slices = max(rings, 3), max(slices, 3)
	white := [4]float32{1, 1, 1, 1}

	point := func(ring, slice int) Vertex {
		theta := math32.Pi * float32(ring) / float32(rings)
		phi := 2 * math32.Pi * float32(slice) / float32(slices)
		st, ct := math32.Sincos(theta)
		sp, cp := math32.Sincos(phi)
		n := glyph3d.Vec3{X: st * cp, Y: ct, Z: st * sp}
		return Vertex{
			Pos:    vec3(n.Scale(0.5)),
			Normal: vec3(n),
			UV:     [2]float32{float32(slice) / float32(slices), float32(ring) / float32(rings)},
			Color:  white,
		}
	}

	out := make([]Vertex, 0, rings*slices*6)
	for r := 0; r < rings; r++ {
		for s := 0; s < slices; s++ {
			a, b := point(r, s), point(r+1, s)
			c, d := point(r+1, s+1), point(r, s+1)
			out = append(out, a, d, c, a, c, b)
		}
	}
	return out
}
