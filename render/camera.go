package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/glyph3d"
)

// Mat4 is a column-major 4x4 matrix, the layout WGSL expects for
// mat4x4<f32>.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// Mul returns m·n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	return r
}

// Transform applies m to the point v and performs the perspective divide.
func (m Mat4) Transform(v glyph3d.Vec3) glyph3d.Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		x, y, z = x/w, y/w, z/w
	}
	return glyph3d.Vec3{X: x, Y: y, Z: z}
}

// Perspective returns a right-handed projection with depth mapped to
// [0, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far * nf, -1,
		0, 0, near * far * nf, 0,
	}
}

// LookAt returns a right-handed view matrix.
func LookAt(eye, target, up glyph3d.Vec3) Mat4 {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// Camera is a perspective camera.
type Camera struct {
	Position glyph3d.Vec3
	Target   glyph3d.Vec3
	Up       glyph3d.Vec3
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

// DefaultCamera returns the camera used by the demo scene: 45° field of
// view, looking at the origin from (0, 20, 60).
func DefaultCamera() Camera {
	return Camera{
		Position: glyph3d.V3(0, 20, 60),
		Target:   glyph3d.V3(0, 0, 0),
		Up:       glyph3d.V3(0, 1, 0),
		FovY:     45,
		Near:     0.01,
		Far:      1000,
	}
}

// ViewProjection returns projection·view for the given aspect ratio.
func (c Camera) ViewProjection(aspect float32) Mat4 {
	proj := Perspective(c.FovY*math32.Pi/180, aspect, c.Near, c.Far)
	return proj.Mul(LookAt(c.Position, c.Target, c.Up))
}
