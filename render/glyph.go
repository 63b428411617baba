package render

import (
	"image/color"
	"iter"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/text"
)

// BoundsThickness is the Y extent of the letter boundary boxes drawn by
// GlyphBounds.
const BoundsThickness = 0.25

var (
	up   = [3]float32{0, 1, 0}
	down = [3]float32{0, -1, 0}
)

// GlyphQuad returns the triangles of one glyph quad: six vertices for the
// front face, twelve when backface is set.
func GlyphQuad(p text.Placement, tint color.RGBA, backface bool) []Vertex {
	n := 6
	if backface {
		n = 12
	}
	return appendGlyphQuad(make([]Vertex, 0, n), p, colorf(tint), backface)
}

func appendGlyphQuad(dst []Vertex, p text.Placement, c [4]float32, backface bool) []Vertex {
	x0, y, z0 := p.Position.X, p.Position.Y, p.Position.Z
	x1, z1 := x0+p.Width, z0+p.Height

	tl := Vertex{Pos: [3]float32{x0, y, z0}, UV: [2]float32{p.U0, p.V0}, Color: c}
	bl := Vertex{Pos: [3]float32{x0, y, z1}, UV: [2]float32{p.U0, p.V1}, Color: c}
	br := Vertex{Pos: [3]float32{x1, y, z1}, UV: [2]float32{p.U1, p.V1}, Color: c}
	tr := Vertex{Pos: [3]float32{x1, y, z0}, UV: [2]float32{p.U1, p.V0}, Color: c}

	tl.Normal, bl.Normal, br.Normal, tr.Normal = up, up, up, up
	dst = append(dst, tl, bl, br, tl, br, tr)

	if backface {
		tl.Normal, bl.Normal, br.Normal, tr.Normal = down, down, down, down
		dst = append(dst, tl, tr, br, tl, br, bl)
	}
	return dst
}

// TextVertices collects the quads of every placement in seq.
func TextVertices(seq iter.Seq[text.Placement], tint color.RGBA, backface bool) []Vertex {
	c := colorf(tint)
	var out []Vertex
	for p := range seq {
		out = appendGlyphQuad(out, p, c, backface)
	}
	return out
}

// GlyphBounds returns the line-list wire box around a placement, centered
// on the quad and BoundsThickness tall.
func GlyphBounds(p text.Placement, tint color.RGBA) []Vertex {
	size := glyph3d.Vec3{X: p.Width, Y: BoundsThickness, Z: p.Height}
	return WireBox(p.Center(), size, tint)
}
