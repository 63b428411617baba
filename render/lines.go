package render

import (
	"image/color"
	"iter"

	"github.com/gogpu/glyph3d"
)

// LineList converts segment endpoints into line-list vertices, two per
// segment.
func LineList(segments iter.Seq2[glyph3d.Vec3, glyph3d.Vec3], tint color.RGBA) []Vertex {
	return appendLines(nil, segments, colorf(tint))
}

func appendLines(dst []Vertex, segments iter.Seq2[glyph3d.Vec3, glyph3d.Vec3], c [4]float32) []Vertex {
	for a, b := range segments {
		dst = append(dst,
			Vertex{Pos: vec3(a), Color: c},
			Vertex{Pos: vec3(b), Color: c})
	}
	return dst
}

// boxEdges indexes the corners of a box, bit 0 = +X, bit 1 = +Y, bit 2 = +Z.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// WireBox returns the 12 edges of an axis-aligned box as a line list.
func WireBox(center, size glyph3d.Vec3, tint color.RGBA) []Vertex {
	h := size.Scale(0.5)
	var corners [8]glyph3d.Vec3
	for i := range corners {
		d := glyph3d.Vec3{X: -h.X, Y: -h.Y, Z: -h.Z}
		if i&1 != 0 {
			d.X = h.X
		}
		if i&2 != 0 {
			d.Y = h.Y
		}
		if i&4 != 0 {
			d.Z = h.Z
		}
		corners[i] = center.Add(d)
	}

	c := colorf(tint)
	out := make([]Vertex, 0, 2*len(boxEdges))
	for _, e := range boxEdges {
		out = append(out,
			Vertex{Pos: vec3(corners[e[0]]), Color: c},
			Vertex{Pos: vec3(corners[e[1]]), Color: c})
	}
	return out
}

// Grid returns a line-list grid in the XZ plane centered on the origin,
// slices cells wide with the given spacing. The two center lines are
// darker than the rest.
func Grid(slices int, spacing float32) []Vertex {
	half := slices / 2
	extent := float32(half) * spacing
	center := colorf(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	other := colorf(color.RGBA{R: 191, G: 191, B: 191, A: 255})

	out := make([]Vertex, 0, 4*(2*half+1))
	for i := -half; i <= half; i++ {
		c := other
		if i == 0 {
			c = center
		}
		p := float32(i) * spacing
		out = append(out,
			Vertex{Pos: [3]float32{p, 0, -extent}, Color: c},
			Vertex{Pos: [3]float32{p, 0, extent}, Color: c},
			Vertex{Pos: [3]float32{-extent, 0, p}, Color: c},
			Vertex{Pos: [3]float32{extent, 0, p}, Color: c})
	}
	return out
}
