package render

import (
	"image/color"
	"iter"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/text"
)

// TextBatch is a run of glyph quads sharing one font atlas.
type TextBatch struct {
	Font     *text.Font
	SDF      bool
	Glyphs   int
	Vertices []Vertex
}

// DrawList collects one frame worth of geometry, grouped by pipeline.
// The zero value is ready to use.
type DrawList struct {
	Text      []TextBatch
	Lines     []Vertex
	Instances []Instance
}

// Stats summarizes a DrawList.
type Stats struct {
	Glyphs    int
	TextVerts int
	Lines     int
	Instances int
}

// AddText appends the quads of every placement in seq and returns the
// number of glyphs added. Consecutive calls with the same font and mode
// share a batch.
func (d *DrawList) AddText(f *text.Font, sdf bool, seq iter.Seq[text.Placement], tint color.RGBA, backface bool) int {
	var b *TextBatch
	if n := len(d.Text); n > 0 && d.Text[n-1].Font == f && d.Text[n-1].SDF == sdf {
		b = &d.Text[n-1]
	} else {
		d.Text = append(d.Text, TextBatch{Font: f, SDF: sdf})
		b = &d.Text[len(d.Text)-1]
	}

	c := colorf(tint)
	count := 0
	for p := range seq {
		b.Vertices = appendGlyphQuad(b.Vertices, p, c, backface)
		count++
	}
	b.Glyphs += count
	return count
}

// AddGlyphBounds appends the wire boxes of every placement in seq.
func (d *DrawList) AddGlyphBounds(seq iter.Seq[text.Placement], tint color.RGBA) {
	for p := range seq {
		d.Lines = append(d.Lines, GlyphBounds(p, tint)...)
	}
}

// AddLines appends one line per segment.
func (d *DrawList) AddLines(segments iter.Seq2[glyph3d.Vec3, glyph3d.Vec3], tint color.RGBA) {
	d.Lines = appendLines(d.Lines, segments, colorf(tint))
}

// AddLineVertices appends pre-built line-list vertices.
func (d *DrawList) AddLineVertices(v []Vertex) {
	d.Lines = append(d.Lines, v...)
}

// AddInstance appends one mesh instance.
func (d *DrawList) AddInstance(in Instance) {
	d.Instances = append(d.Instances, in)
}

// InstancesOf returns the instances of mesh m in insertion order.
func (d *DrawList) InstancesOf(m Mesh) []Instance {
	var out []Instance
	for _, in := range d.Instances {
		if in.Mesh == m {
			out = append(out, in)
		}
	}
	return out
}

// Reset empties the list, keeping allocated storage.
func (d *DrawList) Reset() {
	d.Text = d.Text[:0]
	d.Lines = d.Lines[:0]
	d.Instances = d.Instances[:0]
}

// Stats counts the contents of the list.
func (d *DrawList) Stats() Stats {
	s := Stats{Lines: len(d.Lines) / 2, Instances: len(d.Instances)}
	for _, b := range d.Text {
		s.TextVerts += len(b.Vertices)
		s.Glyphs += b.Glyphs
	}
	return s
}
