package text

import (
	"iter"

	"github.com/gogpu/glyph3d"
)

// Placement is one positioned glyph quad.
type Placement struct {
	// Codepoint is the decoded character.
	Codepoint rune

	// Index is the resolved glyph index in the font.
	Index int

	// Position is the corner of the quad nearest to the line start and
	// line top. Y is copied from the layout origin.
	Position glyph3d.Vec3

	// Width and Height are the quad extents along X and Z.
	Width, Height float32

	// U0, V0 and U1, V1 are the near and far corners of the glyph
	// rectangle in normalized atlas coordinates.
	U0, V0, U1, V1 float32
}

// Center returns the center of the quad.
func (p Placement) Center() glyph3d.Vec3 {
	return glyph3d.Vec3{
		X: p.Position.X + p.Width/2,
		Y: p.Position.Y,
		Z: p.Position.Z + p.Height/2,
	}
}

// Layout places every visible character of s, starting at origin.
//
// A newline moves the cursor to the start of the next line, spaces and
// tabs only advance it, every other codepoint yields one Placement and
// then advances. The sequence is lazy and may be stopped early. A nil or
// empty font yields nothing.
func Layout(f *Font, s string, origin glyph3d.Vec3, opts Options) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		if !f.usable() {
			return
		}
		scale := opts.scale(f)
		lineHeight := scale + f.px(opts.LineSpacing, scale)

		var x, z float32
		for i := 0; i < len(s); {
			r, size := DecodeCodepointString(s, i)
			i += size

			if r == '\n' {
				z += lineHeight
				x = 0
				continue
			}

			idx := f.GlyphIndex(r)
			g := &f.glyphs[idx]
			if r != ' ' && r != '\t' {
				cursor := glyph3d.Vec3{X: origin.X + x, Y: origin.Y, Z: origin.Z + z}
				if !yield(f.place(r, idx, cursor, scale)) {
					return
				}
			}
			x += f.advance(g, opts.CharSpacing, scale)
		}
	}
}

// place builds the Placement for glyph idx drawn at the cursor position.
func (f *Font) place(r rune, idx int, cursor glyph3d.Vec3, scale float32) Placement {
	g := &f.glyphs[idx]
	pad := float32(f.padding)

	p := Placement{
		Codepoint: r,
		Index:     idx,
		Position: glyph3d.Vec3{
			X: cursor.X + f.px(float32(g.OffsetX)-pad, scale),
			Y: cursor.Y,
			Z: cursor.Z + f.px(float32(g.OffsetY)-pad, scale),
		},
		Width:  f.px(g.Rect.Width+pad, scale),
		Height: f.px(g.Rect.Height+pad, scale),
	}

	// Source rectangle grown by the padding on every side.
	sx, sy := g.Rect.X-pad, g.Rect.Y-pad
	sw, sh := g.Rect.Width+2*pad, g.Rect.Height+2*pad
	if f.atlasW > 0 && f.atlasH > 0 {
		w, h := float32(f.atlasW), float32(f.atlasH)
		p.U0, p.V0 = sx/w, sy/h
		p.U1, p.V1 = (sx+sw)/w, (sy+sh)/h
	}
	return p
}
