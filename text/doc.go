// Package text lays out and measures text as flat glyph quads in 3D space.
//
// The package works on a pre-built font atlas described by [Font]: a base
// pixel size, an inter-glyph padding, an ordered glyph table and the size
// of the atlas texture. It never touches pixels. Building the atlas is the
// job of the atlas subpackage; drawing the quads is the job of the render
// package.
//
// # Pipeline
//
//   - [DecodeCodepoint]: bytes to codepoints, malformed input becomes '?'
//   - [Font.GlyphIndex]: codepoint to glyph, unknown codepoints use the '?' glyph
//   - [Layout]: codepoints to a lazy sequence of [Placement] records
//   - [Measure]: codepoints to the [Extent] of the whole block
//
// Text is laid out in the XZ plane: x grows to the right along a line and
// z grows downwards from line to line. The y coordinate of every placement
// is copied from the origin.
//
// # Example usage
//
//	opts := text.Options{Size: 32, CharSpacing: 5}
//	ext := text.Measure(font, "SPHERE", opts)
//	origin := glyph3d.V3(-ext.Width/2, -5, 0)
//	for p := range text.Layout(font, "SPHERE", origin, opts) {
//	    verts = append(verts, render.GlyphQuad(p, color, false)...)
//	}
//
// Every function in this package is total: empty strings, malformed
// UTF-8, unknown codepoints and nil fonts all degrade to well-defined
// fallback values instead of errors.
package text
