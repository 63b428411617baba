// Package glyph3d lays out SDF-font text and decorative curves in 3D space.
//
// # Overview
//
// glyph3d is the reusable core of a small 3D visualization demo: it turns
// text into textured glyph quads positioned on a plane, measures text
// blocks for centering, and samples cubic Bezier and uniform B-spline
// curves into line strips. Everything here is pure computation; the
// actual drawing is done by whatever GPU renderer consumes the output.
//
// # Packages
//
//   - glyph3d (this package): Vec3, curve sampling, shared logger
//   - text: font descriptors, codepoint decoding, Layout and Measure
//   - text/atlas: builds a text.Font and its atlas image from TrueType data
//   - render: vertex data, vertex layouts and WGSL shaders for the output
//   - scene: a small script language describing text and curve draws
//   - app: explicit demo state (camera, lights, font selection) per frame
//   - config: TOML configuration for the demo and the CLI
//
// # Quick Start
//
//	res, err := atlas.Load(goregular.TTF, atlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := text.Options{Size: 32, CharSpacing: 5}
//	ext := text.Measure(res.Font, "SPHERE", opts)
//	origin := glyph3d.V3(-ext.Width/2, -5, 22)
//	for p := range text.Layout(res.Font, "SPHERE", origin, opts) {
//	    verts = append(verts, render.GlyphQuad(p, tint, true)...)
//	}
//
//	for a, b := range glyph3d.Segments(glyph3d.Prepend(p1,
//	    glyph3d.SampleBezierCubic(p1, c2, c3, p4, 24))) {
//	    drawLine(a, b)
//	}
//
// # Coordinate System
//
// Text is laid out on the XZ plane: X grows along a line, Z grows from one
// line to the next, and Y is copied from the caller's origin. Glyph sizes
// are expressed in world units where one line pitch equals
// fontSize/baseSize.
//
// # Concurrency
//
// Fonts are immutable after construction, and Layout, Measure and the
// curve samplers keep no shared state, so they may be called from any
// number of goroutines.
package glyph3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
