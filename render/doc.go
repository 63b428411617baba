// Package render turns glyph placements, curves and scene objects into GPU
// ready data.
//
// The package prepares everything a WebGPU pipeline needs except the
// device itself: interleaved vertex data ([Vertex], [Encode]), vertex
// buffer layouts and primitive states (gputypes), per-frame uniforms
// ([SceneUniforms]) and SPIR-V compiled from the embedded WGSL shaders
// ([CompileShaders]). Creating buffers and pipelines is left to the
// caller's device.
//
// # Coordinate conventions
//
// Glyph quads lie in the XZ plane, facing +Y. Front faces wind
// counter-clockwise seen from above; the optional back face winds the
// other way and faces -Y. Matrices are column-major to match WGSL.
//
// # Example
//
//	var dl render.DrawList
//	dl.AddText(font, true, text.Layout(font, "SPHERE", origin, opts), color.RGBA{R: 255, A: 255}, false)
//	dl.AddLines(glyph3d.Segments(points), color.RGBA{G: 255, A: 255})
//	buf := render.Encode(dl.Text[0].Vertices)
package render
