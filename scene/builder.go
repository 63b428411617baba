package scene

import (
	"image/color"
	"slices"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/render"
	"github.com/gogpu/glyph3d/text"
)

// TextStyle controls how Builder.Text lays out and draws a string.
type TextStyle struct {
	Options text.Options
	Color   color.RGBA

	// SDF selects the distance-field shader for the font atlas.
	SDF bool

	// Backface also draws the text from below.
	Backface bool

	// Bounds adds a wire box around every glyph.
	Bounds bool

	// Center shifts the origin left by half the measured width.
	Center bool
}

// Builder provides a fluent API for constructing frames.
//
// The builder keeps an offset that is added to every position passed to
// it. Offsets accumulate; Group restores the offset when its callback
// returns.
//
// Example:
//
//	frame := NewBuilder().
//	    Grid(20, 10).
//	    Translate(glyph3d.V3(0, 0, 22)).
//	    Sphere(glyph3d.Vec3{}, 2, LightGray).
//	    Text(font, "SPHERE", glyph3d.V3(0, -5, 0), style).
//	    Build()
type Builder struct {
	frame  *Frame
	offset glyph3d.Vec3
}

// NewBuilder creates a builder with an empty frame.
func NewBuilder() *Builder {
	return &Builder{frame: &Frame{}}
}

// ---------------------------------------------------------------------------
// Drawing Operations
// ---------------------------------------------------------------------------

// Text lays out s with font f at origin. The font name is recorded as
// given by TextNamed; Text leaves it empty.
func (b *Builder) Text(f *text.Font, s string, origin glyph3d.Vec3, style TextStyle) *Builder {
	return b.TextNamed("", f, s, origin, style)
}

// TextNamed is Text with a font name recorded in the TextDraw.
func (b *Builder) TextNamed(name string, f *text.Font, s string, origin glyph3d.Vec3, style TextStyle) *Builder {
	origin = origin.Add(b.offset)
	extent := text.Measure(f, s, style.Options)
	if style.Center {
		origin.X -= extent.Width / 2
	}
	b.frame.Texts = append(b.frame.Texts, TextDraw{
		Text:       s,
		FontName:   name,
		Font:       f,
		SDF:        style.SDF,
		Origin:     origin,
		Options:    style.Options,
		Color:      style.Color,
		Backface:   style.Backface,
		Bounds:     style.Bounds,
		Extent:     extent,
		Placements: slices.Collect(text.Layout(f, s, origin, style.Options)),
	})
	return b
}

// Bezier adds a cubic Bezier from p1 to p4 sampled into segments lines.
// segments below 1 draws nothing.
func (b *Builder) Bezier(p1, c2, c3, p4 glyph3d.Vec3, segments int, c color.RGBA) *Builder {
	if segments < 1 {
		return b
	}
	p1, c2, c3, p4 = p1.Add(b.offset), c2.Add(b.offset), c3.Add(b.offset), p4.Add(b.offset)
	pts := slices.Collect(glyph3d.Prepend(p1, glyph3d.SampleBezierCubic(p1, c2, c3, p4, segments)))
	b.frame.Strips = append(b.frame.Strips, Strip{Kind: StripBezier, Points: pts, Color: c})
	return b
}

// BSpline adds a uniform cubic B-spline through the control points.
// Fewer than four points produce an empty strip.
func (b *Builder) BSpline(points []glyph3d.Vec3, density int, c color.RGBA) *Builder {
	moved := make([]glyph3d.Vec3, len(points))
	for i, p := range points {
		moved[i] = p.Add(b.offset)
	}
	pts := slices.Collect(glyph3d.SampleBSplineChain(moved, density))
	b.frame.Strips = append(b.frame.Strips, Strip{Kind: StripBSpline, Points: pts, Color: c})
	return b
}

// Polyline adds a strip through points as given.
func (b *Builder) Polyline(points []glyph3d.Vec3, c color.RGBA) *Builder {
	pts := make([]glyph3d.Vec3, len(points))
	for i, p := range points {
		pts[i] = p.Add(b.offset)
	}
	b.frame.Strips = append(b.frame.Strips, Strip{Kind: StripPolyline, Points: pts, Color: c})
	return b
}

// Cube adds a box centered at center.
func (b *Builder) Cube(center, size glyph3d.Vec3, c color.RGBA) *Builder {
	b.frame.Instances = append(b.frame.Instances, render.Instance{
		Mesh:     render.MeshCube,
		Position: center.Add(b.offset),
		Size:     size,
		Color:    c,
	})
	return b
}

// Sphere adds a sphere of the given radius centered at center.
func (b *Builder) Sphere(center glyph3d.Vec3, radius float32, c color.RGBA) *Builder {
	d := 2 * radius
	b.frame.Instances = append(b.frame.Instances, render.Instance{
		Mesh:     render.MeshSphere,
		Position: center.Add(b.offset),
		Size:     glyph3d.V3(d, d, d),
		Color:    c,
	})
	return b
}

// Grid adds a reference grid. It is not affected by the offset.
func (b *Builder) Grid(slices int, spacing float32) *Builder {
	b.frame.Grids = append(b.frame.Grids, GridDraw{Slices: slices, Spacing: spacing})
	return b
}

// ---------------------------------------------------------------------------
// Offset Operations
// ---------------------------------------------------------------------------

// Translate moves the offset by d.
func (b *Builder) Translate(d glyph3d.Vec3) *Builder {
	b.offset = b.offset.Add(d)
	return b
}

// ResetTranslation clears the offset.
func (b *Builder) ResetTranslation() *Builder {
	b.offset = glyph3d.Vec3{}
	return b
}

// Group runs fn and then restores the offset that was current before.
func (b *Builder) Group(fn func(*Builder)) *Builder {
	saved := b.offset
	fn(b)
	b.offset = saved
	return b
}

// ---------------------------------------------------------------------------
// Build Operations
// ---------------------------------------------------------------------------

// Build returns the frame. The builder must not be used afterwards
// unless Reset is called.
func (b *Builder) Build() *Frame {
	return b.frame
}

// Reset starts a new empty frame and clears the offset.
func (b *Builder) Reset() *Builder {
	b.frame = &Frame{}
	b.offset = glyph3d.Vec3{}
	return b
}

// Offset returns the current offset.
func (b *Builder) Offset() glyph3d.Vec3 {
	return b.offset
}
