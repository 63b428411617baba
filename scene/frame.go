package scene

import (
	"image/color"
	"slices"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/render"
	"github.com/gogpu/glyph3d/text"
)

// StripKind tells how the points of a Strip were produced.
type StripKind int

const (
	// StripBezier is a sampled cubic Bezier segment, start point included.
	StripBezier StripKind = iota
	// StripBSpline is a sampled uniform cubic B-spline chain.
	StripBSpline
	// StripPolyline is a plain list of points.
	StripPolyline
)

// String returns the statement keyword for k.
func (k StripKind) String() string {
	switch k {
	case StripBezier:
		return "bezier"
	case StripBSpline:
		return "bspline"
	case StripPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// TextDraw is one laid-out string.
type TextDraw struct {
	Text     string
	FontName string
	Font     *text.Font
	SDF      bool
	Origin   glyph3d.Vec3
	Options  text.Options
	Color    color.RGBA
	Backface bool
	Bounds   bool

	// Extent is the measured size of Text with Options.
	Extent text.Extent

	Placements []text.Placement
}

// Strip is a connected run of line segments through Points.
type Strip struct {
	Kind   StripKind
	Points []glyph3d.Vec3
	Color  color.RGBA
}

// Segments returns the number of line segments in the strip.
func (s *Strip) Segments() int {
	return max(len(s.Points)-1, 0)
}

// GridDraw is a reference grid in the XZ plane.
type GridDraw struct {
	Slices  int
	Spacing float32
}

// Frame is the evaluated content of one frame.
type Frame struct {
	Texts     []TextDraw
	Strips    []Strip
	Instances []render.Instance
	Grids     []GridDraw
}

// IsEmpty reports whether the frame draws nothing.
func (f *Frame) IsEmpty() bool {
	return len(f.Texts) == 0 && len(f.Strips) == 0 && len(f.Instances) == 0 && len(f.Grids) == 0
}

// Glyphs returns the number of glyph quads in the frame, not counting
// back faces.
func (f *Frame) Glyphs() int {
	n := 0
	for i := range f.Texts {
		n += len(f.Texts[i].Placements)
	}
	return n
}

// AppendTo adds the frame geometry to dl.
func (f *Frame) AppendTo(dl *render.DrawList) {
	for i := range f.Grids {
		dl.AddLineVertices(render.Grid(f.Grids[i].Slices, f.Grids[i].Spacing))
	}
	for i := range f.Instances {
		dl.AddInstance(f.Instances[i])
	}
	for i := range f.Strips {
		s := &f.Strips[i]
		dl.AddLines(glyph3d.Segments(slices.Values(s.Points)), s.Color)
	}
	for i := range f.Texts {
		t := &f.Texts[i]
		dl.AddText(t.Font, t.SDF, slices.Values(t.Placements), t.Color, t.Backface)
		if t.Bounds {
			dl.AddGlyphBounds(slices.Values(t.Placements), t.Color)
		}
	}
}

// DrawList converts the frame into a new render.DrawList.
func (f *Frame) DrawList() *render.DrawList {
	dl := &render.DrawList{}
	f.AppendTo(dl)
	return dl
}
