package scene

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/text"
)

// Font names with special meaning in scripts.
const (
	// DefaultFont is used by text statements without a font option.
	DefaultFont = "default"

	// SDFFont is drawn with the distance-field shader unless the
	// statement selects alpha.
	SDFFont = "sdf"
)

// Defaults for omitted options.
const (
	DefaultSegments = 24
	DefaultDensity  = 24
)

// Evaluate parses src and builds the frame it describes. fonts maps the
// names used by text statements to fonts. Syntax errors are returned
// wrapped; statements that cannot be evaluated return an *EvalError.
func Evaluate(src string, fonts map[string]*text.Font) (*Frame, error) {
	script, err := ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return EvaluateScript(script, fonts)
}

// EvaluateScript builds the frame for an already parsed script.
func EvaluateScript(script *Script, fonts map[string]*text.Font) (*Frame, error) {
	b := NewBuilder()
	for _, st := range script.Statements {
		if err := evalStatement(b, st, fonts); err != nil {
			return nil, err
		}
	}
	frame := b.Build()
	glyph3d.Logger().Debug("scene: evaluated",
		slog.Int("statements", len(script.Statements)),
		slog.Int("glyphs", frame.Glyphs()),
		slog.Int("strips", len(frame.Strips)))
	return frame, nil
}

func evalStatement(b *Builder, st *Statement, fonts map[string]*text.Font) error {
	fail := func(format string, args ...any) error {
		return &EvalError{
			Line:      st.Pos.Line,
			Column:    st.Pos.Column,
			Statement: st.Kind(),
			Reason:    fmt.Sprintf(format, args...),
		}
	}

	switch {
	case st.Text != nil:
		return evalText(b, st.Text, fonts, fail)

	case st.Bezier != nil:
		s := st.Bezier
		lo, err := lineOptions(s.Options, fail)
		if err != nil {
			return err
		}
		if lo.segments < 1 {
			return fail("segments must be at least 1, got %d", lo.segments)
		}
		b.Bezier(s.P1.vec3(), s.C2.vec3(), s.C3.vec3(), s.P4.vec3(), lo.segments, lo.color)

	case st.BSpline != nil:
		s := st.BSpline
		if len(s.Points) < 4 {
			return fail("needs at least 4 control points, got %d", len(s.Points))
		}
		lo, err := lineOptions(s.Options, fail)
		if err != nil {
			return err
		}
		b.BSpline(vectors(s.Points), lo.density, lo.color)

	case st.Polyline != nil:
		lo, err := lineOptions(st.Polyline.Options, fail)
		if err != nil {
			return err
		}
		b.Polyline(vectors(st.Polyline.Points), lo.color)

	case st.Cube != nil:
		mo, err := meshOptions(st.Cube.Options, fail)
		if err != nil {
			return err
		}
		if mo.radius != nil {
			return fail("radius is not a cube option")
		}
		b.Cube(st.Cube.At.vec3(), mo.size, mo.color)

	case st.Sphere != nil:
		mo, err := meshOptions(st.Sphere.Options, fail)
		if err != nil {
			return err
		}
		if mo.sized {
			return fail("size is not a sphere option")
		}
		radius := float32(1)
		if mo.radius != nil {
			radius = *mo.radius
		}
		if radius <= 0 {
			return fail("radius must be positive, got %g", radius)
		}
		b.Sphere(st.Sphere.At.vec3(), radius, mo.color)

	case st.Grid != nil:
		g := st.Grid
		if g.Slices < 1 {
			return fail("slices must be at least 1, got %d", g.Slices)
		}
		spacing := float32(1)
		if g.Spacing != nil {
			spacing = float32(*g.Spacing)
		}
		if spacing <= 0 {
			return fail("spacing must be positive, got %g", spacing)
		}
		b.Grid(g.Slices, spacing)
	}
	return nil
}

type failFunc func(format string, args ...any) error

func evalText(b *Builder, s *TextStmt, fonts map[string]*text.Font, fail failFunc) error {
	name := DefaultFont
	for _, o := range s.Options {
		if o.Font != nil {
			name = *o.Font
		}
	}
	f, ok := fonts[name]
	if !ok || f == nil {
		return fail("unknown font %q", name)
	}

	style := TextStyle{
		Options: text.DefaultOptions(float32(f.BaseSize())),
		Color:   Gray,
		SDF:     name == SDFFont,
	}
	for _, o := range s.Options {
		switch {
		case o.Size != nil:
			style.Options.Size = float32(*o.Size)
		case o.Spacing != nil:
			style.Options.CharSpacing = float32(*o.Spacing)
		case o.LineSpacing != nil:
			style.Options.LineSpacing = float32(*o.LineSpacing)
		case o.Color != nil:
			c, err := ParseColor(o.Color.String())
			if err != nil {
				return fail("%v", err)
			}
			style.Color = c
		case o.SDF:
			style.SDF = true
		case o.Alpha:
			style.SDF = false
		case o.Backface:
			style.Backface = true
		case o.Bounds:
			style.Bounds = true
		case o.Center:
			style.Center = true
		}
	}
	if style.Options.Size <= 0 {
		return fail("size must be positive, got %g", style.Options.Size)
	}

	var origin glyph3d.Vec3
	if s.At != nil {
		origin = s.At.vec3()
	}
	b.TextNamed(name, f, s.Text, origin, style)
	return nil
}

type lineOpts struct {
	segments int
	density  int
	color    color.RGBA
}

func lineOptions(opts []*LineOption, fail failFunc) (lineOpts, error) {
	lo := lineOpts{segments: DefaultSegments, density: DefaultDensity, color: LightGray}
	for _, o := range opts {
		switch {
		case o.Segments != nil:
			lo.segments = *o.Segments
		case o.Density != nil:
			lo.density = *o.Density
		case o.Color != nil:
			c, err := ParseColor(o.Color.String())
			if err != nil {
				return lo, fail("%v", err)
			}
			lo.color = c
		}
	}
	return lo, nil
}

type meshOpts struct {
	size   glyph3d.Vec3
	sized  bool
	radius *float32
	color  color.RGBA
}

func meshOptions(opts []*MeshOption, fail failFunc) (meshOpts, error) {
	mo := meshOpts{size: glyph3d.V3(1, 1, 1), color: LightGray}
	for _, o := range opts {
		switch {
		case o.Size != nil:
			mo.sized = true
			if o.Size.Vec != nil {
				mo.size = o.Size.Vec.vec3()
			} else if o.Size.Scalar != nil {
				s := float32(*o.Size.Scalar)
				mo.size = glyph3d.V3(s, s, s)
			}
			if mo.size.X <= 0 || mo.size.Y <= 0 || mo.size.Z <= 0 {
				return mo, fail("size must be positive")
			}
		case o.Radius != nil:
			r := float32(*o.Radius)
			mo.radius = &r
		case o.Color != nil:
			c, err := ParseColor(o.Color.String())
			if err != nil {
				return mo, fail("%v", err)
			}
			mo.color = c
		}
	}
	return mo, nil
}

func (v *Vector) vec3() glyph3d.Vec3 {
	return glyph3d.V3(float32(v.X), float32(v.Y), float32(v.Z))
}

func vectors(vs []*Vector) []glyph3d.Vec3 {
	out := make([]glyph3d.Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.vec3()
	}
	return out
}
