package app

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/render"
	"github.com/gogpu/glyph3d/scene"
	"github.com/gogpu/glyph3d/text"
)

// Scene dimensions.
const (
	LayoutCubes  = 36
	FloorSide    = 16
	FloorCubes   = FloorSide * FloorSide
	OrbitRadius  = 22
	SphereRadius = 2
	WireFirst    = -20
	WireLast     = 19
	GridSlices   = 20
	GridSpacing  = 10
)

// Frame builds the geometry of the current state.
func (s *State) Frame() *scene.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := scene.NewBuilder().Grid(GridSlices, GridSpacing)

	for i := range LayoutCubes {
		a := glyph3d.V3((float32(i)-13.5)*4, 0, 0)
		c := glyph3d.V3((float32(i/6)-2.5)*4, 0, (float32(i%6)-2.5)*4)
		b.Cube(a.Lerp(c, s.layoutFraction), glyph3d.V3(2, 2, 2), scene.LightGray)
	}

	half := float32(FloorSide) / 2
	for i := range FloorCubes {
		p := glyph3d.V3(float32(i/FloorSide)-half-0.5, -12, float32(i%FloorSide)-half-0.5)
		b.Cube(p, glyph3d.V3(0.5, 0.5, 0.5), scene.White)
	}

	sin, cos := math32.Sincos(s.cycle)
	sphere := glyph3d.V3(OrbitRadius*sin, 0, OrbitRadius*cos)
	b.Sphere(sphere, SphereRadius, scene.LightGray)

	// The label is centered on its unspaced width.
	label := s.cfg.Label
	mt := text.Measure(s.fonts.SDF, label.Text, text.Options{Size: label.Size})
	b.TextNamed(scene.SDFFont, s.fonts.SDF, label.Text,
		glyph3d.V3(sphere.X-mt.Width/2, -5, sphere.Z),
		scene.TextStyle{
			Options:  text.Options{Size: label.Size, CharSpacing: label.Spacing},
			Color:    s.labelColor,
			SDF:      true,
			Backface: true,
			Bounds:   s.bounds,
		})

	sin3, sin4 := math32.Sin(3*s.cycle), math32.Sin(4*s.cycle)
	for i := WireFirst; i <= WireLast; i++ {
		x := 2 * float32(i)
		p0 := glyph3d.V3(x, 4*sin3+4, -16*sin)
		end := glyph3d.V3(x, -4*sin4+4, 16*sin)

		b.Sphere(p0, 0.4, scene.LightGray)
		b.Cube(end, glyph3d.V3(0.4, 0.4, 0.4), scene.LightGray)

		p1 := p0
		p1.Y -= 15
		p2 := sphere
		p2.Y -= 15
		b.Bezier(p0, p1, p2, sphere, s.cfg.Curves.BezierSegments, scene.LightGray)
	}

	caption := s.cfg.Caption
	f, name := s.fonts.Default, scene.DefaultFont
	if s.useSDF {
		f, name = s.fonts.SDF, scene.SDFFont
	}
	style := scene.TextStyle{
		Options: text.Options{Size: s.fontSize, CharSpacing: caption.Spacing},
		Color:   s.captionColor,
		SDF:     s.useSDF,
		Bounds:  s.bounds,
		Center:  true,
	}
	b.TextNamed(name, f, caption.Text, glyph3d.V3(0, 16, -24), style)

	return b.Build()
}

// DrawList builds the draw list of the current state.
func (s *State) DrawList() *render.DrawList {
	return s.Frame().DrawList()
}

// Uniforms returns the per-frame shader values for a surface with the
// given aspect ratio. A non-positive aspect uses the window size.
func (s *State) Uniforms(aspect float32) render.SceneUniforms {
	s.mu.Lock()
	defer s.mu.Unlock()
	if aspect <= 0 {
		aspect = float32(s.width) / float32(s.height)
	}
	u := render.SceneUniforms{
		ViewProj: s.camera.ViewProjection(aspect),
		ViewPos:  s.camera.Position,
		Lights:   s.lights,
	}
	if s.ambient {
		u.Ambient = [4]float32{1, 1, 1, 1}
	}
	return u
}
