package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyph3d/scene"
	"github.com/gogpu/glyph3d/text"
)

type sceneTextOut struct {
	Text   string  `yaml:"text"`
	Font   string  `yaml:"font"`
	SDF    bool    `yaml:"sdf"`
	Glyphs int     `yaml:"glyphs"`
	Origin point   `yaml:"origin"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type sceneStripOut struct {
	Kind     string  `yaml:"kind"`
	Segments int     `yaml:"segments"`
	Points   []point `yaml:"points,omitempty"`
}

type statsOut struct {
	Glyphs    int `yaml:"glyphs"`
	TextVerts int `yaml:"text_vertices"`
	Lines     int `yaml:"lines"`
	Instances int `yaml:"instances"`
}

type sceneOut struct {
	Texts  []sceneTextOut  `yaml:"texts"`
	Strips []sceneStripOut `yaml:"strips"`
	Meshes map[string]int  `yaml:"meshes"`
	Grids  int             `yaml:"grids"`
	Stats  statsOut        `yaml:"stats"`
}

func newSceneCmd(e *env) *cobra.Command {
	var points bool
	cmd := &cobra.Command{
		Use:   "scene FILE",
		Short: "Evaluate a scene script (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if args[0] == "-" {
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			fonts := map[string]*text.Font{}
			if fonts[scene.DefaultFont], err = e.font(false); err != nil {
				return err
			}
			if fonts[scene.SDFFont], err = e.font(true); err != nil {
				return err
			}

			frame, err := scene.Evaluate(string(src), fonts)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), describeFrame(frame, points))
		},
	}
	cmd.Flags().BoolVar(&points, "points", false, "include strip points")
	return cmd
}

func describeFrame(frame *scene.Frame, points bool) sceneOut {
	out := sceneOut{
		Texts:  []sceneTextOut{},
		Strips: []sceneStripOut{},
		Meshes: map[string]int{},
		Grids:  len(frame.Grids),
	}
	for _, t := range frame.Texts {
		out.Texts = append(out.Texts, sceneTextOut{
			Text:   t.Text,
			Font:   t.FontName,
			SDF:    t.SDF,
			Glyphs: len(t.Placements),
			Origin: toPoint(t.Origin),
			Width:  t.Extent.Width,
			Height: t.Extent.Height,
		})
	}
	for i := range frame.Strips {
		s := &frame.Strips[i]
		so := sceneStripOut{Kind: s.Kind.String(), Segments: s.Segments()}
		if points {
			for _, p := range s.Points {
				so.Points = append(so.Points, toPoint(p))
			}
		}
		out.Strips = append(out.Strips, so)
	}
	for _, in := range frame.Instances {
		out.Meshes[in.Mesh.String()]++
	}
	st := frame.DrawList().Stats()
	out.Stats = statsOut{Glyphs: st.Glyphs, TextVerts: st.TextVerts, Lines: st.Lines, Instances: st.Instances}
	return out
}
