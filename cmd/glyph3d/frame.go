package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/glyph3d/app"
	"github.com/gogpu/glyph3d/render"
)

type frameOut struct {
	Updates        int      `yaml:"updates"`
	Camera         point    `yaml:"camera"`
	LayoutFraction float32  `yaml:"layout_fraction"`
	Cycle          float32  `yaml:"cycle"`
	FPS            int      `yaml:"fps"`
	Stats          statsOut `yaml:"stats"`
	Bytes          struct {
		Text      int `yaml:"text"`
		Lines     int `yaml:"lines"`
		Instances int `yaml:"instances"`
		Uniforms  int `yaml:"uniforms"`
	} `yaml:"bytes"`
}

func newFrameCmd(e *env) *cobra.Command {
	var (
		updates  int
		layoutB  bool
		dynamic  bool
		bounds   bool
		fpsIndex int
	)
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Run the demo state headlessly and describe the resulting frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := e.font(false)
			if err != nil {
				return err
			}
			sdf, err := e.font(true)
			if err != nil {
				return err
			}
			st, err := app.New(e.cfg, app.Fonts{Default: def, SDF: sdf})
			if err != nil {
				return err
			}
			if layoutB {
				st.SetLayout(1)
			}
			st.SetDynamic(dynamic)
			st.SetBounds(bounds)
			if cmd.Flags().Changed("fps") {
				if err := st.SetFPSIndex(fpsIndex); err != nil {
					return err
				}
			}
			for range updates {
				st.Update()
			}

			dl := st.DrawList()
			snap := st.Snapshot()
			u := st.Uniforms(0)
			s := dl.Stats()

			out := frameOut{
				Updates:        updates,
				Camera:         toPoint(snap.Camera.Position),
				LayoutFraction: snap.LayoutFraction,
				Cycle:          snap.Cycle,
				FPS:            snap.FPS,
				Stats:          statsOut{Glyphs: s.Glyphs, TextVerts: s.TextVerts, Lines: s.Lines, Instances: s.Instances},
			}
			for _, b := range dl.Text {
				out.Bytes.Text += len(render.Encode(b.Vertices))
			}
			out.Bytes.Lines = len(render.Encode(dl.Lines))
			out.Bytes.Instances = len(render.EncodeInstances(dl.Instances))
			out.Bytes.Uniforms = len(u.Encode())
			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVarP(&updates, "updates", "n", 1, "number of updates to run")
	cmd.Flags().BoolVar(&layoutB, "layout-b", false, "animate towards layout B")
	cmd.Flags().BoolVar(&dynamic, "dynamic", false, "orbit the sphere")
	cmd.Flags().BoolVar(&bounds, "bounds", false, "draw glyph bounds")
	cmd.Flags().IntVar(&fpsIndex, "fps", 0, "frame rate choice index")
	return cmd
}
