package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/text"
)

type textFlags struct {
	size        float32
	spacing     float32
	lineSpacing float32
	sdf         bool
	file        string
	charset     string
}

func (f *textFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&f.size, "size", 0, "font size (default the atlas base size)")
	cmd.Flags().Float32Var(&f.spacing, "spacing", 0, "extra space between characters, in base-size units")
	cmd.Flags().Float32Var(&f.lineSpacing, "line-spacing", 0, "extra space between lines, in base-size units")
	cmd.Flags().BoolVar(&f.sdf, "sdf", false, "use the distance field atlas")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read the text from a file")
	cmd.Flags().StringVar(&f.charset, "charset", "", "encoding of --file (default from config, UTF-8)")
}

func (f *textFlags) options(font *text.Font) text.Options {
	size := f.size
	if size <= 0 {
		size = float32(font.BaseSize())
	}
	return text.Options{Size: size, CharSpacing: f.spacing, LineSpacing: f.lineSpacing}
}

type extentOut struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func newMeasureCmd(e *env) *cobra.Command {
	var tf textFlags
	cmd := &cobra.Command{
		Use:   "measure [TEXT]",
		Short: "Print the width and depth of text laid out in 3D",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.readText(args, tf.file, tf.charset)
			if err != nil {
				return err
			}
			font, err := e.font(tf.sdf)
			if err != nil {
				return err
			}
			ext := text.Measure(font, s, tf.options(font))
			return writeYAML(cmd.OutOrStdout(), extentOut{Width: ext.Width, Height: ext.Height})
		},
	}
	tf.register(cmd)
	return cmd
}

type placementOut struct {
	Char     string     `yaml:"char"`
	Glyph    int        `yaml:"glyph"`
	Position point      `yaml:"position"`
	Width    float32    `yaml:"width"`
	Height   float32    `yaml:"height"`
	UV       [4]float32 `yaml:"uv,flow"`
}

func newLayoutCmd(e *env) *cobra.Command {
	var (
		tf     textFlags
		origin string
	)
	cmd := &cobra.Command{
		Use:   "layout [TEXT]",
		Short: "Print the glyph quads of text laid out in 3D",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.readText(args, tf.file, tf.charset)
			if err != nil {
				return err
			}
			var at glyph3d.Vec3
			if origin != "" {
				if at, err = parseVec(origin); err != nil {
					return err
				}
			}
			font, err := e.font(tf.sdf)
			if err != nil {
				return err
			}
			out := []placementOut{}
			for p := range text.Layout(font, s, at, tf.options(font)) {
				out = append(out, placementOut{
					Char:     string(p.Codepoint),
					Glyph:    p.Index,
					Position: toPoint(p.Position),
					Width:    p.Width,
					Height:   p.Height,
					UV:       [4]float32{p.U0, p.V0, p.U1, p.V1},
				})
			}
			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
	tf.register(cmd)
	cmd.Flags().StringVar(&origin, "origin", "", "layout origin x,y,z")
	return cmd
}
