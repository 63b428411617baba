package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type atlasOut struct {
	Mode     string `yaml:"mode"`
	Glyphs   int    `yaml:"glyphs"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output,omitempty"`
	BaseSize int    `yaml:"base_size"`
	Padding  int    `yaml:"padding"`
}

func newAtlasCmd(e *env) *cobra.Command {
	var (
		sdf    bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Build a font atlas and optionally write it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := e.atlas(sdf)
			if err != nil {
				return err
			}
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := r.EncodePNG(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", output, err)
				}
			}
			w, h := r.Size()
			return writeYAML(cmd.OutOrStdout(), atlasOut{
				Mode:     r.Mode.String(),
				Glyphs:   r.Font.NumGlyphs(),
				Width:    w,
				Height:   h,
				Format:   r.TextureDescriptor().Format.String(),
				Output:   output,
				BaseSize: r.Font.BaseSize(),
				Padding:  r.Font.Padding(),
			})
		},
	}
	cmd.Flags().BoolVar(&sdf, "sdf", false, "build the distance field atlas")
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	return cmd
}
