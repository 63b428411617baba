package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyph3d/render"
)

type layoutOut struct {
	Stride     uint64 `yaml:"stride"`
	Attributes int    `yaml:"attributes"`
}

type shadersOut struct {
	Words    map[string]int `yaml:"spirv_words"`
	Vertex   layoutOut      `yaml:"vertex_layout"`
	Instance layoutOut      `yaml:"instance_layout"`
}

func newShadersCmd(_ *env) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "shaders",
		Short: "Compile the embedded WGSL shaders to SPIR-V",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source != "" {
				src, err := render.ShaderSource(source)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), src)
				return err
			}

			s, err := render.CompileShaders()
			if err != nil {
				return err
			}
			vl, il := render.VertexLayout(), render.InstanceLayout()
			return writeYAML(cmd.OutOrStdout(), shadersOut{
				Words: map[string]int{
					"text": len(s.Text),
					"line": len(s.Line),
					"mesh": len(s.Mesh),
				},
				Vertex:   layoutOut{Stride: vl.ArrayStride, Attributes: len(vl.Attributes)},
				Instance: layoutOut{Stride: il.ArrayStride, Attributes: len(il.Attributes)},
			})
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "print the WGSL source of text, line or mesh instead")
	return cmd
}
