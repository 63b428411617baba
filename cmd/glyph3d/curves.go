package main

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyph3d"
)

func collectPoints(seq iter.Seq[glyph3d.Vec3]) []point {
	out := []point{}
	for p := range seq {
		out = append(out, toPoint(p))
	}
	return out
}

func newBezierCmd(e *env) *cobra.Command {
	var (
		segments  int
		withStart bool
	)
	cmd := &cobra.Command{
		Use:   "bezier P1 C2 C3 P4",
		Short: "Sample a cubic Bezier segment",
		Long: "Sample a cubic Bezier segment at t = 1/segments .. 1.\n" +
			"Points are written x,y,z; wrap them in parentheses when x is negative.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parseVecs(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("segments") {
				segments = e.cfg.Curves.BezierSegments
			}
			if segments < 1 {
				return fmt.Errorf("--segments must be at least 1")
			}
			seq := glyph3d.SampleBezierCubic(pts[0], pts[1], pts[2], pts[3], segments)
			if withStart {
				seq = glyph3d.Prepend(pts[0], seq)
			}
			return writeYAML(cmd.OutOrStdout(), collectPoints(seq))
		},
	}
	cmd.Flags().IntVarP(&segments, "segments", "n", 24, "number of line segments")
	cmd.Flags().BoolVar(&withStart, "with-start", false, "also print the start point")
	return cmd
}

func newBSplineCmd(e *env) *cobra.Command {
	var density int
	cmd := &cobra.Command{
		Use:   "bspline P1 P2 P3 P4 [P...]",
		Short: "Sample a uniform cubic B-spline chain",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parseVecs(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("density") {
				density = e.cfg.Curves.BSplineDensity
			}
			return writeYAML(cmd.OutOrStdout(), collectPoints(glyph3d.SampleBSplineChain(pts, density)))
		},
	}
	cmd.Flags().IntVar(&density, "density", 24, "samples per window (reserved)")
	return cmd
}
