package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/config"
	"github.com/gogpu/glyph3d/text"
	"github.com/gogpu/glyph3d/text/atlas"
)

// env is the state shared by all subcommands of one invocation.
type env struct {
	configPath string
	fontPath   string
	verbose    bool

	cfg   *config.Config
	fonts map[bool]*atlas.Result
}

func newRootCmd() *cobra.Command {
	e := &env{fonts: make(map[bool]*atlas.Result)}

	root := &cobra.Command{
		Use:           "glyph3d",
		Short:         "3D glyph layout, text measurement and curve sampling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&e.fontPath, "font", "", "TrueType/OpenType font file (default Go Regular)")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log debug messages to stderr")

	root.AddCommand(
		newMeasureCmd(e),
		newLayoutCmd(e),
		newBezierCmd(e),
		newBSplineCmd(e),
		newAtlasCmd(e),
		newSceneCmd(e),
		newShadersCmd(e),
		newFrameCmd(e),
		newConfigCmd(e),
	)
	return root
}

func (e *env) init(stderr io.Writer) error {
	level := slog.LevelInfo
	if e.verbose {
		level = slog.LevelDebug
	}
	glyph3d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	e.cfg = config.Default()
	if e.configPath != "" {
		cfg, err := config.Load(e.configPath)
		if err != nil {
			return err
		}
		e.cfg = cfg
	}
	if e.fontPath != "" {
		e.cfg.Font.Path = e.fontPath
	}
	return nil
}

// atlas loads and caches the coverage or distance field atlas.
func (e *env) atlas(sdf bool) (*atlas.Result, error) {
	if r, ok := e.fonts[sdf]; ok {
		return r, nil
	}
	data := goregular.TTF
	if e.cfg.Font.Path != "" {
		var err error
		data, err = os.ReadFile(e.cfg.Font.Path)
		if err != nil {
			return nil, err
		}
	}
	r, err := atlas.Load(data, e.cfg.AtlasConfig(sdf))
	if err != nil {
		return nil, err
	}
	e.fonts[sdf] = r
	return r, nil
}

func (e *env) font(sdf bool) (*text.Font, error) {
	r, err := e.atlas(sdf)
	if err != nil {
		return nil, err
	}
	return r.Font, nil
}

// readText returns the positional argument, or the contents of file
// transcoded from the configured charset.
func (e *env) readText(args []string, file, charset string) (string, error) {
	if file == "" {
		if len(args) != 1 {
			return "", fmt.Errorf("expected one TEXT argument or --file")
		}
		return args[0], nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	if charset == "" {
		charset = e.cfg.Font.Charset
	}
	data, err = text.Transcode(data, charset)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// parseVec parses "x,y,z", optionally wrapped in parentheses.
func parseVec(s string) (glyph3d.Vec3, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return glyph3d.Vec3{}, fmt.Errorf("point %q: want x,y,z", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return glyph3d.Vec3{}, fmt.Errorf("point %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return glyph3d.V3(v[0], v[1], v[2]), nil
}

func parseVecs(args []string) ([]glyph3d.Vec3, error) {
	out := make([]glyph3d.Vec3, len(args))
	for i, a := range args {
		v, err := parseVec(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// point is the YAML form of a Vec3.
type point [3]float32

func toPoint(v glyph3d.Vec3) point {
	return point{v.X, v.Y, v.Z}
}

func (p point) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range p {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(float64(f), 'g', -1, 32),
		})
	}
	return n, nil
}
