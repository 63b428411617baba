// Package config loads the TOML configuration of the glyph3d demo and
// command line tool.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/scene"
	"github.com/gogpu/glyph3d/text/atlas"
)

// Config is the complete configuration.
type Config struct {
	Window  Window `toml:"window"`
	Font    Font   `toml:"font"`
	Label   Label  `toml:"label"`
	Caption Label  `toml:"caption"`
	Curves  Curves `toml:"curves"`
	Frame   Frame  `toml:"frame"`
	Camera  Camera `toml:"camera"`
}

// Window is the output surface size.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Font describes how both font atlases are generated.
type Font struct {
	// Path of a TrueType or OpenType file. Empty selects the built-in
	// Go Regular face.
	Path string `toml:"path"`

	BaseSize   int `toml:"base_size"`
	FirstRune  int `toml:"first_rune"`
	GlyphCount int `toml:"glyph_count"`

	// Padding applies to the coverage atlas, SDFPadding to the distance
	// field atlas.
	Padding    int `toml:"padding"`
	SDFPadding int `toml:"sdf_padding"`
	SDFSpread  int `toml:"sdf_spread"`

	// Charset is the encoding of text read from files. Empty means UTF-8.
	Charset string `toml:"charset"`
}

// Label is a string drawn in the scene.
type Label struct {
	Text    string  `toml:"text"`
	Size    float32 `toml:"size"`
	Spacing float32 `toml:"spacing"`
	Color   string  `toml:"color"`
}

// Curves holds the sampling parameters of curve primitives.
type Curves struct {
	BezierSegments int `toml:"bezier_segments"`
	BSplineDensity int `toml:"bspline_density"`
}

// Frame holds frame pacing choices.
type Frame struct {
	FPSChoices []int `toml:"fps_choices"`
	FPSIndex   int   `toml:"fps_index"`
}

// Camera is the initial camera placement.
type Camera struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	FovY     float32    `toml:"fovy"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: Window{Width: 640, Height: 480, Title: "glyph3d"},
		Font: Font{
			BaseSize:   16,
			FirstRune:  ' ',
			GlyphCount: 95,
			Padding:    4,
			SDFPadding: 0,
			SDFSpread:  4,
		},
		Label:   Label{Text: "SPHERE", Size: 32, Spacing: 5, Color: "gray"},
		Caption: Label{Text: "Signed Distance Fields", Size: 16, Spacing: 0, Color: "maroon"},
		Curves:  Curves{BezierSegments: 24, BSplineDensity: 24},
		Frame:   Frame{FPSChoices: []int{10, 30, 60, 120, 160, 220}, FPSIndex: 2},
		Camera:  Camera{Position: [3]float32{0, 20, 60}, FovY: 45},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	glyph3d.Logger().Debug("config: loaded", "path", path)
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every field and returns the first problem as a
// *FieldError.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0:
		return &FieldError{Field: "window.width", Reason: "must be positive"}
	case c.Window.Height <= 0:
		return &FieldError{Field: "window.height", Reason: "must be positive"}
	case c.Font.BaseSize <= 0:
		return &FieldError{Field: "font.base_size", Reason: "must be positive"}
	case c.Font.FirstRune < 0:
		return &FieldError{Field: "font.first_rune", Reason: "must not be negative"}
	case c.Font.GlyphCount <= 0:
		return &FieldError{Field: "font.glyph_count", Reason: "must be positive"}
	case c.Font.Padding < 0:
		return &FieldError{Field: "font.padding", Reason: "must not be negative"}
	case c.Font.SDFPadding < 0:
		return &FieldError{Field: "font.sdf_padding", Reason: "must not be negative"}
	case c.Font.SDFSpread <= 0:
		return &FieldError{Field: "font.sdf_spread", Reason: "must be positive"}
	case c.Curves.BezierSegments < 1:
		return &FieldError{Field: "curves.bezier_segments", Reason: "must be at least 1"}
	case c.Curves.BSplineDensity < 1:
		return &FieldError{Field: "curves.bspline_density", Reason: "must be at least 1"}
	case len(c.Frame.FPSChoices) == 0:
		return &FieldError{Field: "frame.fps_choices", Reason: "must not be empty"}
	case c.Frame.FPSIndex < 0 || c.Frame.FPSIndex >= len(c.Frame.FPSChoices):
		return &FieldError{Field: "frame.fps_index", Reason: fmt.Sprintf("out of range [0, %d)", len(c.Frame.FPSChoices))}
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return &FieldError{Field: "camera.fovy", Reason: "must be in (0, 180)"}
	case c.Camera.Position == c.Camera.Target:
		return &FieldError{Field: "camera.position", Reason: "must differ from camera.target"}
	}
	for i, fps := range c.Frame.FPSChoices {
		if fps <= 0 {
			return &FieldError{Field: fmt.Sprintf("frame.fps_choices[%d]", i), Reason: "must be positive"}
		}
	}
	if err := c.Label.validate("label"); err != nil {
		return err
	}
	return c.Caption.validate("caption")
}

func (l *Label) validate(name string) error {
	if l.Size <= 0 {
		return &FieldError{Field: name + ".size", Reason: "must be positive"}
	}
	if _, err := scene.ParseColor(l.Color); err != nil {
		return &FieldError{Field: name + ".color", Reason: err.Error()}
	}
	return nil
}

// AtlasConfig returns the atlas generation parameters for the coverage
// font, or for the distance field font when sdf is set.
func (c *Config) AtlasConfig(sdf bool) atlas.Config {
	cfg := atlas.DefaultConfig()
	if sdf {
		cfg = atlas.SDFConfig()
		cfg.Padding = c.Font.SDFPadding
	} else {
		cfg.Padding = c.Font.Padding
	}
	cfg.BaseSize = c.Font.BaseSize
	cfg.FirstRune = rune(c.Font.FirstRune)
	cfg.GlyphCount = c.Font.GlyphCount
	cfg.SDFSpread = c.Font.SDFSpread
	return cfg
}

// FPS returns the selected frame rate.
func (c *Config) FPS() int {
	return c.Frame.FPSChoices[c.Frame.FPSIndex]
}
