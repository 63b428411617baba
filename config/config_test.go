package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyph3d/text/atlas"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.FPS())
	assert.Equal(t, "SPHERE", cfg.Label.Text)
	assert.Equal(t, float32(32), cfg.Label.Size)
	assert.Equal(t, float32(5), cfg.Label.Spacing)
	assert.Equal(t, 24, cfg.Curves.BezierSegments)
	assert.Equal(t, [3]float32{0, 20, 60}, cfg.Camera.Position)
}

func TestDecode_Overrides(t *testing.T) {
	src := `
[window]
width = 1280

[label]
text = "ORBIT"
color = "#ff0000"

[frame]
fps_choices = [30, 60]
fps_index = 0

[camera]
position = [10.0, 5.0, 10.0]
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, "ORBIT", cfg.Label.Text)
	assert.Equal(t, float32(32), cfg.Label.Size)
	assert.Equal(t, 30, cfg.FPS())
	assert.Equal(t, [3]float32{10, 5, 10}, cfg.Camera.Position)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("[window]\ndepth = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: ")
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode(strings.NewReader("[window\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Config)
	}{
		{"window.width", func(c *Config) { c.Window.Width = 0 }},
		{"window.height", func(c *Config) { c.Window.Height = -1 }},
		{"font.base_size", func(c *Config) { c.Font.BaseSize = 0 }},
		{"font.first_rune", func(c *Config) { c.Font.FirstRune = -1 }},
		{"font.glyph_count", func(c *Config) { c.Font.GlyphCount = 0 }},
		{"font.padding", func(c *Config) { c.Font.Padding = -1 }},
		{"font.sdf_padding", func(c *Config) { c.Font.SDFPadding = -2 }},
		{"font.sdf_spread", func(c *Config) { c.Font.SDFSpread = 0 }},
		{"curves.bezier_segments", func(c *Config) { c.Curves.BezierSegments = 0 }},
		{"curves.bspline_density", func(c *Config) { c.Curves.BSplineDensity = 0 }},
		{"frame.fps_choices", func(c *Config) { c.Frame.FPSChoices = nil }},
		{"frame.fps_index", func(c *Config) { c.Frame.FPSIndex = 6 }},
		{"frame.fps_choices[1]", func(c *Config) { c.Frame.FPSChoices[1] = 0 }},
		{"camera.fovy", func(c *Config) { c.Camera.FovY = 180 }},
		{"camera.position", func(c *Config) { c.Camera.Position = c.Camera.Target }},
		{"label.size", func(c *Config) { c.Label.Size = 0 }},
		{"caption.color", func(c *Config) { c.Caption.Color = "teal" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	assert.Contains(t, buf.String(), "bezier_segments = 24")

	cfg, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glyph3d.toml")
	require.NoError(t, os.WriteFile(path, []byte("[curves]\nbezier_segments = 8\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Curves.BezierSegments)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestAtlasConfig(t *testing.T) {
	cfg := Default()
	plain := cfg.AtlasConfig(false)
	assert.Equal(t, atlas.ModeDefault, plain.Mode)
	assert.Equal(t, 4, plain.Padding)
	assert.Equal(t, 16, plain.BaseSize)
	assert.Equal(t, ' ', plain.FirstRune)
	assert.Equal(t, 95, plain.GlyphCount)
	require.NoError(t, plain.Validate())

	sdf := cfg.AtlasConfig(true)
	assert.Equal(t, atlas.ModeSDF, sdf.Mode)
	assert.Equal(t, 0, sdf.Padding)
	assert.Equal(t, 4, sdf.SDFSpread)
	require.NoError(t, sdf.Validate())
}
