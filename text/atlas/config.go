package atlas

import "fmt"

// Mode selects how glyph bitmaps are produced.
type Mode int

const (
	// ModeDefault stores antialiased coverage.
	ModeDefault Mode = iota

	// ModeSDF stores a signed distance field. The glyph edge is at
	// OnEdgeValue, inside is brighter.
	ModeSDF
)

// OnEdgeValue is the SDF sample value on the glyph outline.
const OnEdgeValue = 128

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeSDF:
		return "sdf"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named s ("default" or "sdf").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "default":
		return ModeDefault, nil
	case "sdf":
		return ModeSDF, nil
	}
	return 0, &ConfigError{Field: "Mode", Reason: fmt.Sprintf("unknown mode %q", s)}
}

// Config holds atlas generation parameters.
type Config struct {
	// Mode selects coverage or signed distance bitmaps.
	Mode Mode

	// BaseSize is the pixel height the font is rasterized at.
	BaseSize int

	// FirstRune and GlyphCount select a contiguous codepoint range.
	// They are ignored when Runes is set.
	FirstRune  rune
	GlyphCount int

	// Runes lists the codepoints to include, in order.
	Runes []rune

	// Padding is the number of pixels kept free around every glyph in
	// the atlas.
	Padding int

	// SDFSpread is the distance in pixels covered by the distance field
	// on each side of the outline. Only used by ModeSDF.
	SDFSpread int

	// MaxAtlasSize bounds the atlas width and height.
	MaxAtlasSize int
}

// DefaultConfig returns the configuration of the default bitmap font:
// 95 printable ASCII glyphs at 16px with 4px padding.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeDefault,
		BaseSize:     16,
		FirstRune:    ' ',
		GlyphCount:   95,
		Padding:      4,
		SDFSpread:    4,
		MaxAtlasSize: 4096,
	}
}

// SDFConfig returns DefaultConfig switched to signed distance glyphs with
// no atlas padding. The distance field carries its own margin.
func SDFConfig() Config {
	c := DefaultConfig()
	c.Mode = ModeSDF
	c.Padding = 0
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Mode != ModeDefault && c.Mode != ModeSDF {
		return &ConfigError{Field: "Mode", Reason: "must be ModeDefault or ModeSDF"}
	}
	if c.BaseSize < 1 {
		return &ConfigError{Field: "BaseSize", Reason: "must be positive"}
	}
	if c.BaseSize > 1024 {
		return &ConfigError{Field: "BaseSize", Reason: "must be at most 1024"}
	}
	if len(c.Runes) == 0 {
		if c.GlyphCount < 1 {
			return &ConfigError{Field: "GlyphCount", Reason: "must be positive"}
		}
		if c.FirstRune < 0 || int64(c.FirstRune)+int64(c.GlyphCount) > 0x110000 {
			return &ConfigError{Field: "FirstRune", Reason: "range exceeds Unicode"}
		}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must not be negative"}
	}
	if c.Mode == ModeSDF && c.SDFSpread < 1 {
		return &ConfigError{Field: "SDFSpread", Reason: "must be positive"}
	}
	if c.MaxAtlasSize < 1 {
		return &ConfigError{Field: "MaxAtlasSize", Reason: "must be positive"}
	}
	return nil
}

// runes returns the codepoints to load, in order.
func (c *Config) runes() []rune {
	if len(c.Runes) > 0 {
		return c.Runes
	}
	out := make([]rune, c.GlyphCount)
	for i := range out {
		out[i] = c.FirstRune + rune(i)
	}
	return out
}
