package atlas

import "errors"

// Sentinel errors for atlas package.
var (
	// ErrEmptyFontData is returned when Load is called without font bytes.
	ErrEmptyFontData = errors.New("atlas: empty font data")

	// ErrAtlasTooLarge is returned when the glyphs do not fit in
	// MaxAtlasSize x MaxAtlasSize.
	ErrAtlasTooLarge = errors.New("atlas: glyphs do not fit in maximum atlas size")

	// ErrNilTextureCreator is returned by Upload when no creator is given.
	ErrNilTextureCreator = errors.New("atlas: nil texture creator")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
