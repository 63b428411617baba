package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrInvalidBaseSize is returned when a font is built with a base size below 1.
	ErrInvalidBaseSize = errors.New("text: base size must be positive")

	// ErrNoGlyphs is returned when a font is built without glyphs.
	ErrNoGlyphs = errors.New("text: font has no glyphs")

	// ErrNegativePadding is returned when the glyph padding is negative.
	ErrNegativePadding = errors.New("text: glyph padding must not be negative")

	// ErrInvalidAtlasSize is returned when the atlas dimensions are negative.
	ErrInvalidAtlasSize = errors.New("text: atlas size must not be negative")

	// ErrUnknownCharset is returned by Transcode for unrecognized charset labels.
	ErrUnknownCharset = errors.New("text: unknown charset")
)
