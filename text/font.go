package text

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// fallbackCodepoint is drawn in place of malformed bytes and unknown
// codepoints.
const fallbackCodepoint = '?'

// Rect is an axis-aligned rectangle in atlas pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Glyph holds the metrics of one glyph and its rectangle in the atlas.
type Glyph struct {
	// Codepoint is the character this glyph represents.
	Codepoint rune

	// AdvanceX is the horizontal advance in font pixels. Zero means the
	// font does not declare one; Rect.Width is used instead.
	AdvanceX int

	// OffsetX is the left bearing in font pixels.
	OffsetX int

	// OffsetY is the distance in font pixels from the top of the line to
	// the top of the glyph bitmap.
	OffsetY int

	// Rect locates the glyph bitmap in the atlas, without padding.
	Rect Rect
}

// Font describes a font atlas: the glyph table plus the geometry needed to
// place glyph quads. A Font is immutable once built and safe for
// concurrent use.
type Font struct {
	base     int
	padding  int
	glyphs   []Glyph
	atlasW   int
	atlasH   int
	texture  gpucontext.Texture
	index    map[rune]int
	fallback int
}

// NewFont builds a Font from base size, glyph padding, glyph table and
// atlas dimensions. The glyph slice is copied.
//
// When several glyphs share a codepoint, the first one wins. An atlas
// size of zero is allowed and yields zero texture coordinates.
func NewFont(base, padding int, glyphs []Glyph, atlasW, atlasH int) (*Font, error) {
	if base < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBaseSize, base)
	}
	if padding < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePadding, padding)
	}
	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}
	if atlasW < 0 || atlasH < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidAtlasSize, atlasW, atlasH)
	}

	f := &Font{
		base:    base,
		padding: padding,
		glyphs:  append([]Glyph(nil), glyphs...),
		atlasW:  atlasW,
		atlasH:  atlasH,
		index:   make(map[rune]int, len(glyphs)),
	}
	for i, g := range f.glyphs {
		if _, dup := f.index[g.Codepoint]; !dup {
			f.index[g.Codepoint] = i
		}
	}
	if i, ok := f.index[fallbackCodepoint]; ok {
		f.fallback = i
	}
	return f, nil
}

// WithTexture returns a copy of f carrying the GPU texture that holds its
// atlas. The glyph table is shared.
func (f *Font) WithTexture(t gpucontext.Texture) *Font {
	c := *f
	c.texture = t
	return &c
}

// BaseSize returns the pixel size the atlas was rasterized at.
func (f *Font) BaseSize() int {
	if f == nil {
		return 0
	}
	return f.base
}

// Padding returns the number of pixels reserved around every glyph.
func (f *Font) Padding() int {
	if f == nil {
		return 0
	}
	return f.padding
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	if f == nil {
		return 0
	}
	return len(f.glyphs)
}

// Glyph returns the glyph at index i. It panics if i is out of range,
// including on a nil font. The other accessors treat nil as an empty font.
func (f *Font) Glyph(i int) Glyph { return f.glyphs[i] }

// AtlasSize returns the atlas texture dimensions in pixels.
func (f *Font) AtlasSize() (width, height int) {
	if f == nil {
		return 0, 0
	}
	return f.atlasW, f.atlasH
}

// Texture returns the atlas texture, or nil if none was attached.
func (f *Font) Texture() gpucontext.Texture {
	if f == nil {
		return nil
	}
	return f.texture
}

// GlyphIndex returns the index of the glyph for r. Codepoints missing from
// the font resolve to the '?' glyph, or to index 0 if the font has no '?'.
func (f *Font) GlyphIndex(r rune) int {
	if f == nil {
		return 0
	}
	if i, ok := f.index[r]; ok {
		return i
	}
	return f.fallback
}

// usable reports whether f can be laid out.
func (f *Font) usable() bool {
	return f != nil && f.base > 0 && len(f.glyphs) > 0
}

// advance returns the cursor advance for glyph g in world units.
func (f *Font) advance(g *Glyph, spacing, scale float32) float32 {
	if g.AdvanceX == 0 {
		return f.px(g.Rect.Width+spacing, scale)
	}
	return f.px(float32(g.AdvanceX)+spacing, scale)
}
