package text

// Options controls text size and spacing for Layout and Measure.
//
// Spacing values are in font pixels, the same unit as the glyph metrics.
// A font pixel maps to scale/BaseSize world units, where
// scale = Size/BaseSize.
type Options struct {
	// Size is the rendered font size.
	Size float32

	// CharSpacing is added to every glyph advance.
	CharSpacing float32

	// LineSpacing is added to the line height on every line break.
	LineSpacing float32
}

// DefaultOptions returns Options for size with no extra spacing.
func DefaultOptions(size float32) Options {
	return Options{Size: size}
}

// scale returns Size/BaseSize for f.
func (o Options) scale(f *Font) float32 {
	return o.Size / float32(f.base)
}

// px converts font pixels to world units at the given scale.
func (f *Font) px(v, scale float32) float32 {
	return v / float32(f.base) * scale
}
