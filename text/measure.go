package text

// Extent is the size of a laid out text block in world units.
type Extent struct {
	// Width is the width of the widest line plus the spacing between the
	// characters of the longest line.
	Width float32

	// Height is one line height plus one line pitch per line break.
	Height float32
}

// Measure returns the extent of s laid out with opts, using the same
// decoding and advance rules as Layout.
//
// The width of each line is the sum of its advances, spaces included. The
// widest line is kept, then (n-1)·CharSpacing is added for the greatest
// per-line character count n. An empty text has width 0 and the height of
// one line. A nil or empty font measures as zero.
func Measure(f *Font, s string, opts Options) Extent {
	if !f.usable() {
		return Extent{}
	}
	scale := opts.scale(f)

	var (
		maxWidth, lineWidth float32
		maxChars, lineChars int
		height              = scale
	)
	for i := 0; i < len(s); {
		r, size := DecodeCodepointString(s, i)
		i += size

		if r == '\n' {
			maxWidth = max(maxWidth, lineWidth)
			lineWidth, lineChars = 0, 0
			height += scale + f.px(opts.LineSpacing, scale)
			continue
		}
		lineChars++
		maxChars = max(maxChars, lineChars)
		lineWidth += f.advance(&f.glyphs[f.GlyphIndex(r)], opts.CharSpacing, scale)
	}
	// The last line has no trailing newline to flush it.
	maxWidth = max(maxWidth, lineWidth)

	width := maxWidth + float32(maxChars-1)*f.px(opts.CharSpacing, scale)
	return Extent{Width: max(width, 0), Height: height}
}
