package text

import (
	"iter"
	"unicode/utf8"
)

// DecodeCodepoint decodes the UTF-8 sequence starting at buf[off] and
// returns the codepoint and the number of bytes it occupies.
//
// Malformed, truncated, surrogate and out-of-range sequences decode to '?'
// with size 1, so a scanning loop always makes progress and never reads
// past the end of buf. An offset outside [0, len(buf)) also returns
// ('?', 1).
func DecodeCodepoint(buf []byte, off int) (rune, int) {
	if off < 0 || off >= len(buf) {
		return fallbackCodepoint, 1
	}
	r, size := utf8.DecodeRune(buf[off:])
	if r == utf8.RuneError && size <= 1 {
		return fallbackCodepoint, 1
	}
	return r, size
}

// DecodeCodepointString is DecodeCodepoint for strings.
func DecodeCodepointString(s string, off int) (rune, int) {
	if off < 0 || off >= len(s) {
		return fallbackCodepoint, 1
	}
	r, size := utf8.DecodeRuneInString(s[off:])
	if r == utf8.RuneError && size <= 1 {
		return fallbackCodepoint, 1
	}
	return r, size
}

// Codepoints yields the byte offset and codepoint of every character in s,
// using the substitution rules of DecodeCodepoint.
func Codepoints(s string) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(s); {
			r, size := DecodeCodepointString(s, i)
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}
