package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyph3d/text"
)

// newTestFont returns a base-16 font with '?', 'A'..'Z' and ' ', each
// glyph 10 units wide with advance 10.
func newTestFont(t *testing.T) *text.Font {
	t.Helper()
	glyphs := []text.Glyph{
		{Codepoint: ' ', AdvanceX: 4, Rect: text.Rect{Width: 4, Height: 16}},
		{Codepoint: '?', AdvanceX: 10, Rect: text.Rect{X: 4, Width: 10, Height: 12}},
	}
	for r := 'A'; r <= 'Z'; r++ {
		x := float32(r-'A'+2) * 10
		glyphs = append(glyphs, text.Glyph{Codepoint: r, AdvanceX: 10, Rect: text.Rect{X: x, Width: 10, Height: 12}})
	}
	f, err := text.NewFont(16, 0, glyphs, 512, 16)
	require.NoError(t, err)
	return f
}

func testFonts(t *testing.T) map[string]*text.Font {
	t.Helper()
	return map[string]*text.Font{
		DefaultFont: newTestFont(t),
		SDFFont:     newTestFont(t),
	}
}
