package text

import (
	"errors"
	"testing"
)

// testGlyphs is a small glyph table with base size 16.
// 'Z' declares no advance so the rectangle width is used instead.
func testGlyphs() []Glyph {
	return []Glyph{
		{Codepoint: ' ', AdvanceX: 4, Rect: Rect{X: 0, Y: 0, Width: 4, Height: 16}},
		{Codepoint: '?', AdvanceX: 8, OffsetY: 2, Rect: Rect{X: 10, Y: 0, Width: 8, Height: 12}},
		{Codepoint: 'A', AdvanceX: 10, OffsetX: 1, OffsetY: 2, Rect: Rect{X: 20, Y: 0, Width: 9, Height: 12}},
		{Codepoint: 'B', AdvanceX: 12, OffsetX: 1, OffsetY: 2, Rect: Rect{X: 30, Y: 0, Width: 10, Height: 12}},
		{Codepoint: 'Z', AdvanceX: 0, OffsetX: 0, OffsetY: 2, Rect: Rect{X: 45, Y: 0, Width: 7, Height: 12}},
		{Codepoint: 'é', AdvanceX: 10, OffsetX: 1, OffsetY: 0, Rect: Rect{X: 0, Y: 16, Width: 9, Height: 14}},
	}
}

func newTestFont(t *testing.T, padding int) *Font {
	t.Helper()
	f, err := NewFont(16, padding, testGlyphs(), 64, 32)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	return f
}

func TestNewFont_Errors(t *testing.T) {
	tests := []struct {
		name    string
		base    int
		padding int
		glyphs  []Glyph
		w, h    int
		wantErr error
	}{
		{"zero base", 0, 0, testGlyphs(), 64, 32, ErrInvalidBaseSize},
		{"negative base", -16, 0, testGlyphs(), 64, 32, ErrInvalidBaseSize},
		{"negative padding", 16, -1, testGlyphs(), 64, 32, ErrNegativePadding},
		{"no glyphs", 16, 0, nil, 64, 32, ErrNoGlyphs},
		{"negative atlas", 16, 0, testGlyphs(), -1, 32, ErrInvalidAtlasSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFont(tt.base, tt.padding, tt.glyphs, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if f != nil {
				t.Errorf("font = %v, want nil", f)
			}
		})
	}
}

func TestNewFont_CopiesGlyphs(t *testing.T) {
	glyphs := testGlyphs()
	f, err := NewFont(16, 4, glyphs, 64, 32)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	glyphs[2].AdvanceX = 99

	if got := f.Glyph(2).AdvanceX; got != 10 {
		t.Errorf("AdvanceX = %d after caller mutation, want 10", got)
	}
	if f.BaseSize() != 16 || f.Padding() != 4 || f.NumGlyphs() != len(glyphs) {
		t.Errorf("BaseSize/Padding/NumGlyphs = %d/%d/%d", f.BaseSize(), f.Padding(), f.NumGlyphs())
	}
	if w, h := f.AtlasSize(); w != 64 || h != 32 {
		t.Errorf("AtlasSize = %dx%d, want 64x32", w, h)
	}
	if f.Texture() != nil {
		t.Errorf("Texture = %v, want nil", f.Texture())
	}
}

func TestGlyphIndex(t *testing.T) {
	f := newTestFont(t, 0)

	tests := []struct {
		r    rune
		want int
	}{
		{' ', 0},
		{'?', 1},
		{'A', 2},
		{'Z', 4},
		{'é', 5},
		{'x', 1},
		{'€', 1},
		{0x10FFFF, 1},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := f.GlyphIndex(tt.r); got != tt.want {
			t.Errorf("GlyphIndex(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestGlyphIndex_FallbackEqualsQuestionMark(t *testing.T) {
	f := newTestFont(t, 0)
	want := f.GlyphIndex('?')
	for r := rune(0); r < 0x3000; r++ {
		if _, ok := f.index[r]; ok {
			continue
		}
		if got := f.GlyphIndex(r); got != want {
			t.Fatalf("GlyphIndex(%U) = %d, want %d", r, got, want)
		}
	}
}

func TestGlyphIndex_NoQuestionMark(t *testing.T) {
	f, err := NewFont(16, 0, []Glyph{
		{Codepoint: 'A', AdvanceX: 10},
		{Codepoint: 'B', AdvanceX: 10},
	}, 0, 0)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	if got := f.GlyphIndex('C'); got != 0 {
		t.Errorf("GlyphIndex('C') = %d, want 0", got)
	}
	if got := f.GlyphIndex('B'); got != 1 {
		t.Errorf("GlyphIndex('B') = %d, want 1", got)
	}
}

func TestGlyphIndex_DuplicateFirstWins(t *testing.T) {
	f, err := NewFont(16, 0, []Glyph{
		{Codepoint: 'A', AdvanceX: 10},
		{Codepoint: 'A', AdvanceX: 20},
	}, 0, 0)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	if got := f.GlyphIndex('A'); got != 0 {
		t.Errorf("GlyphIndex('A') = %d, want 0", got)
	}
}

func TestGlyphIndex_NilFont(t *testing.T) {
	var f *Font
	if got := f.GlyphIndex('A'); got != 0 {
		t.Errorf("GlyphIndex on nil font = %d, want 0", got)
	}
	if got := f.NumGlyphs(); got != 0 {
		t.Errorf("NumGlyphs on nil font = %d, want 0", got)
	}
}

func TestFont_NilAccessors(t *testing.T) {
	var f *Font
	if got := f.BaseSize(); got != 0 {
		t.Errorf("BaseSize = %d, want 0", got)
	}
	if got := f.Padding(); got != 0 {
		t.Errorf("Padding = %d, want 0", got)
	}
	if w, h := f.AtlasSize(); w != 0 || h != 0 {
		t.Errorf("AtlasSize = %d, %d, want 0, 0", w, h)
	}
	if f.Texture() != nil {
		t.Error("Texture on nil font is not nil")
	}
}

type fakeTexture struct{ w, h int }

func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

func TestWithTexture(t *testing.T) {
	f := newTestFont(t, 0)
	tex := fakeTexture{64, 32}

	g := f.WithTexture(tex)
	if g == f {
		t.Fatal("WithTexture returned the receiver")
	}
	if g.Texture() != tex {
		t.Errorf("Texture = %v, want %v", g.Texture(), tex)
	}
	if f.Texture() != nil {
		t.Errorf("original Texture = %v, want nil", f.Texture())
	}
	if g.GlyphIndex('B') != f.GlyphIndex('B') {
		t.Error("glyph table not shared")
	}
}
