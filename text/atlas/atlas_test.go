package atlas

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/text"
)

func loadTest(t *testing.T, cfg Config) *Result {
	t.Helper()
	res, err := Load(goregular.TTF, cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return res
}

func glyphRect(g text.Glyph) image.Rectangle {
	return image.Rect(int(g.Rect.X), int(g.Rect.Y),
		int(g.Rect.X+g.Rect.Width), int(g.Rect.Y+g.Rect.Height))
}

func TestLoad_Default(t *testing.T) {
	res := loadTest(t, DefaultConfig())
	f := res.Font

	if f.NumGlyphs() != 95 {
		t.Errorf("NumGlyphs = %d, want 95", f.NumGlyphs())
	}
	if f.BaseSize() != 16 || f.Padding() != 4 {
		t.Errorf("BaseSize/Padding = %d/%d, want 16/4", f.BaseSize(), f.Padding())
	}
	w, h := f.AtlasSize()
	if iw, ih := res.Size(); iw != w || ih != h {
		t.Errorf("image %dx%d, font atlas %dx%d", iw, ih, w, h)
	}
	if w&(w-1) != 0 || h&(h-1) != 0 {
		t.Errorf("atlas %dx%d is not a power of two", w, h)
	}
	if res.Mode != ModeDefault {
		t.Errorf("Mode = %v, want default", res.Mode)
	}

	for i := 0; i < f.NumGlyphs(); i++ {
		g := f.Glyph(i)
		if g.Codepoint != ' '+rune(i) {
			t.Fatalf("glyph %d codepoint = %q, want %q", i, g.Codepoint, ' '+rune(i))
		}
		if g.AdvanceX <= 0 {
			t.Errorf("%q AdvanceX = %d, want > 0", g.Codepoint, g.AdvanceX)
		}
		padded := glyphRect(g).Inset(-f.Padding())
		if !padded.In(res.Image.Bounds()) {
			t.Errorf("%q padded rect %v outside atlas %v", g.Codepoint, padded, res.Image.Bounds())
		}
	}
}

func TestLoad_NoOverlap(t *testing.T) {
	res := loadTest(t, DefaultConfig())
	f := res.Font

	var rects []image.Rectangle
	for i := 0; i < f.NumGlyphs(); i++ {
		r := glyphRect(f.Glyph(i)).Inset(-f.Padding())
		for j, o := range rects {
			if r.Overlaps(o) {
				t.Errorf("glyph %q overlaps %q", f.Glyph(i).Codepoint, f.Glyph(j).Codepoint)
			}
		}
		rects = append(rects, r)
	}
}

func TestLoad_GlyphPixels(t *testing.T) {
	res := loadTest(t, DefaultConfig())
	f := res.Font

	a := f.Glyph(f.GlyphIndex('A'))
	if a.OffsetY < 0 || a.OffsetY >= f.BaseSize() {
		t.Errorf("'A' OffsetY = %d, want within the line", a.OffsetY)
	}
	var sum int
	r := glyphRect(a)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += int(res.Image.AlphaAt(x, y).A)
		}
	}
	if sum == 0 {
		t.Error("'A' bitmap is empty")
	}

	sp := f.Glyph(f.GlyphIndex(' '))
	if int(sp.Rect.Width) != sp.AdvanceX || int(sp.Rect.Height) != f.BaseSize() {
		t.Errorf("space rect = %vx%v, want %dx%d", sp.Rect.Width, sp.Rect.Height, sp.AdvanceX, f.BaseSize())
	}
}

func TestLoad_SDF(t *testing.T) {
	res := loadTest(t, SDFConfig())
	f := res.Font

	if res.Mode != ModeSDF || f.Padding() != 0 {
		t.Fatalf("Mode/Padding = %v/%d, want sdf/0", res.Mode, f.Padding())
	}
	o := f.Glyph(f.GlyphIndex('I'))
	r := glyphRect(o)
	if got := res.Image.AlphaAt(r.Min.X, r.Min.Y).A; got >= OnEdgeValue {
		t.Errorf("corner value = %d, want below %d", got, OnEdgeValue)
	}
	var maxV uint8
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			maxV = max(maxV, res.Image.AlphaAt(x, y).A)
		}
	}
	if maxV <= OnEdgeValue {
		t.Errorf("max value = %d, want above %d", maxV, OnEdgeValue)
	}
	// The distance margin shifts the glyph up and left.
	def := loadTest(t, DefaultConfig()).Font.Glyph(f.GlyphIndex('I'))
	if o.OffsetX != def.OffsetX-4 || o.OffsetY != def.OffsetY-4 {
		t.Errorf("sdf offsets = %d,%d, want %d,%d", o.OffsetX, o.OffsetY, def.OffsetX-4, def.OffsetY-4)
	}
}

func TestLoad_LayoutAndMeasure(t *testing.T) {
	f := loadTest(t, SDFConfig()).Font
	opts := text.Options{Size: 32, CharSpacing: 5}

	ext := text.Measure(f, "SPHERE", opts)
	if ext.Width <= 0 || ext.Height != 2 {
		t.Errorf("Measure = %+v, want positive width and height 2", ext)
	}
	n := 0
	for p := range text.Layout(f, "SPHERE", glyph3d.Vec3{}, opts) {
		n++
		if p.U1 <= p.U0 || p.V1 <= p.V0 {
			t.Errorf("%q has empty UV rect", p.Codepoint)
		}
	}
	if n != 6 {
		t.Errorf("placements = %d, want 6", n)
	}
}

func TestLoad_ExplicitRunes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runes = []rune{'A', 0x4E00, 'B'}

	f := loadTest(t, cfg).Font
	if f.NumGlyphs() != 2 {
		t.Fatalf("NumGlyphs = %d, want 2 (missing rune skipped)", f.NumGlyphs())
	}
	if got := f.GlyphIndex(0x4E00); got != 0 {
		t.Errorf("GlyphIndex(U+4E00) = %d, want fallback 0", got)
	}
	if got := f.GlyphIndex('B'); got != 1 {
		t.Errorf("GlyphIndex('B') = %d, want 1", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		if _, err := Load(nil, DefaultConfig()); !errors.Is(err, ErrEmptyFontData) {
			t.Errorf("err = %v, want ErrEmptyFontData", err)
		}
	})
	t.Run("garbage", func(t *testing.T) {
		if _, err := Load([]byte("not a font"), DefaultConfig()); err == nil {
			t.Error("expected parse error")
		}
	})
	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BaseSize = 0
		_, err := Load(goregular.TTF, cfg)
		var cerr *ConfigError
		if !errors.As(err, &cerr) || cerr.Field != "BaseSize" {
			t.Errorf("err = %v, want ConfigError on BaseSize", err)
		}
	})
	t.Run("too large", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxAtlasSize = 32
		if _, err := Load(goregular.TTF, cfg); !errors.Is(err, ErrAtlasTooLarge) {
			t.Errorf("err = %v, want ErrAtlasTooLarge", err)
		}
	})
	t.Run("no glyphs in font", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Runes = []rune{0x4E00}
		if _, err := Load(goregular.TTF, cfg); !errors.Is(err, text.ErrNoGlyphs) {
			t.Errorf("err = %v, want ErrNoGlyphs", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad mode", func(c *Config) { c.Mode = 7 }, "Mode"},
		{"zero base", func(c *Config) { c.BaseSize = 0 }, "BaseSize"},
		{"huge base", func(c *Config) { c.BaseSize = 5000 }, "BaseSize"},
		{"zero count", func(c *Config) { c.GlyphCount = 0 }, "GlyphCount"},
		{"zero count with runes", func(c *Config) { c.GlyphCount = 0; c.Runes = []rune{'A'} }, ""},
		{"range overflow", func(c *Config) { c.FirstRune = 0x10FFFF }, "FirstRune"},
		{"negative padding", func(c *Config) { c.Padding = -1 }, "Padding"},
		{"sdf spread", func(c *Config) { c.Mode = ModeSDF; c.SDFSpread = 0 }, "SDFSpread"},
		{"max size", func(c *Config) { c.MaxAtlasSize = 0 }, "MaxAtlasSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("Validate() = %v, want ConfigError on %s", err, tt.field)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeDefault, ModeSDF} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("msdf"); err == nil {
		t.Error("ParseMode(msdf) succeeded")
	}
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("String() = %q", got)
	}
}

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

type fakeCreator struct {
	gotLen int
	err    error
}

func (c *fakeCreator) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	c.gotLen = len(data)
	if c.err != nil {
		return nil, c.err
	}
	return &fakeTexture{w, h}, nil
}

func TestUpload(t *testing.T) {
	res := loadTest(t, DefaultConfig())
	w, h := res.Size()

	tc := &fakeCreator{}
	f, err := res.Upload(tc)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if tc.gotLen != w*h*4 {
		t.Errorf("uploaded %d bytes, want %d", tc.gotLen, w*h*4)
	}
	tex := f.Texture()
	if tex == nil || tex.Width() != w || tex.Height() != h {
		t.Errorf("Texture = %v, want %dx%d", tex, w, h)
	}
	if res.Font.Texture() != nil {
		t.Error("Upload modified the loaded font")
	}

	boom := errors.New("device lost")
	if _, err := res.Upload(&fakeCreator{err: boom}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
	if _, err := res.Upload(nil); !errors.Is(err, ErrNilTextureCreator) {
		t.Errorf("err = %v, want ErrNilTextureCreator", err)
	}
}

func TestRGBA(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 2, 1))
	img.Pix[0], img.Pix[1] = 0x10, 0xF0
	res := &Result{Image: img}

	got := res.RGBA()
	want := []byte{0xFF, 0xFF, 0xFF, 0x10, 0xFF, 0xFF, 0xFF, 0xF0}
	if !bytes.Equal(got, want) {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
}

func TestTextureDescriptor(t *testing.T) {
	res := loadTest(t, SDFConfig())
	d := res.TextureDescriptor()
	w, h := res.Size()

	if d.Size.Width != uint32(w) || d.Size.Height != uint32(h) { //nolint:gosec // test sizes are small
		t.Errorf("Size = %v, want %dx%d", d.Size, w, h)
	}
	if d.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", d.Format)
	}
	if !d.Usage.Contains(gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst) {
		t.Errorf("Usage = %v, missing binding or copy dst", d.Usage)
	}
	if d.MipLevelCount != 1 || d.SampleCount != 1 || d.Dimension != gputypes.TextureDimension2D {
		t.Errorf("descriptor = %+v", d)
	}
}

func TestEncodePNG(t *testing.T) {
	res := loadTest(t, DefaultConfig())
	var buf bytes.Buffer
	if err := res.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds() != res.Image.Bounds() {
		t.Errorf("bounds = %v, want %v", img.Bounds(), res.Image.Bounds())
	}
}
