package atlas

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyph3d"
	"github.com/gogpu/glyph3d/text"
)

// minAtlasSize is the smallest atlas edge tried when packing.
const minAtlasSize = 32

// Result is a loaded font atlas.
type Result struct {
	// Font describes the glyphs packed in Image.
	Font *text.Font

	// Image holds one byte per pixel: coverage for ModeDefault, distance
	// for ModeSDF.
	Image *image.Alpha

	// Mode is the mode Image was generated with.
	Mode Mode
}

// glyphBitmap is a rasterized glyph before packing.
type glyphBitmap struct {
	r       rune
	img     *image.Alpha
	advance int
	offX    int
	offY    int
}

func (g *glyphBitmap) size() (w, h int) {
	if g.img == nil {
		return 0, 0
	}
	b := g.img.Bounds()
	return b.Dx(), b.Dy()
}

// Load parses a TrueType or OpenType font, rasterizes the configured
// codepoints at cfg.BaseSize and packs them into a single atlas image.
//
// Codepoints missing from the font's cmap are skipped, so text.Font
// resolves them to the '?' glyph at layout time.
func Load(data []byte, cfg Config) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font: %w", err)
	}

	upem := float32(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	scale := float32(cfg.BaseSize) / upem

	ascender := upem * 0.8
	if ext, ok := face.FontHExtents(); ok {
		ascender = ext.Ascender
	}
	ascentPx := int(math32.Round(ascender * scale))

	log := glyph3d.Logger()
	bitmaps := make([]glyphBitmap, 0, cfg.GlyphCount)
	for _, r := range cfg.runes() {
		gid, ok := face.NominalGlyph(r)
		if !ok {
			log.Warn("atlas: no cmap entry", slog.String("rune", fmt.Sprintf("%U", r)))
			continue
		}
		bitmaps = append(bitmaps, rasterizeGlyph(face, r, gid, scale, ascentPx, &cfg))
	}
	if len(bitmaps) == 0 {
		return nil, fmt.Errorf("atlas: %w", text.ErrNoGlyphs)
	}

	rects, w, h, err := pack(bitmaps, &cfg)
	if err != nil {
		return nil, err
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	glyphs := make([]text.Glyph, len(bitmaps))
	for i := range bitmaps {
		b := &bitmaps[i]
		rect := rects[i]
		if b.img != nil {
			blit(img, b.img, rect.Min)
		}
		glyphs[i] = text.Glyph{
			Codepoint: b.r,
			AdvanceX:  b.advance,
			OffsetX:   b.offX,
			OffsetY:   b.offY,
			Rect: text.Rect{
				X:      float32(rect.Min.X),
				Y:      float32(rect.Min.Y),
				Width:  float32(rect.Dx()),
				Height: float32(rect.Dy()),
			},
		}
	}

	f, err := text.NewFont(cfg.BaseSize, cfg.Padding, glyphs, w, h)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	log.Debug("atlas: loaded",
		slog.String("mode", cfg.Mode.String()),
		slog.Int("glyphs", len(glyphs)),
		slog.Int("width", w),
		slog.Int("height", h))

	return &Result{Font: f, Image: img, Mode: cfg.Mode}, nil
}

// rasterizeGlyph renders one glyph outline at the given scale.
// Glyphs without an outline (space) get a blank bitmap one advance wide
// and one line tall.
func rasterizeGlyph(face *font.Face, r rune, gid font.GID, scale float32, ascentPx int, cfg *Config) glyphBitmap {
	g := glyphBitmap{
		r:       r,
		advance: int(math32.Round(face.HorizontalAdvance(gid) * scale)),
	}

	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		if !ok {
			glyph3d.Logger().Warn("atlas: glyph has no outline", slog.String("rune", fmt.Sprintf("%U", r)))
		}
		if g.advance > 0 {
			g.img = image.NewAlpha(image.Rect(0, 0, g.advance, cfg.BaseSize))
		}
		return g
	}

	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for i := range outline.Segments {
		for _, p := range outline.Segments[i].ArgsSlice() {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}

	margin := 0
	if cfg.Mode == ModeSDF {
		margin = cfg.SDFSpread
	}
	left := int(math32.Floor(minX * scale))
	right := int(math32.Ceil(maxX * scale))
	top := int(math32.Ceil(maxY * scale))
	bottom := int(math32.Floor(minY * scale))
	w := right - left + 2*margin
	h := top - bottom + 2*margin
	if w <= 0 || h <= 0 {
		return g
	}

	// Font units are y-up; the bitmap is y-down with its origin at the
	// top-left of the glyph box.
	ox := float32(margin - left)
	oy := float32(margin + top)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return p.X*scale + ox, oy - p.Y*scale
	}

	z := vector.NewRasterizer(w, h)
	started := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			started = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			z.QuadTo(cx, cy, x, y)
		case ot.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if started {
		z.ClosePath()
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	if cfg.Mode == ModeSDF {
		img = distanceField(img, cfg.SDFSpread)
	}

	g.img = img
	g.offX = left - margin
	g.offY = ascentPx - top - margin
	return g
}

// pack places every bitmap in the smallest power-of-two atlas that holds
// them. Each glyph occupies a cell grown by cfg.Padding on every side and
// the returned rectangles exclude that padding.
func pack(bitmaps []glyphBitmap, cfg *Config) ([]image.Rectangle, int, int, error) {
	pad := cfg.Padding
	area := 0
	order := make([]int, len(bitmaps))
	for i := range bitmaps {
		order[i] = i
		w, h := bitmaps[i].size()
		area += (w + 2*pad + 1) * (h + 2*pad + 1)
	}
	// Tallest first keeps shelves tight.
	slices.SortStableFunc(order, func(a, b int) int {
		_, ha := bitmaps[a].size()
		_, hb := bitmaps[b].size()
		return hb - ha
	})

	side := minAtlasSize
	for side*side < area {
		side *= 2
	}
	w, h := side, side
	packer := newShelfPacker(w, h, 1)
	rects := make([]image.Rectangle, len(bitmaps))

	for {
		if w > cfg.MaxAtlasSize || h > cfg.MaxAtlasSize {
			return nil, 0, 0, fmt.Errorf("%w (%d)", ErrAtlasTooLarge, cfg.MaxAtlasSize)
		}
		packer.reset(w, h)
		fits := true
		for _, i := range order {
			gw, gh := bitmaps[i].size()
			x, y, ok := packer.allocate(gw+2*pad, gh+2*pad)
			if !ok {
				fits = false
				break
			}
			rects[i] = image.Rect(x+pad, y+pad, x+pad+gw, y+pad+gh)
		}
		if fits {
			glyph3d.Logger().Debug("atlas: packed",
				slog.Int("width", w),
				slog.Int("height", h),
				slog.Float64("utilization", packer.utilization()))
			return rects, w, h, nil
		}
		if w <= h {
			w *= 2
		} else {
			h *= 2
		}
	}
}

// blit copies src into dst with its top-left corner at at.
func blit(dst, src *image.Alpha, at image.Point) {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+y)
		do := dst.PixOffset(at.X, at.Y+y)
		copy(dst.Pix[do:do+b.Dx()], src.Pix[so:so+b.Dx()])
	}
}
