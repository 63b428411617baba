package atlas

import (
	"fmt"
	"image/png"
	"io"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyph3d/text"
)

// Size returns the atlas dimensions in pixels.
func (r *Result) Size() (width, height int) {
	b := r.Image.Bounds()
	return b.Dx(), b.Dy()
}

// TextureDescriptor describes the GPU texture that receives RGBA.
func (r *Result) TextureDescriptor() gputypes.TextureDescriptor {
	w, h := r.Size()
	return gputypes.TextureDescriptor{
		Label:         "glyph3d atlas (" + r.Mode.String() + ")",
		Size:          gputypes.NewExtent2D(uint32(w), uint32(h)), //nolint:gosec // atlas size is bounded by MaxAtlasSize
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// RGBA expands Image to straight-alpha RGBA: white color, atlas value in
// the alpha channel.
func (r *Result) RGBA() []byte {
	w, h := r.Size()
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := r.Image.Pix[y*r.Image.Stride : y*r.Image.Stride+w]
		for _, a := range row {
			out = append(out, 0xFF, 0xFF, 0xFF, a)
		}
	}
	return out
}

// Upload creates the atlas texture through tc and returns a copy of Font
// that carries it.
func (r *Result) Upload(tc gpucontext.TextureCreator) (*text.Font, error) {
	if tc == nil {
		return nil, ErrNilTextureCreator
	}
	w, h := r.Size()
	tex, err := tc.NewTextureFromRGBA(w, h, r.RGBA())
	if err != nil {
		return nil, fmt.Errorf("atlas: upload %dx%d texture: %w", w, h, err)
	}
	return r.Font.WithTexture(tex), nil
}

// EncodePNG writes Image as a grayscale PNG.
func (r *Result) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image); err != nil {
		return fmt.Errorf("atlas: encode png: %w", err)
	}
	return nil
}
