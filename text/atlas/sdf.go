package atlas

import (
	"image"

	"github.com/chewxy/math32"
)

// distanceField converts a coverage bitmap into a signed distance field.
//
// A pixel is inside when its coverage is at least half. Each output pixel
// stores OnEdgeValue plus the distance to the nearest pixel of the other
// kind, positive inside, mapped so that spread pixels reach 0 or 255
// (saturated).
// Pixels outside the bitmap count as outside the glyph.
func distanceField(cov *image.Alpha, spread int) *image.Alpha {
	b := cov.Bounds()
	w, h := b.Dx(), b.Dy()
	inside := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return cov.Pix[cov.PixOffset(b.Min.X+x, b.Min.Y+y)] >= 128
	}

	out := image.NewAlpha(image.Rect(0, 0, w, h))
	maxDist := float32(spread)
	unit := float32(OnEdgeValue) / maxDist
	limit := (spread + 1) * (spread + 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			in := inside(x, y)
			best := limit
			for dy := -spread; dy <= spread; dy++ {
				for dx := -spread; dx <= spread; dx++ {
					d2 := dx*dx + dy*dy
					if d2 >= best {
						continue
					}
					if inside(x+dx, y+dy) != in {
						best = d2
					}
				}
			}

			d := min(math32.Sqrt(float32(best))-0.5, maxDist)
			if !in {
				d = -d
			}
			v := math32.Round(OnEdgeValue + d*unit)
			out.Pix[out.PixOffset(x, y)] = uint8(min(max(v, 0), 255))
		}
	}
	return out
}
