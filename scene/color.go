package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Named colors accepted by scripts, using the raylib palette values.
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DarkGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	Red       = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Green     = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	Blue      = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	Yellow    = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	Purple    = color.RGBA{R: 200, G: 122, B: 255, A: 255}
	Maroon    = color.RGBA{R: 190, G: 33, B: 55, A: 255}
	SkyBlue   = color.RGBA{R: 102, G: 191, B: 255, A: 255}
)

var namedColors = map[string]color.RGBA{
	"white":     White,
	"black":     Black,
	"lightgray": LightGray,
	"gray":      Gray,
	"darkgray":  DarkGray,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"orange":    Orange,
	"purple":    Purple,
	"maroon":    Maroon,
	"skyblue":   SkyBlue,
}

// ParseColor accepts a palette name (case-insensitive) or a hex color
// written #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
